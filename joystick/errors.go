package joystick

const (
	ErrOsNotSupported   = "os is not supported (yet)"
	ErrAlreadyClosed    = "joystick bus is already closed"
	ErrReadInputPath    = "cannot read input path '%s'"
	ErrInotify          = "inotify on '%s'"
	ErrOpenDevice       = "cannot open joystick device '%s'"
	ErrQueryDevice      = "cannot query joystick device '%s'"
	ErrIoctl            = "ioctl %#x"
	ErrDeviceNotFound   = "joystick #%d was not found"
	ErrUnexpectedRead   = "joystick #%d read"
	ErrShortInotifyRead = "short inotify read (%d bytes)"
)
