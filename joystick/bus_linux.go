package joystick

import (
	"os"
	"path/filepath"
	"unsafe"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ioctl requests from linux/joystick.h
const (
	jsGetName       = 0x80006a13 + (128 << 16)
	jsGetAxes       = 0x80016a11
	jsGetButtons    = 0x80016a12
	jsGetVersion    = 0x80046a01
	jsGetAxesMap    = 0x80406a32
	jsGetButtonsMap = 0x80406a34
)

// how often the watcher checks whether the bus has been closed
const pollTimeoutMS = 100

func (b *Bus) start() error {
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		return errors.Wrapf(err, ErrInotify, b.cfg.InputPath)
	}

	// the watch is added before the directory is read so that a device
	// created in between is not missed. a device seen twice is ignored by add()
	if _, err = unix.InotifyAddWatch(fd, b.cfg.InputPath, unix.IN_CREATE|unix.IN_DELETE); err != nil {
		_ = unix.Close(fd)
		return errors.Wrapf(err, ErrInotify, b.cfg.InputPath)
	}

	entries, err := os.ReadDir(b.cfg.InputPath)
	if err != nil {
		_ = unix.Close(fd)
		return errors.Wrapf(err, ErrReadInputPath, b.cfg.InputPath)
	}

	for _, entry := range entries {
		b.handleEvent(unix.IN_CREATE, []byte(entry.Name()))
	}

	b.wg.Add(1)
	go b.watch(fd)

	return nil
}

func (b *Bus) watch(fd int) {
	defer b.wg.Done()
	defer func() { _ = unix.Close(fd) }()

	buf := make([]byte, 4096)
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		select {
		case <-b.ctx.Done():
			return
		default:
		}

		n, err := unix.Poll(fds, pollTimeoutMS)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			b.reportError(errors.Wrapf(err, ErrInotify, b.cfg.InputPath))
			return
		}
		if n == 0 {
			continue
		}

		n, err = unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			b.reportError(errors.Wrapf(err, ErrInotify, b.cfg.InputPath))
			return
		}

		events, err := parseInotifyEvents(buf[:n])
		if err != nil {
			b.reportError(err)
		}
		for _, ev := range events {
			b.handleEvent(ev.mask, ev.name)
		}
	}
}

type inotifyEvent struct {
	mask uint32
	name []byte
}

func parseInotifyEvents(buf []byte) ([]inotifyEvent, error) {
	var events []inotifyEvent

	var offset uint32
	for int(offset)+unix.SizeofInotifyEvent <= len(buf) {
		raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
		start := offset + unix.SizeofInotifyEvent
		end := start + raw.Len
		if int(end) > len(buf) {
			return events, errors.Errorf(ErrShortInotifyRead, len(buf))
		}
		events = append(events, inotifyEvent{
			mask: raw.Mask,
			name: buf[start:end],
		})
		offset = end
	}

	if int(offset) != len(buf) {
		return events, errors.Errorf(ErrShortInotifyRead, len(buf))
	}
	return events, nil
}

func (b *Bus) handleEvent(mask uint32, name []byte) {
	id, node, ok := deviceID(name)
	if !ok {
		return
	}

	switch {
	case mask&unix.IN_CREATE == unix.IN_CREATE:
		// opening can wait on udev so it happens away from the watcher
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.connect(id, filepath.Join(b.cfg.InputPath, node))
		}()
	case mask&unix.IN_DELETE == unix.IN_DELETE:
		b.remove(id)
	}
}

func (b *Bus) connect(id input.PlatformID, path string) {
	f, err := openFilePersistent(path, b.cfg.OpenRetries, b.cfg.RetryDelay)
	if err != nil {
		b.reportError(err)
		return
	}

	dev, err := queryDevice(id, path, f)
	if err != nil {
		_ = f.Close()
		b.reportError(errors.Wrapf(err, ErrQueryDevice, path))
		return
	}

	if !b.add(dev) {
		_ = f.Close()
		logger.Logf("joystick", "%s ignored", path)
	}
}

func queryDevice(id input.PlatformID, path string, f *os.File) (*device, error) {
	var (
		name       [128]byte
		buttons    uint8
		axes       uint8
		version    int32
		buttonsMap [768]uint16
		axesMap    [64]uint8
	)

	if err := ioctl(f, jsGetName, unsafe.Pointer(&name[0])); err != nil {
		return nil, err
	}
	if err := ioctl(f, jsGetButtons, unsafe.Pointer(&buttons)); err != nil {
		return nil, err
	}
	if err := ioctl(f, jsGetAxes, unsafe.Pointer(&axes)); err != nil {
		return nil, err
	}
	if err := ioctl(f, jsGetVersion, unsafe.Pointer(&version)); err != nil {
		return nil, err
	}
	if err := ioctl(f, jsGetButtonsMap, unsafe.Pointer(&buttonsMap)); err != nil {
		return nil, err
	}
	if err := ioctl(f, jsGetAxesMap, unsafe.Pointer(&axesMap)); err != nil {
		return nil, err
	}

	dev := &device{
		Device: Device{
			ID:        id,
			Path:      path,
			Name:      escapeString(name[:]),
			Version:   version,
			ButtonMap: parseButtonsMap(buttonsMap[:], int(buttons)),
			AxisMap:   parseAxesMap(axesMap[:], int(axes)),
		},
		file: f,
	}
	dev.dec = newDecoder(id, dev.ButtonMap, dev.AxisMap)

	return dev, nil
}

// ioctl goes through SyscallConn rather than Fd() so that the file stays in
// non-blocking mode and Close() can interrupt a pending read.
func ioctl(f *os.File, req uintptr, dest unsafe.Pointer) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return err
	}

	var errno unix.Errno
	err = rc.Control(func(fd uintptr) {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(dest))
	})
	if err != nil {
		return err
	}
	if errno != 0 {
		return errors.Wrapf(errno, ErrIoctl, req)
	}
	return nil
}
