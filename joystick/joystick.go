// Package joystick captures gamepads through the Linux joystick interface
// (/dev/input/js*) and pushes their events to an input queue.
//
// Devices are discovered when the Bus is created and by watching the input
// directory with inotify, so gamepads can be connected and disconnected at
// any time. The Bus also implements input.Platform, reporting the name the
// driver gives each device. The joystick interface has no force feedback so
// vibration is never supported.
package joystick

import (
	"context"
	"os"
	"sync"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/pkg/errors"
)

// Config for the Bus.
type Config struct {
	// directory containing the joystick device nodes
	InputPath string

	// permission errors when opening a new device node are retried
	OpenRetries int
	RetryDelay  time.Duration
}

// DefaultConfig returns the Config used by most Linux systems.
func DefaultConfig() Config {
	return Config{
		InputPath:   "/dev/input",
		OpenRetries: 4,
		RetryDelay:  200 * time.Millisecond,
	}
}

// Device describes a connected joystick device.
type Device struct {
	ID   input.PlatformID
	Path string
	Name string

	// driver version, as returned by JSIOCGVERSION
	Version int32

	// the button and axis codes (BTN_* and ABS_*) of the device's controls
	ButtonMap []uint16
	AxisMap   []uint8
}

type device struct {
	Device
	file *os.File
	dec  *decoder
}

// Bus watches for joystick devices and pushes their events to the queue.
type Bus struct {
	cfg   Config
	queue input.Pusher

	crit    sync.RWMutex
	devices map[input.PlatformID]*device
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	errCh chan error
}

// New creates a Bus and connects every joystick device that is already
// present. Errors that happen after New() returns, for example a device that
// cannot be opened, are sent to the returned channel. The channel is closed
// by Close().
func New(cfg Config, queue input.Pusher) (*Bus, <-chan error, error) {
	b := &Bus{
		cfg:     cfg,
		queue:   queue,
		devices: make(map[input.PlatformID]*device),
		errCh:   make(chan error, 16),
	}
	b.ctx, b.cancel = context.WithCancel(context.Background())

	if err := b.start(); err != nil {
		b.cancel()
		return nil, nil, err
	}

	return b, b.errCh, nil
}

// reportError sends the error to the error channel. The error is logged and
// dropped if nobody is reading the channel.
func (b *Bus) reportError(err error) {
	select {
	case b.errCh <- err:
	default:
		logger.Logf("joystick", "error dropped: %v", err)
	}
}

// add registers a newly opened device and starts reading from it. The device
// is closed immediately if the bus has been closed or the ID is already in use.
func (b *Bus) add(dev *device) bool {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.closed {
		return false
	}
	if _, ok := b.devices[dev.ID]; ok {
		return false
	}
	b.devices[dev.ID] = dev

	// the connect event must be queued before any event from the device
	b.queue.Push(input.Connect(dev.ID))
	logger.Logf("joystick", "%s connected as #%d (%s)", dev.Path, dev.ID, dev.Name)

	b.wg.Add(1)
	go b.read(dev)

	return true
}

// remove forgets the device with the ID and queues a disconnect event. It is
// safe to call more than once for the same device.
func (b *Bus) remove(id input.PlatformID) {
	b.crit.Lock()
	dev := b.devices[id]
	b.crit.Unlock()

	if dev != nil {
		b.removeDevice(dev)
	}
}

// removeDevice is like remove but only acts while dev is still the device
// registered under its ID. A reader that outlives its device must not remove a
// newer device that reuses the ID.
func (b *Bus) removeDevice(dev *device) {
	b.crit.Lock()
	ok := b.devices[dev.ID] == dev
	if ok {
		delete(b.devices, dev.ID)
	}
	b.crit.Unlock()

	if !ok {
		return
	}

	_ = dev.file.Close()
	b.queue.Push(input.Disconnect(dev.ID))
	logger.Logf("joystick", "%s disconnected (#%d)", dev.Path, dev.ID)
}

func (b *Bus) read(dev *device) {
	defer b.wg.Done()
	for {
		e, err := readEvent(dev.file)
		if err != nil {
			select {
			case <-b.ctx.Done():
			default:
				if !errors.Is(err, os.ErrClosed) {
					logger.Logf("joystick", "%v", errors.Wrapf(err, ErrUnexpectedRead, dev.ID))
				}
			}
			b.removeDevice(dev)
			return
		}
		dev.dec.decode(e, b.queue.Push)
	}
}

// Gamepads returns the devices that are currently connected.
func (b *Bus) Gamepads() []Device {
	b.crit.RLock()
	defer b.crit.RUnlock()

	l := make([]Device, 0, len(b.devices))
	for _, dev := range b.devices {
		l = append(l, dev.Device)
	}
	return l
}

// Gamepad returns the connected device with the ID.
func (b *Bus) Gamepad(id input.PlatformID) (Device, error) {
	b.crit.RLock()
	defer b.crit.RUnlock()

	dev, ok := b.devices[id]
	if !ok {
		return Device{}, errors.Errorf(ErrDeviceNotFound, id)
	}
	return dev.Device, nil
}

// Close stops watching for devices and closes every connected device. A
// disconnect event is queued for each of them.
func (b *Bus) Close() error {
	b.crit.Lock()
	if b.closed {
		b.crit.Unlock()
		return errors.New(ErrAlreadyClosed)
	}
	b.closed = true
	ids := make([]input.PlatformID, 0, len(b.devices))
	for id := range b.devices {
		ids = append(ids, id)
	}
	b.crit.Unlock()

	b.cancel()
	for _, id := range ids {
		b.remove(id)
	}
	b.wg.Wait()

	close(b.errCh)
	return nil
}

// GamepadName implements the input.Platform interface.
func (b *Bus) GamepadName(id input.PlatformID) string {
	b.crit.RLock()
	defer b.crit.RUnlock()
	if dev, ok := b.devices[id]; ok {
		return dev.Name
	}
	return ""
}

// IsGamepadVibrationSupported implements the input.Platform interface.
func (b *Bus) IsGamepadVibrationSupported(_ input.PlatformID) bool {
	return false
}

// SetGamepadVibration implements the input.Platform interface.
func (b *Bus) SetGamepadVibration(_ input.PlatformID, _ float32) {}

// StartGamepadVibration implements the input.Platform interface.
func (b *Bus) StartGamepadVibration(_ input.PlatformID, _ float32, _ uint32) {}

// StopGamepadVibration implements the input.Platform interface.
func (b *Bus) StopGamepadVibration(_ input.PlatformID) {}
