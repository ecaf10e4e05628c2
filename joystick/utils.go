package joystick

import (
	"bytes"
	"os"
	"strconv"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/pkg/errors"
)

// escapeString removes the NUL bytes that pad ioctl strings and inotify names.
func escapeString(src []byte) string {
	n := 0
	for _, b := range src {
		if b != 0 {
			src[n] = b
			n++
		}
	}
	return string(src[:n])
}

// deviceID returns the platform ID for a device node name. Only joystick
// nodes (js0, js1, ...) have an ID; the number in the name is used so the same
// node gets the same ID when it is reconnected.
func deviceID(name []byte) (input.PlatformID, string, bool) {
	if !bytes.HasPrefix(name, []byte("js")) {
		return 0, "", false
	}
	s := escapeString(name)
	n, err := strconv.ParseInt(s[2:], 10, 32)
	if err != nil || n < 0 {
		return 0, "", false
	}
	return input.PlatformID(n), s, true
}

// openFilePersistent opens the device node. Nodes are often created before
// udev has set their permissions so a permission error is retried.
func openFilePersistent(path string, retries int, delay time.Duration) (f *os.File, err error) {
	for i := 0; ; i++ {
		f, err = os.OpenFile(path, os.O_RDONLY, 0)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrPermission) || i >= retries {
			return nil, errors.Wrapf(err, ErrOpenDevice, path)
		}
		timer := time.NewTimer(delay)
		<-timer.C
		timer.Stop()
	}
}

// parseButtonsMap returns the button code of each of the device's buttons, in
// the order the driver indexes them.
func parseButtonsMap(mp []uint16, count int) []uint16 {
	count = min(count, len(mp))
	dest := make([]uint16, count)
	copy(dest, mp[:count])
	return dest
}

// parseAxesMap returns the axis code of each of the device's axes.
func parseAxesMap(mp []uint8, count int) []uint8 {
	count = min(count, len(mp))
	dest := make([]uint8, count)
	copy(dest, mp[:count])
	return dest
}
