//go:build !linux

package joystick

import "github.com/pkg/errors"

func (b *Bus) start() error {
	return errors.New(ErrOsNotSupported)
}
