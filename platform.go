package input

// Platform is the part of a platform backend that the input state calls
// back into. The PlatformID passed to each function is the one the backend put
// in the gamepad's Connect event.
type Platform interface {
	// GamepadName returns the name of the device.
	GamepadName(id PlatformID) string

	// IsGamepadVibrationSupported returns true if the device has motors that
	// can be driven with the vibration functions.
	IsGamepadVibrationSupported(id PlatformID) bool

	// SetGamepadVibration starts the device vibrating until told otherwise.
	// The strength value is not clamped before being passed on.
	SetGamepadVibration(id PlatformID, strength float32)

	// StartGamepadVibration starts the device vibrating for the duration (in
	// milliseconds). Stopping the vibration at the end of the duration is the
	// responsibility of the platform.
	StartGamepadVibration(id PlatformID, strength float32, durationMS uint32)

	// StopGamepadVibration stops any vibration.
	StopGamepadVibration(id PlatformID)
}

// NopPlatform is a Platform for backends that cannot name devices or drive
// their motors.
type NopPlatform struct{}

func (NopPlatform) GamepadName(_ PlatformID) string { return "" }
func (NopPlatform) IsGamepadVibrationSupported(_ PlatformID) bool { return false }
func (NopPlatform) SetGamepadVibration(_ PlatformID, _ float32) {}
func (NopPlatform) StartGamepadVibration(_ PlatformID, _ float32, _ uint32) {}
func (NopPlatform) StopGamepadVibration(_ PlatformID) {}
