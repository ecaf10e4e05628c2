package sdlinput

import (
	input "github.com/doingharm/go-input-bus"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes are used rather than key symbols so that keys are identified by
// their position on the keyboard. keys that need a modifier to type, such as
// KeyAmpersand, have no scancode and are never reported.
var scancodes = map[int]input.Key{
	sdl.SCANCODE_A: input.KeyA,
	sdl.SCANCODE_B: input.KeyB,
	sdl.SCANCODE_C: input.KeyC,
	sdl.SCANCODE_D: input.KeyD,
	sdl.SCANCODE_E: input.KeyE,
	sdl.SCANCODE_F: input.KeyF,
	sdl.SCANCODE_G: input.KeyG,
	sdl.SCANCODE_H: input.KeyH,
	sdl.SCANCODE_I: input.KeyI,
	sdl.SCANCODE_J: input.KeyJ,
	sdl.SCANCODE_K: input.KeyK,
	sdl.SCANCODE_L: input.KeyL,
	sdl.SCANCODE_M: input.KeyM,
	sdl.SCANCODE_N: input.KeyN,
	sdl.SCANCODE_O: input.KeyO,
	sdl.SCANCODE_P: input.KeyP,
	sdl.SCANCODE_Q: input.KeyQ,
	sdl.SCANCODE_R: input.KeyR,
	sdl.SCANCODE_S: input.KeyS,
	sdl.SCANCODE_T: input.KeyT,
	sdl.SCANCODE_U: input.KeyU,
	sdl.SCANCODE_V: input.KeyV,
	sdl.SCANCODE_W: input.KeyW,
	sdl.SCANCODE_X: input.KeyX,
	sdl.SCANCODE_Y: input.KeyY,
	sdl.SCANCODE_Z: input.KeyZ,

	sdl.SCANCODE_0: input.KeyNum0,
	sdl.SCANCODE_1: input.KeyNum1,
	sdl.SCANCODE_2: input.KeyNum2,
	sdl.SCANCODE_3: input.KeyNum3,
	sdl.SCANCODE_4: input.KeyNum4,
	sdl.SCANCODE_5: input.KeyNum5,
	sdl.SCANCODE_6: input.KeyNum6,
	sdl.SCANCODE_7: input.KeyNum7,
	sdl.SCANCODE_8: input.KeyNum8,
	sdl.SCANCODE_9: input.KeyNum9,

	sdl.SCANCODE_F1:  input.KeyF1,
	sdl.SCANCODE_F2:  input.KeyF2,
	sdl.SCANCODE_F3:  input.KeyF3,
	sdl.SCANCODE_F4:  input.KeyF4,
	sdl.SCANCODE_F5:  input.KeyF5,
	sdl.SCANCODE_F6:  input.KeyF6,
	sdl.SCANCODE_F7:  input.KeyF7,
	sdl.SCANCODE_F8:  input.KeyF8,
	sdl.SCANCODE_F9:  input.KeyF9,
	sdl.SCANCODE_F10: input.KeyF10,
	sdl.SCANCODE_F11: input.KeyF11,
	sdl.SCANCODE_F12: input.KeyF12,
	sdl.SCANCODE_F13: input.KeyF13,
	sdl.SCANCODE_F14: input.KeyF14,
	sdl.SCANCODE_F15: input.KeyF15,
	sdl.SCANCODE_F16: input.KeyF16,
	sdl.SCANCODE_F17: input.KeyF17,
	sdl.SCANCODE_F18: input.KeyF18,
	sdl.SCANCODE_F19: input.KeyF19,
	sdl.SCANCODE_F20: input.KeyF20,
	sdl.SCANCODE_F21: input.KeyF21,
	sdl.SCANCODE_F22: input.KeyF22,
	sdl.SCANCODE_F23: input.KeyF23,
	sdl.SCANCODE_F24: input.KeyF24,

	sdl.SCANCODE_NUMLOCKCLEAR: input.KeyNumLock,
	sdl.SCANCODE_KP_0:         input.KeyNumPad0,
	sdl.SCANCODE_KP_1:         input.KeyNumPad1,
	sdl.SCANCODE_KP_2:         input.KeyNumPad2,
	sdl.SCANCODE_KP_3:         input.KeyNumPad3,
	sdl.SCANCODE_KP_4:         input.KeyNumPad4,
	sdl.SCANCODE_KP_5:         input.KeyNumPad5,
	sdl.SCANCODE_KP_6:         input.KeyNumPad6,
	sdl.SCANCODE_KP_7:         input.KeyNumPad7,
	sdl.SCANCODE_KP_8:         input.KeyNumPad8,
	sdl.SCANCODE_KP_9:         input.KeyNumPad9,
	sdl.SCANCODE_KP_PLUS:      input.KeyNumPadPlus,
	sdl.SCANCODE_KP_MINUS:     input.KeyNumPadMinus,
	sdl.SCANCODE_KP_MULTIPLY:  input.KeyNumPadMultiply,
	sdl.SCANCODE_KP_DIVIDE:    input.KeyNumPadDivide,
	sdl.SCANCODE_KP_ENTER:     input.KeyNumPadEnter,

	sdl.SCANCODE_LCTRL:  input.KeyLeftCtrl,
	sdl.SCANCODE_LSHIFT: input.KeyLeftShift,
	sdl.SCANCODE_LALT:   input.KeyLeftAlt,
	sdl.SCANCODE_RCTRL:  input.KeyRightCtrl,
	sdl.SCANCODE_RSHIFT: input.KeyRightShift,
	sdl.SCANCODE_RALT:   input.KeyRightAlt,

	sdl.SCANCODE_UP:    input.KeyUp,
	sdl.SCANCODE_DOWN:  input.KeyDown,
	sdl.SCANCODE_LEFT:  input.KeyLeft,
	sdl.SCANCODE_RIGHT: input.KeyRight,

	sdl.SCANCODE_GRAVE:        input.KeyBackquote,
	sdl.SCANCODE_BACKSLASH:    input.KeyBackslash,
	sdl.SCANCODE_BACKSPACE:    input.KeyBackspace,
	sdl.SCANCODE_CAPSLOCK:     input.KeyCapsLock,
	sdl.SCANCODE_COMMA:        input.KeyComma,
	sdl.SCANCODE_DELETE:       input.KeyDelete,
	sdl.SCANCODE_END:          input.KeyEnd,
	sdl.SCANCODE_RETURN:       input.KeyEnter,
	sdl.SCANCODE_EQUALS:       input.KeyEquals,
	sdl.SCANCODE_ESCAPE:       input.KeyEscape,
	sdl.SCANCODE_HOME:         input.KeyHome,
	sdl.SCANCODE_INSERT:       input.KeyInsert,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_PAGEDOWN:     input.KeyPageDown,
	sdl.SCANCODE_PAGEUP:       input.KeyPageUp,
	sdl.SCANCODE_PAUSE:        input.KeyPause,
	sdl.SCANCODE_PERIOD:       input.KeyPeriod,
	sdl.SCANCODE_PRINTSCREEN:  input.KeyPrintScreen,
	sdl.SCANCODE_APOSTROPHE:   input.KeyQuote,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_SCROLLLOCK:   input.KeyScrollLock,
	sdl.SCANCODE_SEMICOLON:    input.KeySemicolon,
	sdl.SCANCODE_SLASH:        input.KeySlash,
	sdl.SCANCODE_SPACE:        input.KeySpace,
	sdl.SCANCODE_TAB:          input.KeyTab,
}

var controllerButtons = map[int]input.GamepadButton{
	sdl.CONTROLLER_BUTTON_A:             input.GamepadButtonA,
	sdl.CONTROLLER_BUTTON_B:             input.GamepadButtonB,
	sdl.CONTROLLER_BUTTON_X:             input.GamepadButtonX,
	sdl.CONTROLLER_BUTTON_Y:             input.GamepadButtonY,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       input.GamepadButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     input.GamepadButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     input.GamepadButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    input.GamepadButtonRight,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  input.GamepadButtonLeftShoulder,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     input.GamepadButtonLeftStick,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: input.GamepadButtonRightShoulder,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    input.GamepadButtonRightStick,
	sdl.CONTROLLER_BUTTON_START:         input.GamepadButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          input.GamepadButtonBack,
	sdl.CONTROLLER_BUTTON_GUIDE:         input.GamepadButtonGuide,
}

var controllerAxes = map[int]input.GamepadAxis{
	sdl.CONTROLLER_AXIS_LEFTX:        input.GamepadAxisLeftStickX,
	sdl.CONTROLLER_AXIS_LEFTY:        input.GamepadAxisLeftStickY,
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  input.GamepadAxisLeftTrigger,
	sdl.CONTROLLER_AXIS_RIGHTX:       input.GamepadAxisRightStickX,
	sdl.CONTROLLER_AXIS_RIGHTY:       input.GamepadAxisRightStickY,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: input.GamepadAxisRightTrigger,
}

const axisMax = 32767

// normaliseAxis maps the SDL range to [-1, 1] for sticks. Triggers are
// reported by SDL in the range 0 to 32767 so the result is [0, 1].
func normaliseAxis(v int16) float32 {
	f := float32(v) / axisMax
	if f < -1 {
		return -1
	}
	return f
}
