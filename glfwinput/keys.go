package glfwinput

import (
	input "github.com/doingharm/go-input-bus"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keys = map[glfw.Key]input.Key{
	glfw.KeyA: input.KeyA,
	glfw.KeyB: input.KeyB,
	glfw.KeyC: input.KeyC,
	glfw.KeyD: input.KeyD,
	glfw.KeyE: input.KeyE,
	glfw.KeyF: input.KeyF,
	glfw.KeyG: input.KeyG,
	glfw.KeyH: input.KeyH,
	glfw.KeyI: input.KeyI,
	glfw.KeyJ: input.KeyJ,
	glfw.KeyK: input.KeyK,
	glfw.KeyL: input.KeyL,
	glfw.KeyM: input.KeyM,
	glfw.KeyN: input.KeyN,
	glfw.KeyO: input.KeyO,
	glfw.KeyP: input.KeyP,
	glfw.KeyQ: input.KeyQ,
	glfw.KeyR: input.KeyR,
	glfw.KeyS: input.KeyS,
	glfw.KeyT: input.KeyT,
	glfw.KeyU: input.KeyU,
	glfw.KeyV: input.KeyV,
	glfw.KeyW: input.KeyW,
	glfw.KeyX: input.KeyX,
	glfw.KeyY: input.KeyY,
	glfw.KeyZ: input.KeyZ,

	glfw.Key0: input.KeyNum0,
	glfw.Key1: input.KeyNum1,
	glfw.Key2: input.KeyNum2,
	glfw.Key3: input.KeyNum3,
	glfw.Key4: input.KeyNum4,
	glfw.Key5: input.KeyNum5,
	glfw.Key6: input.KeyNum6,
	glfw.Key7: input.KeyNum7,
	glfw.Key8: input.KeyNum8,
	glfw.Key9: input.KeyNum9,

	glfw.KeyF1:  input.KeyF1,
	glfw.KeyF2:  input.KeyF2,
	glfw.KeyF3:  input.KeyF3,
	glfw.KeyF4:  input.KeyF4,
	glfw.KeyF5:  input.KeyF5,
	glfw.KeyF6:  input.KeyF6,
	glfw.KeyF7:  input.KeyF7,
	glfw.KeyF8:  input.KeyF8,
	glfw.KeyF9:  input.KeyF9,
	glfw.KeyF10: input.KeyF10,
	glfw.KeyF11: input.KeyF11,
	glfw.KeyF12: input.KeyF12,
	glfw.KeyF13: input.KeyF13,
	glfw.KeyF14: input.KeyF14,
	glfw.KeyF15: input.KeyF15,
	glfw.KeyF16: input.KeyF16,
	glfw.KeyF17: input.KeyF17,
	glfw.KeyF18: input.KeyF18,
	glfw.KeyF19: input.KeyF19,
	glfw.KeyF20: input.KeyF20,
	glfw.KeyF21: input.KeyF21,
	glfw.KeyF22: input.KeyF22,
	glfw.KeyF23: input.KeyF23,
	glfw.KeyF24: input.KeyF24,

	glfw.KeyNumLock:    input.KeyNumLock,
	glfw.KeyKP0:        input.KeyNumPad0,
	glfw.KeyKP1:        input.KeyNumPad1,
	glfw.KeyKP2:        input.KeyNumPad2,
	glfw.KeyKP3:        input.KeyNumPad3,
	glfw.KeyKP4:        input.KeyNumPad4,
	glfw.KeyKP5:        input.KeyNumPad5,
	glfw.KeyKP6:        input.KeyNumPad6,
	glfw.KeyKP7:        input.KeyNumPad7,
	glfw.KeyKP8:        input.KeyNumPad8,
	glfw.KeyKP9:        input.KeyNumPad9,
	glfw.KeyKPAdd:      input.KeyNumPadPlus,
	glfw.KeyKPSubtract: input.KeyNumPadMinus,
	glfw.KeyKPMultiply: input.KeyNumPadMultiply,
	glfw.KeyKPDivide:   input.KeyNumPadDivide,
	glfw.KeyKPEnter:    input.KeyNumPadEnter,

	glfw.KeyLeftControl:  input.KeyLeftCtrl,
	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyRightControl: input.KeyRightCtrl,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyRightAlt:     input.KeyRightAlt,

	glfw.KeyUp:    input.KeyUp,
	glfw.KeyDown:  input.KeyDown,
	glfw.KeyLeft:  input.KeyLeft,
	glfw.KeyRight: input.KeyRight,

	glfw.KeyGraveAccent:  input.KeyBackquote,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyCapsLock:     input.KeyCapsLock,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyDelete:       input.KeyDelete,
	glfw.KeyEnd:          input.KeyEnd,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyEqual:        input.KeyEquals,
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyHome:         input.KeyHome,
	glfw.KeyInsert:       input.KeyInsert,
	glfw.KeyLeftBracket:  input.KeyLeftBracket,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyPageDown:     input.KeyPageDown,
	glfw.KeyPageUp:       input.KeyPageUp,
	glfw.KeyPause:        input.KeyPause,
	glfw.KeyPeriod:       input.KeyPeriod,
	glfw.KeyPrintScreen:  input.KeyPrintScreen,
	glfw.KeyApostrophe:   input.KeyQuote,
	glfw.KeyRightBracket: input.KeyRightBracket,
	glfw.KeyScrollLock:   input.KeyScrollLock,
	glfw.KeySemicolon:    input.KeySemicolon,
	glfw.KeySlash:        input.KeySlash,
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyTab:          input.KeyTab,
}

// indexed by glfw.GamepadButton
var buttons = [...]input.GamepadButton{
	glfw.ButtonA:           input.GamepadButtonA,
	glfw.ButtonB:           input.GamepadButtonB,
	glfw.ButtonX:           input.GamepadButtonX,
	glfw.ButtonY:           input.GamepadButtonY,
	glfw.ButtonLeftBumper:  input.GamepadButtonLeftShoulder,
	glfw.ButtonRightBumper: input.GamepadButtonRightShoulder,
	glfw.ButtonBack:        input.GamepadButtonBack,
	glfw.ButtonStart:       input.GamepadButtonStart,
	glfw.ButtonGuide:       input.GamepadButtonGuide,
	glfw.ButtonLeftThumb:   input.GamepadButtonLeftStick,
	glfw.ButtonRightThumb:  input.GamepadButtonRightStick,
	glfw.ButtonDpadUp:      input.GamepadButtonUp,
	glfw.ButtonDpadRight:   input.GamepadButtonRight,
	glfw.ButtonDpadDown:    input.GamepadButtonDown,
	glfw.ButtonDpadLeft:    input.GamepadButtonLeft,
}

// indexed by glfw.GamepadAxis
var axes = [...]input.GamepadAxis{
	glfw.AxisLeftX:        input.GamepadAxisLeftStickX,
	glfw.AxisLeftY:        input.GamepadAxisLeftStickY,
	glfw.AxisRightX:       input.GamepadAxisRightStickX,
	glfw.AxisRightY:       input.GamepadAxisRightStickY,
	glfw.AxisLeftTrigger:  input.GamepadAxisLeftTrigger,
	glfw.AxisRightTrigger: input.GamepadAxisRightTrigger,
}
