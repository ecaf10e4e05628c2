package input

import (
	"fmt"
	"strings"
)

// Key is a key on a keyboard.
type Key uint8

// List of valid Key values.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyNumLock
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadPlus
	KeyNumPadMinus
	KeyNumPadMultiply
	KeyNumPadDivide
	KeyNumPadEnter

	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyAmpersand
	KeyAsterisk
	KeyAt
	KeyBackquote
	KeyBackslash
	KeyBackspace
	KeyCapsLock
	KeyCaret
	KeyColon
	KeyComma
	KeyDelete
	KeyDollar
	KeyDoubleQuote
	KeyEnd
	KeyEnter
	KeyEquals
	KeyEscape
	KeyExclaim
	KeyGreaterThan
	KeyHash
	KeyHome
	KeyInsert
	KeyLeftBracket
	KeyLeftParen
	KeyLessThan
	KeyMinus
	KeyPageDown
	KeyPageUp
	KeyPause
	KeyPercent
	KeyPeriod
	KeyPlus
	KeyPrintScreen
	KeyQuestion
	KeyQuote
	KeyRightBracket
	KeyRightParen
	KeyScrollLock
	KeySemicolon
	KeySlash
	KeySpace
	KeyTab
	KeyUnderscore

	numKeys
)

var keyNames = [numKeys]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "Num0", "Num1",
	"Num2", "Num3", "Num4", "Num5", "Num6", "Num7", "Num8", "Num9", "F1", "F2",
	"F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12", "F13", "F14",
	"F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24",
	"NumLock", "NumPad0", "NumPad1", "NumPad2", "NumPad3", "NumPad4", "NumPad5",
	"NumPad6", "NumPad7", "NumPad8", "NumPad9", "NumPadPlus", "NumPadMinus",
	"NumPadMultiply", "NumPadDivide", "NumPadEnter", "LeftCtrl", "LeftShift",
	"LeftAlt", "RightCtrl", "RightShift", "RightAlt", "Up", "Down", "Left",
	"Right", "Ampersand", "Asterisk", "At", "Backquote", "Backslash",
	"Backspace", "CapsLock", "Caret", "Colon", "Comma", "Delete", "Dollar",
	"DoubleQuote", "End", "Enter", "Equals", "Escape", "Exclaim", "GreaterThan",
	"Hash", "Home", "Insert", "LeftBracket", "LeftParen", "LessThan", "Minus",
	"PageDown", "PageUp", "Pause", "Percent", "Period", "Plus", "PrintScreen",
	"Question", "Quote", "RightBracket", "RightParen", "ScrollLock",
	"Semicolon", "Slash", "Space", "Tab", "Underscore",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Keys returns every valid Key value in order.
func Keys() []Key {
	l := make([]Key, numKeys)
	for i := range l {
		l[i] = Key(i)
	}
	return l
}

// ParseKey is the inverse of Key.String(). The comparison is not case
// sensitive.
func ParseKey(s string) (Key, bool) {
	for i, n := range keyNames {
		if strings.EqualFold(n, s) {
			return Key(i), true
		}
	}
	return 0, false
}

// KeyModifier is a modifier key that may be pressed on either side of the
// keyboard.
type KeyModifier uint8

// List of valid KeyModifier values.
const (
	KeyModifierCtrl KeyModifier = iota
	KeyModifierAlt
	KeyModifierShift
)

func (m KeyModifier) String() string {
	switch m {
	case KeyModifierCtrl:
		return "Ctrl"
	case KeyModifierAlt:
		return "Alt"
	case KeyModifierShift:
		return "Shift"
	}
	return fmt.Sprintf("KeyModifier(%d)", uint8(m))
}

// Keys returns the left and right hand keys of the modifier.
func (m KeyModifier) Keys() (left Key, right Key) {
	switch m {
	case KeyModifierAlt:
		return KeyLeftAlt, KeyRightAlt
	case KeyModifierShift:
		return KeyLeftShift, KeyRightShift
	}
	return KeyLeftCtrl, KeyRightCtrl
}
