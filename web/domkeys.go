package web

import (
	"strconv"
	"strings"

	input "github.com/doingharm/go-input-bus"
)

// values of KeyboardEvent.location
const (
	LocationStandard = 0
	LocationLeft     = 1
	LocationRight    = 2
	LocationNumpad   = 3
)

// keys that mean the same wherever they are on the keyboard
var domKeys = map[string]input.Key{
	"NumLock": input.KeyNumLock,

	"ArrowUp":    input.KeyUp,
	"ArrowDown":  input.KeyDown,
	"ArrowLeft":  input.KeyLeft,
	"ArrowRight": input.KeyRight,

	"&":           input.KeyAmpersand,
	"@":           input.KeyAt,
	"`":           input.KeyBackquote,
	"\\":          input.KeyBackslash,
	"Backspace":   input.KeyBackspace,
	"CapsLock":    input.KeyCapsLock,
	"^":           input.KeyCaret,
	":":           input.KeyColon,
	",":           input.KeyComma,
	"Delete":      input.KeyDelete,
	"$":           input.KeyDollar,
	"\"":          input.KeyDoubleQuote,
	"End":         input.KeyEnd,
	"=":           input.KeyEquals,
	"Escape":      input.KeyEscape,
	"!":           input.KeyExclaim,
	">":           input.KeyGreaterThan,
	"#":           input.KeyHash,
	"Home":        input.KeyHome,
	"Insert":      input.KeyInsert,
	"[":           input.KeyLeftBracket,
	"{":           input.KeyLeftBracket,
	"(":           input.KeyLeftParen,
	"<":           input.KeyLessThan,
	"PageDown":    input.KeyPageDown,
	"PageUp":      input.KeyPageUp,
	"Pause":       input.KeyPause,
	"%":           input.KeyPercent,
	".":           input.KeyPeriod,
	"PrintScreen": input.KeyPrintScreen,
	"?":           input.KeyQuestion,
	"'":           input.KeyQuote,
	"]":           input.KeyRightBracket,
	"}":           input.KeyRightBracket,
	")":           input.KeyRightParen,
	"ScrollLock":  input.KeyScrollLock,
	";":           input.KeySemicolon,
	" ":           input.KeySpace,
	"Tab":         input.KeyTab,
	"_":           input.KeyUnderscore,
}

// keys that are also on the numeric keypad
var numpadKeys = map[string][2]input.Key{
	"+":     {input.KeyPlus, input.KeyNumPadPlus},
	"-":     {input.KeyMinus, input.KeyNumPadMinus},
	"*":     {input.KeyAsterisk, input.KeyNumPadMultiply},
	"/":     {input.KeySlash, input.KeyNumPadDivide},
	"Enter": {input.KeyEnter, input.KeyNumPadEnter},
}

// modifier keys on the left and right of the keyboard
var modifierKeys = map[string]input.KeyModifier{
	"Control": input.KeyModifierCtrl,
	"Shift":   input.KeyModifierShift,
	"Alt":     input.KeyModifierAlt,
}

// TranslateKey converts the key and location properties of a DOM
// KeyboardEvent to a Key. It returns false if the key has no equivalent.
func TranslateKey(key string, location int) (input.Key, bool) {
	if k, ok := domKeys[key]; ok {
		return k, true
	}

	if m, ok := modifierKeys[key]; ok {
		left, right := m.Keys()
		if location == LocationRight {
			return right, true
		}
		return left, true
	}

	if k, ok := numpadKeys[key]; ok {
		if location == LocationNumpad {
			return k[1], true
		}
		return k[0], true
	}

	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= 'a' && c <= 'z':
			return input.KeyA + input.Key(c-'a'), true
		case c >= 'A' && c <= 'Z':
			return input.KeyA + input.Key(c-'A'), true
		case c >= '0' && c <= '9':
			if location == LocationNumpad {
				return input.KeyNumPad0 + input.Key(c-'0'), true
			}
			return input.KeyNum0 + input.Key(c-'0'), true
		}
		return 0, false
	}

	if n, ok := strings.CutPrefix(key, "F"); ok && n != "" && n[0] >= '1' && n[0] <= '9' {
		if f, err := strconv.Atoi(n); err == nil && f >= 1 && f <= 24 {
			return input.KeyF1 + input.Key(f-1), true
		}
	}

	return 0, false
}
