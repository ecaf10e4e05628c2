package tcellinput

import (
	input "github.com/doingharm/go-input-bus"
	"github.com/gdamore/tcell/v2"
)

// named keys. tcell reports several control characters with the same value as
// a named key (KeyTab is KeyCtrlI) so only the named key is listed
var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyPause:      input.KeyPause,
	tcell.KeyPrint:      input.KeyPrintScreen,
}

var runeKeys = map[rune]input.Key{
	'&':  input.KeyAmpersand,
	'*':  input.KeyAsterisk,
	'@':  input.KeyAt,
	'`':  input.KeyBackquote,
	'\\': input.KeyBackslash,
	'^':  input.KeyCaret,
	':':  input.KeyColon,
	',':  input.KeyComma,
	'$':  input.KeyDollar,
	'"':  input.KeyDoubleQuote,
	'=':  input.KeyEquals,
	'!':  input.KeyExclaim,
	'>':  input.KeyGreaterThan,
	'#':  input.KeyHash,
	'[':  input.KeyLeftBracket,
	'(':  input.KeyLeftParen,
	'<':  input.KeyLessThan,
	'-':  input.KeyMinus,
	'%':  input.KeyPercent,
	'.':  input.KeyPeriod,
	'+':  input.KeyPlus,
	'?':  input.KeyQuestion,
	'\'': input.KeyQuote,
	']':  input.KeyRightBracket,
	')':  input.KeyRightParen,
	';':  input.KeySemicolon,
	'/':  input.KeySlash,
	' ':  input.KeySpace,
	'_':  input.KeyUnderscore,
}

// translate returns the keys held down for a terminal key event, the
// modifier keys first. Upper case letters imply the shift key.
func translate(k tcell.Key, r rune, mod tcell.ModMask) []input.Key {
	var l []input.Key

	if mod&tcell.ModCtrl == tcell.ModCtrl {
		l = append(l, input.KeyLeftCtrl)
	}
	if mod&tcell.ModAlt == tcell.ModAlt {
		l = append(l, input.KeyLeftAlt)
	}
	shift := mod&tcell.ModShift == tcell.ModShift

	switch {
	case k == tcell.KeyRune:
		switch {
		case r >= 'a' && r <= 'z':
			l = append(l, input.KeyA+input.Key(r-'a'))
		case r >= 'A' && r <= 'Z':
			shift = true
			l = append(l, input.KeyA+input.Key(r-'A'))
		case r >= '0' && r <= '9':
			l = append(l, input.KeyNum0+input.Key(r-'0'))
		default:
			key, ok := runeKeys[r]
			if !ok {
				return nil
			}
			l = append(l, key)
		}

	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		l = append(l, input.KeyF1+input.Key(k-tcell.KeyF1))

	default:
		if key, ok := namedKeys[k]; ok {
			if k == tcell.KeyBacktab {
				shift = true
			}
			l = append(l, key)
			break
		}

		// control characters not claimed by a named key
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			if len(l) == 0 || l[0] != input.KeyLeftCtrl {
				l = append([]input.Key{input.KeyLeftCtrl}, l...)
			}
			l = append(l, input.KeyA+input.Key(k-tcell.KeyCtrlA))
			break
		}

		return nil
	}

	if shift {
		l = append([]input.Key{input.KeyLeftShift}, l...)
	}
	return l
}
