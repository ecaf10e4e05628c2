package main

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/gdamore/tcell/v2"
)

var (
	styleNormal  = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePressed = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const help = "esc quit  v vibrate"

// number of log entries shown at the bottom of the screen
const logLines = 5

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func putLabelled(screen tcell.Screen, x, y int, label, value string, style tcell.Style) {
	x = putString(screen, x, y, fmt.Sprintf("%-9s", label), styleLabel)
	putString(screen, x, y, value, style)
}

func join[T fmt.Stringer](seq iter.Seq[T]) string {
	var l []string
	for v := range seq {
		l = append(l, v.String())
	}
	return strings.Join(l, " ")
}

// draw the state of the context for the current frame.
func draw(screen tcell.Screen, ctx *input.Context, status string) {
	screen.Clear()
	_, height := screen.Size()

	putString(screen, 0, 0, fmt.Sprintf("inputview  frame %d  %s", ctx.Frame(), status), styleTitle)

	putLabelled(screen, 0, 2, "keys", join(ctx.KeysDown()), styleNormal)
	putLabelled(screen, 0, 3, "pressed", join(ctx.KeysPressed()), stylePressed)
	putLabelled(screen, 0, 4, "released", join(ctx.KeysReleased()), styleDim)

	y := 6
	pads := ctx.ConnectedGamepads()
	if len(pads) == 0 {
		putString(screen, 0, y, "no gamepads", styleDim)
		y++
	}
	for _, i := range pads {
		y = drawGamepad(screen, ctx, i, y)
	}

	// most recent log entries above the help line
	var buf bytes.Buffer
	logger.Tail(&buf, logLines)
	var lines []string
	if buf.Len() > 0 {
		lines = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	}
	top := max(y+1, height-1-len(lines))
	for _, l := range lines {
		if top >= height-1 {
			break
		}
		putString(screen, 0, top, l, styleDim)
		top++
	}

	putString(screen, 0, height-1, help, styleDim)
	screen.Show()
}

func drawGamepad(screen tcell.Screen, ctx *input.Context, i int, y int) int {
	name, _ := ctx.GamepadName(i)
	if name == "" {
		name = "unnamed gamepad"
	}
	title := fmt.Sprintf("#%d %s", i, name)
	if ctx.IsGamepadVibrationSupported(i) {
		title += " (vibration)"
	}
	putString(screen, 0, y, title, styleTitle)

	putLabelled(screen, 2, y+1, "buttons", join(ctx.GamepadButtonsDown(i)), styleNormal)
	putLabelled(screen, 2, y+2, "pressed", join(ctx.GamepadButtonsPressed(i)), stylePressed)

	left := ctx.GamepadStickPosition(i, input.GamepadStickLeft)
	right := ctx.GamepadStickPosition(i, input.GamepadStickRight)
	putLabelled(screen, 2, y+3, "sticks", fmt.Sprintf("left %+.2f %+.2f  right %+.2f %+.2f",
		left.X(), left.Y(), right.X(), right.Y()), styleNormal)

	putLabelled(screen, 2, y+4, "triggers", fmt.Sprintf("left %.2f  right %.2f",
		ctx.GamepadAxisPosition(i, input.GamepadAxisLeftTrigger),
		ctx.GamepadAxisPosition(i, input.GamepadAxisRightTrigger)), styleNormal)

	return y + 6
}
