package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire program.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...any) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.tail(output, maxCentral)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// Copy returns a copy of the entries in the central logger, oldest first.
func Copy() []Entry {
	return central.copy()
}

// SetEcho writes every new entry to io.Writer as it is logged. A nil writer
// stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
