//go:build !statsview

package statsview

import (
	"io"
)

// Address of the stats server. Empty because the stats server has not been
// built.
const Address = ""

// Launch does nothing unless the statsview build constraint is present.
func Launch(_ io.Writer) {
}

// Available returns false unless the statsview build constraint is present.
func Available() bool {
	return false
}
