//go:build !statsview

package statsview_test

import (
	"bytes"
	"testing"

	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/doingharm/go-input-bus/statsview"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	var out bytes.Buffer
	statsview.Launch(&out)
	test.ExpectEquality(t, out.Len(), 0)
}
