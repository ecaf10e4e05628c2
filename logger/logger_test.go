package logger_test

import (
	"strings"
	"testing"

	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/doingharm/go-input-bus/logger"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	var w strings.Builder

	logger.Write(&w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(&w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")
	w.Reset()

	logger.Logf("test2", "this is test %d", 2)
	logger.Write(&w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is test 2\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(&w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is test 2\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(&w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is test 2\n")

	// and no entries
	w.Reset()
	logger.Tail(&w, 0)
	test.ExpectEquality(t, w.String(), "")
	logger.Tail(&w, -1)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatsAndNewlines(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	logger.Log("pad", "unmapped button")
	logger.Log("pad", "unmapped button")
	logger.Log("pad", "unmapped button\n")
	logger.Log("pad", "mapped button")

	l := logger.Copy()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].Repeated, 2)
	test.ExpectEquality(t, l[0].String(), "pad: unmapped button (repeat x3)")
	test.ExpectEquality(t, l[1].String(), "pad: mapped button")

	// the copy is not affected by later entries
	logger.Log("pad", "another")
	test.ExpectEquality(t, len(l), 2)

	// newlines are removed, not replaced
	logger.Clear()
	logger.Log("pad", "unmapped\nbutton")
	l = logger.Copy()
	test.DemandEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0].String(), "pad: unmappedbutton")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	var w strings.Builder
	logger.SetEcho(&w)
	logger.Log("echo", "hello")
	logger.SetEcho(nil)
	logger.Log("echo", "not echoed")

	test.ExpectSuccess(t, strings.Contains(w.String(), "hello"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "tag=echo"))
	test.ExpectFailure(t, strings.Contains(w.String(), "not echoed"))
}

func TestMaximumEntries(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	for i := 0; i < 300; i++ {
		logger.Logf("count", "%d", i)
	}
	l := logger.Copy()
	test.DemandEquality(t, len(l), 256)
	test.ExpectEquality(t, l[0].Detail, "44")
	test.ExpectEquality(t, l[255].Detail, "299")
}
