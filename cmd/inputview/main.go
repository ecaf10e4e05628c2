// Inputview shows the keyboard and gamepad state seen by the input bus in a
// terminal.
//
// The keyboard is always read from the terminal. Gamepads are read by the
// backend chosen with the -backend flag. The frame loop runs at a fixed rate
// and every frame can be written to a transcript with -record, or replaced by
// the frames of an earlier transcript with -playback.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/doingharm/go-input-bus/recorder"
	"github.com/doingharm/go-input-bus/statsview"
	"github.com/doingharm/go-input-bus/tcellinput"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func init() {
	// SDL events must be handled by the thread that started SDL
	runtime.LockOSThread()
}

type options struct {
	backend  string
	fps      int
	record   string
	playback string
	log      string
	stats    bool
}

func parseArgs(args []string) (options, error) {
	var opts options

	flgs := flag.NewFlagSet("inputview", flag.ContinueOnError)
	flgs.StringVar(&opts.backend, "backend", backendLinux, fmt.Sprintf("gamepad backend: %s, %s or %s", backendLinux, backendSDL, backendNone))
	flgs.IntVar(&opts.fps, "fps", 60, "frames per second")
	flgs.StringVar(&opts.record, "record", "", "write a transcript of every frame to file")
	flgs.StringVar(&opts.playback, "playback", "", "play back the transcript in file instead of live input")
	flgs.StringVar(&opts.log, "log", "", "echo the log to file")
	flgs.BoolVar(&opts.stats, "statsview", false, "launch the statsview server (if available in this build)")

	if err := flgs.Parse(args); err != nil {
		return opts, err
	}

	if flgs.NArg() > 0 {
		return opts, errors.Errorf("unexpected arguments: %v", flgs.Args())
	}
	if opts.fps < 1 {
		return opts, errors.Errorf("fps must be at least 1")
	}
	if opts.record != "" && opts.playback != "" {
		return opts, errors.Errorf("cannot record and playback at the same time")
	}

	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.log != "" {
		f, err := os.Create(opts.log)
		if err != nil {
			return errors.Wrap(err, "log")
		}
		defer f.Close()
		logger.SetEcho(f)
		defer logger.SetEcho(nil)
	}

	if opts.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log("inputview", "statsview not available in this build")
		}
	}

	queue := input.NewEventQueue()

	back, err := newBackend(opts.backend, queue)
	if err != nil {
		return err
	}
	defer func() {
		if err := back.close(); err != nil {
			logger.Log("inputview", err.Error())
		}
	}()

	ctx := input.NewContext(input.WithQueue(queue), input.WithPlatform(back.platform))

	v := &viewer{
		ctx:  ctx,
		kb:   tcellinput.New(tcellinput.DefaultConfig(), queue),
		back: back,
	}

	switch {
	case opts.playback != "":
		plb, err := recorder.LoadPlayback(opts.playback)
		if err != nil {
			return err
		}
		v.setPlayback(plb)

	case opts.record != "":
		f, err := os.Create(opts.record)
		if err != nil {
			return errors.Wrap(err, recorder.ErrRecording)
		}
		defer f.Close()

		rec, err := recorder.NewRecorder(f)
		if err != nil {
			return err
		}
		defer rec.End()
		v.setRecorder(rec)
	}

	v.screen, err = tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := v.screen.Init(); err != nil {
		return errors.Wrap(err, "terminal")
	}
	defer v.screen.Fini()

	return v.run(time.Second / time.Duration(opts.fps))
}
