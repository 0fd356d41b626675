// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/sound"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires window creation and event handling to happen on the main
// thread. the mainthread package runs launch() in a goroutine and services
// requests from the sdlplay package on the main thread.
func main() {
	exitVal := exitOK
	mainthread.Run(func() {
		exitVal = launch(os.Args[1:], os.Stdout)
	})
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "TERM":
		err = term(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// newChip8 creates the emulation and attaches the program. preference
// values in the prefsOverride string take priority over the values in the
// preferences file. the filename can be empty, in which case no program is
// attached
func newChip8(prefsOverride string, filename string) (*hardware.Chip8, error) {
	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	c := hardware.NewChip8(p, nil)

	if filename != "" {
		if err := c.AttachROM(romloader.NewLoader(filename)); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// audioHost is satisfied by the sdlplay and termplay hosts
type audioHost interface {
	AddMixer(sound.Mixer)
	SetBeepSample(*sound.Sample)
}

// attachAudio sets the beep sample and starts a wav recording if requested
func attachAudio(host audioHost, wav string, beep string) error {
	if beep != "" {
		s, err := sound.LoadSample(beep)
		if err != nil {
			return err
		}
		host.SetBeepSample(s)
	}

	if wav != "" {
		ww, err := wavwriter.New(wav)
		if err != nil {
			return err
		}
		host.AddMixer(ww)
	}

	return nil
}

// oneArg returns the single remaining argument
func oneArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("a ROM file is required")
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

func launchStats(md *modalflag.Modes, enabled bool) {
	if !enabled {
		return
	}
	if !statsview.Available() {
		fmt.Fprintln(md.Output, "* statsview not available in this build")
		return
	}
	statsview.Launch(md.Output)
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override. eg. \"chip8.cyclesperframe::20\"")
	scale := md.AddInt("scale", sdlplay.DefaultScale, "window scaling")
	wav := md.AddString("wav", "", "record audio to wav file")
	beep := md.AddString("beep", "", "wav or mp3 file to use for the buzzer")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}
	launchStats(md, *stats)

	c, err := newChip8(*prefsOverride, filename)
	if err != nil {
		return err
	}

	var scr *sdlplay.SdlPlay
	err = mainthread.CallErr(func() error {
		var err error
		scr, err = sdlplay.NewSdlPlay(c, *scale)
		return err
	})
	if err != nil {
		return err
	}
	defer mainthread.Call(scr.Destroy)

	if err := attachAudio(scr, *wav, *beep); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return scr.Play(ctx)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override. eg. \"chip8.cyclesperframe::20\"")
	hold := md.AddInt("hold", termplay.DefaultHoldFrames, "number of frames a key is held after a key press")
	wav := md.AddString("wav", "", "record audio to wav file")
	beep := md.AddString("beep", "", "wav or mp3 file to use for the recorded buzzer")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	c, err := newChip8(*prefsOverride, filename)
	if err != nil {
		return err
	}

	tp, err := termplay.NewTermPlay(c, os.Stdin, os.Stdout, *hold)
	if err != nil {
		return err
	}

	if err := attachAudio(tp, *wav, *beep); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tp.Play(ctx)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override. eg. \"chip8.cyclesperframe::20\"")
	memviz := md.AddString("memviz", debugger.DefaultMemvizFile, "file to write memviz output to")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the debugger can be started without a program
	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	c, err := newChip8(*prefsOverride, filename)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(c)
	if err != nil {
		return err
	}
	dbg.MemvizFile = *memviz

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return dbg.Start(ctx)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	all := md.AddBool("all", false, "include words not reached by following the program flow")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(romloader.NewLoader(filename))
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		MinLevel: disassembly.EntryLevelBlessed,
	}
	if *all {
		attr.MinLevel = disassembly.EntryLevelDecoded
	}

	return dsm.Write(md.Output, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to override. eg. \"chip8.cyclesperframe::20\"")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	pr, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}
	launchStats(md, *stats)

	c, err := newChip8(*prefsOverride, filename)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, c, *duration, pr)
}
