// This file is part of ACRSim.
//
// ACRSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ACRSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ACRSim.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/firmware/acr"
	"github.com/jetsetilly/acrsim/firmware/script"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/logger"
	"github.com/jetsetilly/acrsim/modalflag"
	"github.com/jetsetilly/acrsim/paths"
	"github.com/jetsetilly/acrsim/performance"
	"github.com/jetsetilly/acrsim/performance/limiter"
	"github.com/jetsetilly/acrsim/prefs"
	"github.com/jetsetilly/acrsim/regression"
	"github.com/jetsetilly/acrsim/serial"
	"github.com/jetsetilly/acrsim/soundload"
	"github.com/jetsetilly/acrsim/statsview"
	"github.com/jetsetilly/acrsim/version"
	"github.com/jetsetilly/acrsim/wavwriter"
)

const additionalHelp = `The input file is read if it has a .wav, .mp3 or .csv extension, or no
extension at all. Any other file is encoded as a WAV file, which requires the
-o flag. The sub-mode can be given to override the choice.

The RUN sub-mode runs the device for the number of seconds given as the
argument. It is most useful with the -script flag. The -realtime flag limits
the simulation to the speed of the real device.

The PERFORMANCE sub-mode runs the device for the duration given as the
argument (eg. 10s) and reports the speed of the simulation.

The REGRESS sub-mode manages the regression database. Entries are added with
the -f, -l and -s flags in effect at the time.`

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// options common to every mode
type options struct {
	format     *string
	outfile    *string
	cmp        *string
	cmpLeader  *string
	legacy     *bool
	keepGoing  *bool
	quiet      *bool
	skew       *bool
	prefs      *string
	digest     *bool
	statsview  *bool
	memviz     *string
	version    *bool
	scriptFile *string
	profile    *string
	realtime   *bool
}

// launch returns the program's exit status.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("AUTO", "ENCODE", "DECODE", "RUN", "REGRESS", "PERFORMANCE")
	md.AdditionalHelp(additionalHelp)

	opts := options{
		format:     md.AddString("f", "MITS", "tape format: MITS, CUTS, KCS"),
		outfile:    md.AddString("o", "", "output file. received data when decoding, WAV data when encoding"),
		cmp:        md.AddString("c", "", "compare received data with the contents of file"),
		cmpLeader:  md.AddString("C", "", "as -c but the length of the leader may differ"),
		legacy:     md.AddBool("l", false, "legacy mode. always uses the MITS format"),
		keepGoing:  md.AddBool("k", false, "keep going after a decoding error"),
		quiet:      md.AddBool("q", false, "quiet. no hex dump or log messages"),
		skew:       md.AddBool("s", false, "tape speed skew compensation"),
		prefs:      md.AddString("prefs", "", "preferences as \"key::value; key::value\""),
		digest:     md.AddBool("digest", false, "print digest of received data or generated audio"),
		statsview:  md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address)),
		memviz:     md.AddString("memviz", "", "write graph of final simulation state to file (dot format)"),
		version:    md.AddBool("version", false, "print version information and exit"),
		scriptFile: md.AddString("script", "", "use Lua script as the device under test"),
		profile:    md.AddString("profile", "NONE", "run performance profiler: NONE, CPU, MEM, TRACE, ALL (comma separated)"),
		realtime:   md.AddBool("realtime", false, "limit RUN mode to the speed of the real device"),
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 1
	}

	if *opts.version {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", s)
			}
		}()
	}

	if !*opts.quiet {
		logger.SetEcho(logger.NewColorizer(output, "serial:", "wavwriter:"))
		defer logger.SetEcho(nil)
	}

	if *opts.statsview {
		stop := statsview.Launch(output)
		defer stop()
	}

	if md.Mode() == "REGRESS" {
		err = regress(md, opts, output)
	} else {
		err = run(md, opts, output)
	}
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 1
	}

	return 0
}

func run(md *modalflag.Modes, opts options, output io.Writer) error {
	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("no input file name")
	}
	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	filename := md.GetArg(0)

	profile, err := performance.ParseProfile(*opts.profile)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	if err != nil {
		return err
	}

	// flags override values given with -prefs
	if *opts.quiet {
		_ = env.Prefs.Quiet.Set(true)
	}
	if *opts.keepGoing {
		_ = env.Prefs.KeepGoing.Set(true)
	}
	if *opts.legacy {
		_ = env.Prefs.LegacyMode.Set(true)
	}
	if *opts.skew {
		_ = env.Prefs.SkewCompensation.Set(true)
	}
	if *opts.cmpLeader != "" {
		_ = env.Prefs.IgnoreLeaderLength.Set(true)
	}

	var fw *acr.Firmware
	var dev device.Device

	if *opts.scriptFile != "" {
		scr, err := script.LoadScript(env, *opts.scriptFile)
		if err != nil {
			return err
		}
		defer scr.Close()
		dev = scr
	} else {
		fw = acr.NewFirmware()
		dev = fw
	}

	mcu, err := hardware.NewMCU(env, dev)
	if err != nil {
		return err
	}

	if *opts.memviz != "" {
		defer func() {
			if err := writeMemviz(*opts.memviz, mcu); err != nil {
				fmt.Fprintf(output, "* error: %v\n", err)
			}
		}()
	}

	format, ctrl, err := acr.ParseFormat(*opts.format)
	if err != nil {
		return err
	}
	mcu.Bus.Write(bus.Control, ctrl)

	if env.Prefs.LegacyMode.Value() {
		format = acr.MITS
	}

	mode := md.Mode()
	if mode == "AUTO" {
		if soundload.IsSource(filename) {
			mode = "DECODE"
		} else {
			mode = "ENCODE"
		}
	}

	switch mode {
	case "DECODE":
		fmt.Fprintf(output, "Using '%s' tape format.\n", format)
		return performance.RunProfiler(profile, "acrsim", func() error {
			return decode(env, mcu, fw, filename, opts, output)
		})
	case "ENCODE":
		fmt.Fprintf(output, "Using '%s' tape format.\n", format)
		return performance.RunProfiler(profile, "acrsim", func() error {
			return encode(mcu, filename, opts, output)
		})
	case "RUN":
		return performance.RunProfiler(profile, "acrsim", func() error {
			return runFor(mcu, dev, filename, *opts.realtime)
		})
	case "PERFORMANCE":
		return performance.Check(output, profile, mcu, filename)
	}

	return fmt.Errorf("unknown mode: %s", mode)
}

func decode(env *environment.Environment, mcu *hardware.MCU, fw *acr.Firmware, filename string, opts options, output io.Writer) (rerr error) {
	dec := serial.NewDecoder(env, mcu, mcu.Bus)

	if !env.Prefs.Quiet.Value() {
		dec.SetHexDump(output)
	}

	if *opts.outfile != "" {
		f, err := os.Create(*opts.outfile)
		if err != nil {
			return fmt.Errorf("unable to open output file for writing: %s", *opts.outfile)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		fmt.Fprintf(output, "Writing output data to file: %s\n", *opts.outfile)
		dec.SetOutput(f)
	}

	cmpFile := *opts.cmp
	if *opts.cmpLeader != "" {
		cmpFile = *opts.cmpLeader
	}
	if cmpFile != "" {
		ref, err := os.ReadFile(cmpFile)
		if err != nil {
			return fmt.Errorf("unable to open compare data file: %s", cmpFile)
		}
		fmt.Fprintf(output, "Comparing data with contents of file: %s\n", cmpFile)
		dec.SetComparator(serial.NewComparator(ref, env.Prefs.IgnoreLeaderLength.Value()))
	}

	var dig *digest.Stream
	if *opts.digest {
		dig = digest.NewStream()
		dec.SetDigest(dig)
	}

	// a recording of the signal has clean edges so fewer pulses are required
	// to detect the carrier
	if fw != nil && soundload.IsCSV(filename) {
		fw.SetMinGoodPulses(50)
	}

	err := soundload.Load(env, filename, mcu, dec)

	if ferr := dec.Finish(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	}

	if cmpFile != "" {
		io.WriteString(output, "\n")
	}
	return dec.Summary(output)
}

func encode(mcu *hardware.MCU, filename string, opts options, output io.Writer) error {
	if *opts.outfile == "" {
		return fmt.Errorf("output file required when generating WAV data")
	}
	if *opts.cmp != "" || *opts.cmpLeader != "" {
		return fmt.Errorf("cannot compare output when generating WAV file")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("unable to open input file: %s", filename)
	}

	var dig *digest.Stream
	if *opts.digest {
		dig = digest.NewStream()
	}

	err = wavwriter.WriteFile(mcu, data, *opts.outfile, dig)

	// the digest is still useful if the output became stuck
	if dig != nil && (err == nil || curated.Is(err, wavwriter.BufferStuckFault)) {
		fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	}

	return err
}

// the number of times per second the simulation is synchronised with the wall
// clock in realtime mode
const realtimeRate = 100

// run the device for the number of seconds in the argument
func runFor(mcu *hardware.MCU, dev device.Device, arg string, realtime bool) error {
	secs, err := strconv.ParseFloat(arg, 64)
	if err != nil || secs < 0 {
		return fmt.Errorf("RUN mode requires a duration in seconds: %s", arg)
	}

	end := uint32(secs * float64(mcu.Frequency()))

	// the script device records the first error raised by the script
	type errorer interface {
		Err() error
	}

	var lim *limiter.Limiter
	slice := mcu.Frequency() / realtimeRate
	next := mcu.Clock
	if realtime {
		lim = limiter.NewLimiter(realtimeRate)
		defer lim.Stop()
	}

	return mcu.Run(func() (bool, error) {
		if e, ok := dev.(errorer); ok && e.Err() != nil {
			return false, e.Err()
		}
		if lim != nil && mcu.Clock >= next {
			lim.Wait()
			next += slice
		}
		return mcu.Clock < end, nil
	})
}

func writeMemviz(filename string, mcu *hardware.MCU) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	memviz.Map(f, mcu.Snapshot())
	return f.Close()
}

func regress(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dbFile := paths.ResourcePath("regression", "db")

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("v", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("failonerror", false, "stop at the first test that cannot be run")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRunTests(output, dbFile, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(output, dbFile)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// a nil reader means no confirmation is required
			var confirmation io.Reader
			if !*answerYes {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(output, confirmation, dbFile, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md, opts, output, dbFile)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, opts options, output io.Writer, dbFile string) error {
	md.NewMode()

	mode := md.AddString("mode", "", "type of regression entry: DECODE, ENCODE")

	md.AdditionalHelp(`The regression test to be added is a recording or a data file. If no mode is
given then DECODE is used for recordings and ENCODE for any other file.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("recording or data file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	filename, err := filepath.Abs(md.GetArg(0))
	if err != nil {
		return err
	}

	if *mode == "" {
		if soundload.IsSource(filename) {
			*mode = "DECODE"
		} else {
			*mode = "ENCODE"
		}
	}

	var reg regression.Regressor

	switch strings.ToUpper(*mode) {
	case "DECODE":
		reg, err = regression.NewDecodeEntry(filename, *opts.format, *opts.legacy, *opts.skew)
	case "ENCODE":
		if *opts.legacy || *opts.skew {
			fmt.Fprintln(output, "! jumper settings are ignored when adding an encode entry")
		}
		reg, err = regression.NewEncodeEntry(filename, *opts.format)
	default:
		return fmt.Errorf("unknown regression mode: %s", *mode)
	}
	if err != nil {
		return err
	}

	if err := paths.MkResourceDir(dbFile); err != nil {
		return err
	}

	return regression.RegressAdd(output, dbFile, reg)
}
