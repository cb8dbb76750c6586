// Command brushfix repairs BSP source geometry: it reads an RMF scene,
// tesselates non-planar faces, decomposes non-convex solids, unites
// coplanar faces, snaps nearby vertices together, and writes the result
// back out as either RMF or MAP (spec.md §6; original_source/main.cpp).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/internal/config"
	"github.com/brushfix/brushfix/internal/logger"
	"github.com/brushfix/brushfix/mapfmt"
	"github.com/brushfix/brushfix/rmf"
	"github.com/brushfix/brushfix/scene"
)

const (
	progname       = "brushfix"
	defaultWadList = "wad.txt"
)

// ErrCannotOpen and ErrInvalidOption are the two boundary error kinds run
// wraps into the errors it returns (spec §7); main prints any error and
// exits 1.
var (
	ErrCannotOpen    = fmt.Errorf("can't open file")
	ErrInvalidOption = fmt.Errorf("invalid command line option")
)

// wadFlag implements flag.Value so that "-w" alone (no argument) is
// accepted, defaulting to wad.txt, while "-w somefile" uses somefile.
// IsBoolFlag is the trick that lets flag.Parse accept "-w" with nothing
// after it; splitArgs does the lookahead that turns a following
// filename into the "-w=somefile" form flag.Parse actually consumes.
type wadFlag struct {
	set   bool
	value string
}

func (f *wadFlag) String() string {
	if f == nil {
		return ""
	}
	return f.value
}

func (f *wadFlag) Set(s string) error {
	f.set = true
	if s != "true" {
		f.value = s
	}
	return nil
}

func (f *wadFlag) IsBoolFlag() bool { return true }

type options struct {
	outFile     string
	wad         wadFlag
	mapVersion  int
	writeRMF    bool
	tesselate   bool
	decompose   bool
	unite       bool
	visibleOnly bool
	epsilon     float64
	geoDebug    bool
	rmfDebug    bool
	input       string
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s - BSP brush geometry repair tool\n", progname)
	fmt.Fprintf(os.Stderr, "usage: %s <mapname>[.rmf] [options]\n", progname)
	fmt.Fprintln(os.Stderr, "  -o <outfile>   output file (default <mapname>.map or <mapname>.rmf)")
	fmt.Fprintln(os.Stderr, "  -w [wadfile]   use WAD list file (default wad.txt)")
	fmt.Fprintln(os.Stderr, "  -m <version>   MAP version to output: 220 or 100 (default 220)")
	fmt.Fprintln(os.Stderr, "  -r             output RMF instead of MAP")
	fmt.Fprintln(os.Stderr, "  -nt            don't tesselate non-planar faces")
	fmt.Fprintln(os.Stderr, "  -nd            don't decompose non-convex solids")
	fmt.Fprintln(os.Stderr, "  -nu            don't unite coplanar faces")
	fmt.Fprintln(os.Stderr, "  -na            don't perform any geometry correction")
	fmt.Fprintln(os.Stderr, "  -v             process and output visible objects only")
	fmt.Fprintln(os.Stderr, "  -e <number>    epsilon factor for numeric comparisons (default 1.0)")
	fmt.Fprintln(os.Stderr, "  -gd            dump geometry debug info")
	fmt.Fprintln(os.Stderr, "  -rd            dump RMF parse debug info")
}

// splitArgs separates the one positional input filename from the flag
// arguments. original_source/main.cpp's hand-rolled loop accepts flags
// and the filename in any relative order; Go's flag.FlagSet can't do
// that on its own (it stops parsing at the first non-flag argument), so
// we do our own pass first and hand flag.Parse only the flag half.
func splitArgs(args []string) (flagArgs []string, input string, err error) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			if input != "" {
				return nil, "", fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, a)
			}
			input = a
			continue
		}
		if strings.TrimPrefix(a, "-") == "w" && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			// "-w" is a bool-shaped flag.Value (see wadFlag), so the
			// only way to hand it a value through flag.Parse is the
			// "-w=value" form; a bare "-w value" would leave "value"
			// as an unconsumed positional argument.
			flagArgs = append(flagArgs, "-w="+args[i+1])
			i++
			continue
		}
		switch strings.TrimPrefix(a, "-") {
		case "o", "m", "e":
			// value-taking flags: keep "-o outfile" together so the
			// value is not mistaken for the positional input filename.
			if i+1 < len(args) {
				flagArgs = append(flagArgs, a, args[i+1])
				i++
				continue
			}
		}
		flagArgs = append(flagArgs, a)
	}
	return flagArgs, input, nil
}

func parseArgs(args []string) (options, error) {
	opts := options{
		mapVersion: 220,
		tesselate:  true,
		decompose:  true,
		unite:      true,
		epsilon:    1.0,
	}

	flagArgs, input, err := splitArgs(args)
	if err != nil {
		return opts, err
	}
	if input == "" {
		return opts, fmt.Errorf("%w: you must specify an input file", ErrInvalidOption)
	}
	opts.input = input

	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	fs.Usage = usage

	var (
		fOut      = fs.String("o", "", "")
		fMap      = fs.String("m", "", "")
		fRMF      = fs.Bool("r", false, "")
		fNoTess   = fs.Bool("nt", false, "")
		fNoDecomp = fs.Bool("nd", false, "")
		fNoUnite  = fs.Bool("nu", false, "")
		fNoAny    = fs.Bool("na", false, "")
		fVisible  = fs.Bool("v", false, "")
		fEpsilon  = fs.String("e", "", "")
		fGeoDbg   = fs.Bool("gd", false, "")
		fRMFDbg   = fs.Bool("rd", false, "")
	)
	fs.Var(&opts.wad, "w", "")

	if err := fs.Parse(flagArgs); err != nil {
		return opts, err
	}

	opts.outFile = *fOut
	opts.writeRMF = *fRMF
	opts.visibleOnly = *fVisible
	opts.geoDebug = *fGeoDbg
	opts.rmfDebug = *fRMFDbg

	if *fNoAny {
		opts.tesselate, opts.decompose, opts.unite = false, false, false
	}
	if *fNoTess {
		opts.tesselate = false
	}
	if *fNoDecomp {
		opts.decompose = false
	}
	if *fNoUnite {
		opts.unite = false
	}

	if *fMap != "" {
		switch *fMap {
		case "220":
			opts.mapVersion = 220
		case "100":
			opts.mapVersion = 100
		default:
			return opts, fmt.Errorf("%w: invalid MAP version %q", ErrInvalidOption, *fMap)
		}
	}

	if *fEpsilon != "" {
		v, err := strconv.ParseFloat(*fEpsilon, 64)
		if err != nil {
			return opts, fmt.Errorf("%w: invalid epsilon factor %q", ErrInvalidOption, *fEpsilon)
		}
		opts.epsilon = v
	}

	if !strings.Contains(opts.input, ".") {
		opts.input += ".rmf"
	}
	if opts.outFile == "" {
		ext := ".map"
		if opts.writeRMF {
			ext = ".rmf"
		}
		base := opts.input[:len(opts.input)-len(filepath.Ext(opts.input))]
		opts.outFile = base + ext
	}
	if opts.wad.set && opts.wad.value == "" {
		opts.wad.value = defaultWadList
	}
	if opts.input == opts.outFile {
		return opts, fmt.Errorf("%w: input file can't be the same as output file", ErrInvalidOption)
	}

	return opts, nil
}

func run(args []string, log *logger.Logger) error {
	cfg, err := config.Load("brushfix.yaml")
	if err != nil {
		return fmt.Errorf("reading sidecar config: %w", err)
	}

	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if cfg.EpsilonFactor != 0 && opts.epsilon == 1.0 {
		opts.epsilon = cfg.EpsilonFactor
	}
	if cfg.MapVersion != 0 && opts.mapVersion == 220 {
		opts.mapVersion = cfg.MapVersion
	}
	if opts.wad.set && opts.wad.value == defaultWadList && cfg.WadList != "" {
		opts.wad.value = cfg.WadList
	}

	tol := geo.Tolerance(opts.epsilon) * geo.DefaultEpsilon
	log.Info("using epsilon %g", float64(tol))

	if opts.geoDebug {
		log.SetLevel(logger.DEBUG)
	}
	if opts.rmfDebug {
		rmf.Log.SetLevel(logger.DEBUG)
	}

	log.Info("reading input file %s", opts.input)
	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCannotOpen, opts.input, err)
	}
	sc, err := rmf.Read(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.input, err)
	}

	if opts.wad.set {
		log.Info("reading WAD list file %s", opts.wad.value)
		wadFile, err := os.Open(opts.wad.value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCannotOpen, opts.wad.value, err)
		}
		wads, err := readWadList(wadFile)
		wadFile.Close()
		if err != nil {
			return err
		}
		sc.SetValue("wad", strings.Join(wads, ";"))
	}

	log.Info("processing scene")
	walker := scene.NewWalker(scene.Options{
		Tesselate:   opts.tesselate,
		Decompose:   opts.decompose,
		Unite:       opts.unite,
		VisibleOnly: opts.visibleOnly,
		Tolerance:   tol,
		GeoDebug:    opts.geoDebug,
	}, log)
	walker.Walk(sc)

	log.Info("writing output file %s", opts.outFile)
	out, err := os.Create(opts.outFile)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCannotOpen, opts.outFile, err)
	}
	defer out.Close()

	if opts.writeRMF {
		err = rmf.Write(out, sc)
	} else {
		err = mapfmt.Write(out, sc, opts.mapVersion, tol)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", opts.outFile, err)
	}
	return nil
}

func readWadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

func main() {
	fmt.Printf("%s - BSP brush geometry repair\n", progname)

	if err := run(os.Args[1:], logger.Default); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
