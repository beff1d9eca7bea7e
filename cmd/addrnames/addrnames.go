// addrnames prints the preferred symbolic name of every named address in one
// or more PE or ELF images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/stackb/addrnames/pkg/collections"
	"github.com/stackb/addrnames/pkg/demangler"
	"github.com/stackb/addrnames/pkg/dwarfinfo"
	"github.com/stackb/addrnames/pkg/glob"
	"github.com/stackb/addrnames/pkg/image"
	"github.com/stackb/addrnames/pkg/logger"
	"github.com/stackb/addrnames/pkg/nameconfig"
	"github.com/stackb/addrnames/pkg/names"
	"github.com/stackb/addrnames/pkg/ordinal"
	"github.com/stackb/addrnames/pkg/progress"
)

const usage = `usage: addrnames [flags] IMAGE_GLOB...

Prints address, preferred name and origin for every named address of each
matched PE or ELF image.

`

type flags struct {
	configFile   string
	ordinalDir   string
	ordinalExt   string
	dwarf        bool
	demangleMode string
	all          bool
	dump         bool
	lookup       string
	logLevel     string
	logFormat    string
	metrics      bool
	quiet        bool
	excludes     collections.StringSlice
	addrs        collections.AddressSlice
	patterns     []string
}

func main() {
	log.SetPrefix("addrnames: ")
	log.SetFlags(0) // don't print timestamps

	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	var f flags

	fs := flag.NewFlagSet("addrnames", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&f.configFile, "config", "", "HCL file with entry point, function, global and segment names")
	fs.StringVar(&f.ordinalDir, "ordinal_dir", "", "directory of per-library ordinal tables (overrides the config file)")
	fs.StringVar(&f.ordinalExt, "ordinal_ext", ordinal.DefaultExtension, "file extension of ordinal tables")
	fs.BoolVar(&f.dwarf, "dwarf", false, "read names from DWARF debug information")
	fs.StringVar(&f.demangleMode, "demangle", string(demangler.Full), "demangling of printed names: full, simplified, templates or none")
	fs.BoolVar(&f.all, "all", false, "also print the alternative names of each address")
	fs.BoolVar(&f.dump, "dump", false, "dump the name sets of each address instead of a table")
	fs.StringVar(&f.lookup, "lookup", "", "only print the addresses carrying this name")
	fs.StringVar(&f.logLevel, "log_level", "warn", "log level")
	fs.StringVar(&f.logFormat, "log_format", string(logger.FormatConsole), "log format: console or json")
	fs.BoolVar(&f.metrics, "metrics", false, "print ordinal table metrics after processing")
	fs.BoolVar(&f.quiet, "quiet", false, "suppress progress output")
	fs.Var(&f.excludes, "exclude", "glob of images to skip (repeatable)")
	fs.Var(&f.addrs, "addr", "only print this address (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.patterns = fs.Args()
	if len(f.patterns) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("positional args should be a non-empty list of image globs")
	}
	return &f, nil
}

func run(args []string, fsys afero.Fs, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logs, err := logger.New(stderr, logger.Format(f.logFormat), f.logLevel)
	if err != nil {
		return err
	}

	mode, err := demangler.ParseMode(f.demangleMode)
	if err != nil {
		return err
	}
	dm := demangler.New(mode)

	cfg, err := loadConfig(fsys, f)
	if err != nil {
		return err
	}

	files, err := glob.Apply(fsys, glob.Value{Patterns: f.patterns, Excludes: f.excludes})
	if err != nil {
		return err
	}

	out := progress.Discard
	if !f.quiet {
		out = progress.NewProgressOutput(stderr, "images")
	}

	reg := prometheus.NewRegistry()
	dir := names.NewDirectory[string](
		names.WithLogger(logs),
		names.WithFs(fsys),
		names.WithOrdinalMetrics(ordinal.NewMetrics(reg)),
		names.WithOrdinalExtension(f.ordinalExt),
	)

	for i, filename := range files {
		if err := progress.Update(out, filename, "reading", int64(i+1), int64(len(files))); err != nil {
			logs.Debug().Err(err).Msg("progress error")
		}

		registry, err := buildRegistry(dir, fsys, filename, cfg, dm, f.dwarf, logs)
		if err != nil {
			return err
		}
		if err := progress.Messagef(out, filename, "%d named addresses", registry.Len()); err != nil {
			logs.Debug().Err(err).Msg("progress error")
		}

		if err := printRegistry(stdout, filename, registry, f); err != nil {
			return err
		}
	}

	if f.metrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func loadConfig(fsys afero.Fs, f *flags) (*nameconfig.Config, error) {
	cfg := nameconfig.New()
	if f.configFile != "" {
		var err error
		if cfg, err = nameconfig.LoadFile(fsys, f.configFile); err != nil {
			return nil, err
		}
	}
	if f.ordinalDir != "" {
		cfg.SetOrdinalNumbersDirectory(f.ordinalDir)
	}
	return cfg, nil
}

func buildRegistry(dir *names.Directory[string], fsys afero.Fs, filename string, cfg names.Config, dm names.Demangler, withDWARF bool, logs zerolog.Logger) (*names.Registry, error) {
	img, err := image.Open(fsys, filename)
	if err != nil {
		return nil, err
	}

	var opts []names.Option
	if withDWARF {
		data, err := img.DWARF()
		if err != nil {
			logs.Warn().Err(err).Str("image", filename).Msg("no usable debug information")
		} else {
			info, err := dwarfinfo.New(data, img.ByteOrder(), dwarfinfo.WithLogger(logs))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			opts = append(opts, names.WithDebugInfo(info))
		}
	}

	registry, err := dir.BuildOrFetch(filename, cfg, img, dm, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return registry, nil
}

func printRegistry(w io.Writer, filename string, registry *names.Registry, f *flags) error {
	addrs := registry.Addresses()
	if f.lookup != "" {
		addrs = registry.AddressesForName(f.lookup)
	}
	addrs = f.addrs.Filter(addrs)

	if f.dump {
		for _, a := range addrs {
			fmt.Fprintf(w, "%s %s\n", filename, a)
			spew.Fdump(w, registry.NamesFor(a).Slice())
		}
		return nil
	}

	dm := registry.Demangler()
	header := []string{"Address", "Name", "Origin"}
	if f.all {
		header = append(header, "Alternatives")
	}

	fmt.Fprintf(w, "%s\n", filename)
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, a := range addrs {
		ns := registry.NamesFor(a)
		preferred := ns.Preferred()
		row := []string{a.String(), dm.Demangle(preferred.Text()), preferred.Origin().String()}
		if f.all {
			var alternatives []string
			for n := range ns.All() {
				if n == preferred {
					continue
				}
				alternatives = append(alternatives, fmt.Sprintf("%s (%s)", dm.Demangle(n.Text()), n.Origin()))
			}
			row = append(row, strings.Join(alternatives, ", "))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
