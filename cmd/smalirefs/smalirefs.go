// smalirefs prints the extends and implements lists of smali classes, or
// writes a stub index for them.
//
//	smalirefs [-index_file stubs.json] [-types_file types.txt] [-glob '**/*.smali'] FILES...
//	smalirefs -write_index stubs.json -glob '**/*.smali'
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/reflist"
	"github.com/l2obster/smali/pkg/stubindex"
	"github.com/l2obster/smali/pkg/typeresolver"
)

type config struct {
	root       string
	globs      collections.StringSlice
	indexFile  string
	writeIndex string
	typesFile  string
	logLevel   string
	dump       bool
	files      []string
}

func main() {
	log.SetPrefix("smalirefs: ")
	log.SetFlags(0) // don't print timestamps

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	args, err := collections.ReadArgsParamsFile(args)
	if err != nil {
		return fmt.Errorf("failed to read params file: %w", err)
	}

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		return err
	}

	files, err := collectFiles(cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files (use -glob or list FILES)")
	}

	units, err := loadUnits(files)
	if err != nil {
		return err
	}
	logger.Debug().Int("files", len(units)).Msg("parsed")

	var index *stubindex.Index
	if cfg.indexFile != "" {
		index, err = stubindex.ReadFile(cfg.indexFile)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", cfg.indexFile).Int("entries", index.Len()).Msg("read stub index")
	}

	if cfg.writeIndex != "" {
		return writeIndex(cfg.writeIndex, units, index, logger)
	}

	if index != nil {
		provider := stubindex.NewProvider(index, stubindex.WithLogger(logger))
		for _, u := range units {
			u.cached = provider.Attach(u.class, u.content)
		}
	}

	types, err := newTypeResolver(cfg.typesFile, units)
	if err != nil {
		return err
	}

	resolver := reflist.NewResolver(
		reflist.WithTypeResolver(typeresolver.NewMemoTypeResolver(types)),
		reflist.WithLogger(logger),
	)
	return report(stdout, resolver, units, cfg.dump)
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("smalirefs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.root, "root", ".", "directory -glob patterns are matched under")
	fs.Var(&cfg.globs, "glob", "a doublestar pattern of smali files under -root (repeatable)")
	fs.StringVar(&cfg.indexFile, "index_file", "", "a stub index (.json, .pbtext or binary) to answer queries from")
	fs.StringVar(&cfg.writeIndex, "write_index", "", "write a stub index for the input files to this path instead of printing")
	fs.StringVar(&cfg.typesFile, "types_file", "", "a file of known canonical type names, one per line")
	fs.StringVar(&cfg.logLevel, "log_level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the resolved reference lists")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: smalirefs @PARAMS_FILE | smalirefs OPTIONS FILES\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.files = fs.Args()

	return cfg, nil
}

func newLogger(level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("-log_level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
