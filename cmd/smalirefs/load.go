package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/l2obster/smali/pkg/smali"
	"github.com/l2obster/smali/pkg/stubindex"
	"github.com/l2obster/smali/pkg/typeresolver"
)

type unit struct {
	filename string
	class    *smali.Class
	content  []byte
	// cached is true when stubs from the index are attached
	cached bool
}

// collectFiles returns the listed files followed by the -glob matches, in a
// stable order and without duplicates.
func collectFiles(cfg *config) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}

	for _, f := range cfg.files {
		add(filepath.Clean(f))
	}

	fsys := os.DirFS(cfg.root)
	for _, pattern := range cfg.globs {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("-glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(filepath.Join(cfg.root, m))
		}
	}

	return files, nil
}

// loadUnits parses the files concurrently.  Units are returned in file order.
func loadUnits(files []string) ([]*unit, error) {
	units := make([]*unit, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			class, content, err := smali.ParseFile(filename)
			if err != nil {
				return err
			}
			units[i] = &unit{filename: filename, class: class, content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

// newTypeResolver chains the known types: the parsed classes first, then the
// types listed in typesFile, then the predefined platform types.
func newTypeResolver(typesFile string, units []*unit) (typeresolver.TypeResolver, error) {
	sources := typeresolver.NewScope()
	for _, u := range units {
		name := u.class.QualifiedName()
		if name == "" {
			continue
		}
		if err := sources.PutType(typeresolver.NewType(name, "source", u.filename)); err != nil {
			return nil, err
		}
	}

	listed := typeresolver.NewScope()
	if typesFile != "" {
		f, err := os.Open(typesFile)
		if err != nil {
			return nil, fmt.Errorf("-types_file: %w", err)
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			name := strings.TrimSpace(scanner.Text())
			if name == "" || strings.HasPrefix(name, "#") {
				continue
			}
			if err := listed.PutType(typeresolver.NewType(name, "types_file", typesFile)); err != nil {
				return nil, err
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("-types_file: %w", err)
		}
	}

	return typeresolver.NewChainTypeResolver(sources, listed, typeresolver.NewPredefinedScope()), nil
}

// writeIndex builds entries for the parsed classes and writes them.  Entries
// of a previous index are kept for classes that were not parsed this time.
func writeIndex(filename string, units []*unit, previous *stubindex.Index, logger zerolog.Logger) error {
	fresh := stubindex.NewIndex()
	for _, u := range units {
		if u.class.QualifiedName() == "" {
			logger.Warn().Str("file", u.filename).Msg("missing .class directive, not indexed")
			continue
		}
		if !fresh.Put(stubindex.Build(u.class, u.content)) {
			logger.Warn().Str("file", u.filename).Str("class", u.class.QualifiedName()).Msg("duplicate class, not indexed")
		}
	}

	index := fresh
	if previous != nil {
		index = stubindex.Merge(func(format string, args ...interface{}) {
			logger.Warn().Msgf(format, args...)
		}, fresh, previous)
	}

	if err := stubindex.WriteFile(filename, index); err != nil {
		return err
	}
	logger.Info().Str("file", filename).Int("entries", index.Len()).Msg("wrote stub index")
	return nil
}
