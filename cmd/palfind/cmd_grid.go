package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palindromes/builder"
	"github.com/katalvlaran/palindromes/palgrid"
)

// gridFlags are the grid subcommand's own flags.
type gridFlags struct {
	file       string
	random     string
	seed       int64
	alphabet   string
	workers    int
	directions []string
}

// gridFile is the YAML grid document: {rows: ["abc", "def"]}.
type gridFile struct {
	Rows []string `yaml:"rows"`
}

// newGridCmd runs the grid finder on a file, stdin or a random grid.
func newGridCmd(a *app) *cobra.Command {
	def := DefaultConfig().Grid
	f := &gridFlags{}
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "List the palindromes along every row, column and diagonal of a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.merge(cmd, a.cfg.Grid)
			return a.runGrid(f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "grid file: one row per line, or .yaml/.yml with a rows list; - for stdin")
	fl.StringVar(&f.random, "random", "", "generate a random RxC grid instead of reading one, e.g. 20x30")
	fl.Int64Var(&f.seed, "seed", def.Seed, "seed for --random")
	fl.StringVar(&f.alphabet, "alphabet", def.Alphabet, "symbols for --random")
	fl.IntVarP(&f.workers, "workers", "w", def.Workers, "sequences processed concurrently")
	fl.StringSliceVar(&f.directions, "directions", def.Directions, "families to scan: rows, columns, down, up")
	cmd.MarkFlagsMutuallyExclusive("file", "random")
	cmd.MarkFlagsOneRequired("file", "random")

	return cmd
}

// merge takes config-file values for every flag the user did not set.
func (f *gridFlags) merge(cmd *cobra.Command, cfg GridConfig) {
	fl := cmd.Flags()
	if !fl.Changed("seed") {
		f.seed = cfg.Seed
	}
	if !fl.Changed("alphabet") {
		f.alphabet = cfg.Alphabet
	}
	if !fl.Changed("workers") {
		f.workers = cfg.Workers
	}
	if !fl.Changed("directions") {
		f.directions = cfg.Directions
	}
}

// runGrid loads the grid, runs the finder and writes one result.
func (a *app) runGrid(f *gridFlags) error {
	if f.workers < 1 {
		return fmt.Errorf("workers=%d: %w", f.workers, ErrBadConfig)
	}
	if f.alphabet == "" {
		return fmt.Errorf("alphabet is empty: %w", ErrBadConfig)
	}
	dirs := make([]palgrid.Direction, 0, len(f.directions))
	for _, name := range f.directions {
		d, err := palgrid.ParseDirection(name)
		if err != nil {
			return err
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no directions: %w", ErrBadConfig)
	}

	g, source, err := a.loadGrid(f)
	if err != nil {
		return err
	}
	start := time.Now()
	set, err := palgrid.FindAll(g, palgrid.WithDirections(dirs...), palgrid.WithWorkers(f.workers))
	if err != nil {
		return err
	}
	a.logger.Info("grid scanned",
		slog.String("source", source),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.Int("workers", f.workers),
		slog.Int("palindromes", set.Len()),
		slog.Duration("elapsed", time.Since(start)))

	return a.writeResults([]Result{newResult(source, set)})
}

// loadGrid resolves --random or --file into a Grid and a source label.
func (a *app) loadGrid(f *gridFlags) (*palgrid.Grid, string, error) {
	if f.random != "" {
		rows, cols, err := parseShape(f.random)
		if err != nil {
			return nil, "", err
		}
		cells, err := builder.RandomGrid(rows, cols, builder.WithSeed(f.seed), builder.WithAlphabet(f.alphabet))
		if err != nil {
			return nil, "", err
		}
		g, err := palgrid.NewGrid(cells)
		return g, fmt.Sprintf("random %dx%d seed=%d", rows, cols, f.seed), err
	}

	var (
		r   io.Reader
		ext string
	)
	if f.file == "-" {
		r = os.Stdin
	} else {
		fh, err := os.Open(f.file)
		if err != nil {
			return nil, "", err
		}
		defer fh.Close()
		r, ext = fh, strings.ToLower(filepath.Ext(f.file))
	}
	lines, err := readGridLines(r, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, "", fmt.Errorf("grid %s: %w", f.file, err)
	}
	g, err := palgrid.NewGridFromStrings(lines)
	if err != nil {
		return nil, "", fmt.Errorf("grid %s: %w", f.file, err)
	}
	a.logger.Debug("grid loaded", slog.String("file", f.file), slog.Int("rows", g.Rows()))

	return g, f.file, nil
}

// parseShape reads an RxC size such as "20x30". Anything else, trailing
// text included, is rejected.
func parseShape(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(s, "x")
	if ok {
		rows, err = strconv.Atoi(r)
		if err == nil {
			cols, err = strconv.Atoi(c)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("--random %q (want RxC): %w", s, ErrBadConfig)
	}

	return rows, cols, nil
}

// readGridLines parses either a YAML rows document or plain text. Plain
// text drops a trailing carriage return and blank lines around the board;
// a blank line inside it stays as an empty row so the grid check rejects it.
func readGridLines(r io.Reader, asYAML bool) ([]string, error) {
	if asYAML {
		var doc gridFile
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Rows, nil
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, sc.Err()
}
