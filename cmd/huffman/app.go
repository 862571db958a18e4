package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/chronos-tachyon/huffman/v2"
	"github.com/chronos-tachyon/huffman/v2/internal/log"
	"github.com/mattn/go-runewidth"
	"go.uber.org/multierr"
)

// Output file suffixes.
const (
	_encodedExt = ".huffman"
	_treeExt    = ".tree"
	_decodedExt = ".decoded"
)

// app implements the commands on top of package huffman. It owns all file
// access; package huffman works only on memory.
type app struct {
	Log    *log.Logger
	Stdout io.Writer
	Clock  clock.Clock
}

func (a *app) readSymbols(cfg *config) ([]huffman.Symbol, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	symbols, err := cfg.Unit.Split(data)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", cfg.Input, err)
	}
	return symbols, nil
}

// Encode compresses cfg.Input, writing the encoded bits and the code tree.
func (a *app) Encode(cfg *config) (err error) {
	start := a.Clock.Now()

	symbols, err := a.readSymbols(cfg)
	if err != nil {
		return err
	}

	freqs := huffman.CountFrequencies(symbols)
	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		return fmt.Errorf("encode %q: %w", cfg.Input, err)
	}
	codes := huffman.GenerateCodes(tree)
	stream, err := huffman.Encode(symbols, codes)
	if err != nil {
		return fmt.Errorf("encode %q: %w", cfg.Input, err)
	}
	a.Log.Debug("built code",
		"symbols", len(symbols),
		"alphabet", tree.NumLeaves(),
		"minBits", codes.MinSize(),
		"maxBits", codes.MaxSize())

	dir := cfg.encodeDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	encodedPath := filepath.Join(dir, cfg.stem()+_encodedExt)
	treePath := encodedPath + _treeExt
	if err := writeFile(encodedPath, []byte(stream.Text())); err != nil {
		return err
	}
	if err := writeFile(treePath, huffman.SerializeTree(tree)); err != nil {
		if rmErr := os.Remove(encodedPath); rmErr != nil {
			a.Log.Errorf("remove partial output %v: %v", encodedPath, rmErr)
		}
		return err
	}

	a.Log.Info("wrote encoded stream", "file", encodedPath, "bits", stream.Len())
	a.Log.Info("wrote code tree", "file", treePath)
	a.Log.Debugf("encode finished in %v", a.Clock.Since(start))
	return nil
}

// Decode restores a file written by Encode.
func (a *app) Decode(cfg *config) (err error) {
	start := a.Clock.Now()

	treePath := cfg.treeFile()
	treeData, err := os.ReadFile(treePath)
	if err != nil {
		return fmt.Errorf("read code tree: %w", err)
	}
	tree, err := huffman.DeserializeTree(treeData)
	if err != nil {
		return fmt.Errorf("read code tree %q: %w", treePath, err)
	}

	text, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	stream, err := huffman.ParseBits(strings.TrimRight(string(text), "\r\n"))
	if err != nil {
		return fmt.Errorf("decode %q: %w", cfg.Input, err)
	}

	symbols, err := huffman.Decode(stream, tree)
	if err != nil {
		return fmt.Errorf("decode %q: %w", cfg.Input, err)
	}
	// Trees written by Encode weigh exactly the number of symbols.
	if weight := tree.Weight(tree.Root()); weight != uint64(len(symbols)) {
		a.Log.Warn("tree weight does not match decoded length",
			"weight", weight,
			"symbols", len(symbols))
	}
	data, err := cfg.Unit.Join(symbols)
	if err != nil {
		return fmt.Errorf("decode %q: %w", cfg.Input, err)
	}

	dir := cfg.decodeDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	decodedPath := filepath.Join(dir, cfg.stem()+_decodedExt)
	if err := writeFile(decodedPath, data); err != nil {
		return err
	}

	a.Log.Info("wrote decoded file", "file", decodedPath, "symbols", len(symbols))
	a.Log.Debugf("decode finished in %v", a.Clock.Since(start))
	return nil
}

// Freq prints the frequency of every symbol in cfg.Input, most frequent
// first.
func (a *app) Freq(cfg *config) error {
	symbols, err := a.readSymbols(cfg)
	if err != nil {
		return err
	}

	rows := huffman.CountFrequencies(symbols).Sorted()
	labels := make([]string, len(rows))
	var width int
	for i, row := range rows {
		labels[i] = cfg.Unit.Format(row.Symbol)
		if w := runewidth.StringWidth(labels[i]); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(runewidth.FillRight(labels[i], width))
		fmt.Fprintf(&sb, "  %d\n", row.Count)
	}
	_, err = io.WriteString(a.Stdout, sb.String())
	return err
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	_, err = f.Write(data)
	return err
}
