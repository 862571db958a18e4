package main

import (
	"flag"
	"path/filepath"
	"strings"
)

type config struct {
	Command string
	Input   string

	OutDir   string
	TreeFile string
	Unit     unit
	LogFile  string
	Verbose  bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.OutDir, "o", "", "")
	flag.StringVar(&c.TreeFile, "tree", "", "")
	flag.Var(&c.Unit, "unit", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// stem returns the base name of the input without its extension.
func (c *config) stem() string {
	base := filepath.Base(c.Input)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); len(stem) > 0 {
		return stem
	}
	return base
}

// encodeDir is the directory that receives the output of encode.
func (c *config) encodeDir() string {
	if len(c.OutDir) > 0 {
		return c.OutDir
	}
	dir := filepath.Join(filepath.Dir(c.Input), c.stem())
	if dir == filepath.Clean(c.Input) {
		// The input has no extension; don't collide with it.
		dir += ".d"
	}
	return dir
}

// decodeDir is the directory that receives the output of decode.
func (c *config) decodeDir() string {
	if len(c.OutDir) > 0 {
		return c.OutDir
	}
	return filepath.Dir(c.Input)
}

// treeFile is the code tree read by decode.
func (c *config) treeFile() string {
	if len(c.TreeFile) > 0 {
		return c.TreeFile
	}
	return c.Input + ".tree"
}
