// huffman compresses text files with a Huffman code and restores them.
//
// The encoded stream is stored as a file of '0' and '1' characters next to
// the serialized code tree needed to decode it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/chronos-tachyon/huffman/v2/internal/log"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Clock:  clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

const _name = "huffman"

const _usage = `usage: %v [options] COMMAND INPUT

Compresses a file with a Huffman code built from its own symbol frequencies,
or restores a file compressed this way.

The following commands are available:

	encode INPUT
		writes DIR/NAME.huffman, the encoded bits as '0' and '1'
		characters, and DIR/NAME.huffman.tree, the code tree.
	decode INPUT
		reads the tree named by -tree and writes DIR/NAME.decoded.
	freq INPUT
		prints how often each symbol occurs, most frequent first.

The following flags are available:

	-o DIR
		directory for output files.
		encode uses the input file name without its extension by
		default; decode uses the directory holding INPUT.
	-tree FILE
		code tree used by decode.
		Uses INPUT.tree by default.
	-unit UNIT
		how the input is split into symbols: 'rune' for UTF-8
		characters or 'byte' for raw bytes.
		Uses 'rune' by default.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.
`

func run(cmd *mainCmd, args []string) (err error) {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffman version %v\n", _version)
		return nil
	}

	args = flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return errNoCommand
	}
	cfg.Command, args = args[0], args[1:]
	if len(args) != 1 {
		return fmt.Errorf("%v: expected exactly one INPUT, got %q", cfg.Command, args)
	}
	cfg.Input = args[0]

	return cmd.Run(&cfg)
}

var errNoCommand = errors.New("please specify a command: encode, decode, or freq")

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		var f *os.File
		f, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %w", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	logger := log.New(stderr)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	app := &app{
		Log:    logger.WithName(cfg.Command),
		Stdout: cmd.Stdout,
		Clock:  cmd.Clock,
	}

	switch cfg.Command {
	case "encode":
		return app.Encode(cfg)
	case "decode":
		return app.Decode(cfg)
	case "freq":
		return app.Freq(cfg)
	default:
		return fmt.Errorf("unknown command %q: expected encode, decode, or freq", cfg.Command)
	}
}
