package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ePirat/streamreader"
	"github.com/ePirat/streamreader/internal/logging"
)

var usageStr = `
Usage: adtsinfo [options] <file> [offset]

Stream Options:
	-o, --offset <bytes>             Start the startcode search at offset (default: 0)
	    --max-scan <bytes>           Give up the startcode search after bytes (default: 0, unlimited)

Logging Options:
	    --log-level <level>          trace, debug, info, warn, error (default: warn)
	    --log-format <format>        text or json (default: text)
	    --log-file <path>            Write logs to path, rotated daily
	    --log-max-age <days>         Remove rotated logs older than days (default: 0, keep all)

Common Options:
	-h, --help                       Show this message
	-v, --version                    Show version
`

// Exit codes follow sysexits.h.
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
	exitIOErr   = 74
)

// VERSION is printed by -v.
var VERSION = "0.1.0"

// Options holds the parsed command line.
type Options struct {
	Path    string
	Offset  int64
	MaxScan int64

	LogLevel  string
	LogFormat string
	LogFile   string
	LogMaxAge int

	ShowHelp    bool
	ShowVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	exe := "adtsinfo"

	// Parse errors are reported below, once.
	fs := flag.NewFlagSet(exe, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	usage := func() {
		fmt.Fprintf(stderr, "%s\n", usageStr)
	}

	opts, err := configureOptions(fs, args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		usage()
		return exitUsage
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "%s: v%s\n", exe, VERSION)
		return exitOK
	}
	if opts.ShowHelp {
		usage()
		return exitOK
	}

	logCfg := &logging.Config{
		Level:      opts.LogLevel,
		Format:     opts.LogFormat,
		LogPath:    opts.LogFile,
		MaxAgeDays: opts.LogMaxAge,
		Output:     stderr,
	}
	logger, err := logCfg.NewLogger()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitIOErr
	}

	return inspect(opts, logger, stdout, stderr)
}

func configureOptions(fs *flag.FlagSet, args []string) (*Options, error) {
	opts := &Options{}

	fs.BoolVar(&opts.ShowHelp, "h", false, "Show this message")
	fs.BoolVar(&opts.ShowHelp, "help", false, "Show this message")
	fs.BoolVar(&opts.ShowVersion, "v", false, "Show Version")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show Version")
	fs.Int64Var(&opts.Offset, "o", 0, "Byte offset to start the startcode search at.")
	fs.Int64Var(&opts.Offset, "offset", 0, "Byte offset to start the startcode search at.")
	fs.Int64Var(&opts.MaxScan, "max-scan", 0, "Startcode search limit in bytes.")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level.")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "Log format.")
	fs.StringVar(&opts.LogFile, "log-file", "", "Log file path.")
	fs.IntVar(&opts.LogMaxAge, "log-max-age", 0, "Days to keep rotated logs.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	switch fs.NArg() {
	case 0:
		return nil, errors.New("missing input file")
	case 1:
	case 2:
		off, err := strconv.ParseInt(fs.Arg(1), 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid offset %q", fs.Arg(1))
		}
		opts.Offset = off
	default:
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(2))
	}
	opts.Path = fs.Arg(0)

	if opts.Offset < 0 {
		return nil, errors.Errorf("offset must not be negative, got %d", opts.Offset)
	}
	if opts.MaxScan < 0 {
		return nil, errors.Errorf("max-scan must not be negative, got %d", opts.MaxScan)
	}

	return opts, nil
}

// inspect walks the file and prints every header it finds.
func inspect(opts *Options, logger *logrus.Logger, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "Reading file '%s' starting at %d\n", opts.Path, opts.Offset)

	f, err := os.Open(opts.Path)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed opening file: %v\n", err)
		return exitNoInput
	}
	defer f.Close()

	w := streamreader.NewWalker(f, streamreader.Config{
		Offset:        opts.Offset,
		MaxSyncSearch: opts.MaxScan,
		Logger:        logger,
	})

	err = w.Walk(func(fr streamreader.Frame) error {
		if w.Frames() == 1 {
			fmt.Fprintf(stdout, "Found startcode at offset %d\n", fr.Offset)
		}
		printFrame(stdout, fr)
		return nil
	})

	// Running out of data exactly at a frame boundary is how a walk ends.
	if errors.Is(err, io.EOF) && w.Frames() > 0 {
		printSummary(stdout, w)
		logger.WithFields(logrus.Fields{
			"frames": w.Frames(),
			"bytes":  w.Bytes(),
		}).Info("end of stream")
		return exitOK
	}

	logger.WithError(err).WithField("frames", w.Frames()).Error("walk failed")
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitCode(err)
}

// exitCode maps a walk error to a process exit code. A stream that ends
// inside a header or frame, or before any header, is a data error.
func exitCode(err error) int {
	switch streamreader.Code(err) {
	case streamreader.ErrNone:
		return exitOK
	case streamreader.ErrIO:
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return exitDataErr
		}
		return exitIOErr
	default:
		return exitDataErr
	}
}
