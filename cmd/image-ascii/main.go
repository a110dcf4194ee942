package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/ironsheep/image-ascii/internal/convert"
	"github.com/ironsheep/image-ascii/internal/imaging"
	"github.com/ironsheep/image-ascii/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "image-ascii"
	parser.Usage = "[OPTIONS] INPUT"

	if _, err := parser.ParseArgs(argv); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if opts.Version {
		fmt.Fprintf(stdout, "image-ascii %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	level, _ := opts.LogLevel()
	slog.SetDefault(newLogger(stderr, level))

	if opts.Serve {
		server.Version = Version
		slog.Info("starting MCP server", "version", Version, "commit", GitCommit)
		if err := server.New().Run(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := convertFile(&opts, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger logs to stderr; stdout carries the art or the protocol.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func convertFile(opts *Options, stdout io.Writer) error {
	convOpts, err := opts.ConvertOptions()
	if err != nil {
		return err
	}

	start := time.Now()
	img, err := imaging.NewImageCache().Load(opts.Args.Input)
	if err != nil {
		return err
	}
	slog.Debug("loaded image", "path", opts.Args.Input,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "elapsed", time.Since(start))

	res, err := convert.Convert(img, convOpts)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		view := res.Color
		if opts.NoColor {
			view = res.Plain
		}
		_, err := io.WriteString(stdout, view)
		return err
	}

	n, err := writeOutput(opts.Output, res, opts.Background)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Written %d bytes to %s\n", n, opts.Output)
	return nil
}

// outputView picks what goes into an output file by its extension: .html
// gets a web page, .ans and .ansi keep the color escapes, anything else
// gets plain characters.
func outputView(path string, res *convert.Result, background bool) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return res.HTML(background)
	case ".ans", ".ansi":
		return res.Color
	default:
		return res.Plain
	}
}

func writeOutput(path string, res *convert.Result, background bool) (int, error) {
	data := outputView(path, res, background)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return len(data), nil
}
