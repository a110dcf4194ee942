package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ironsheep/image-ascii/internal/convert"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// Options are the command line flags.
type Options struct {
	Characters string  `short:"c" long:"characters" description:"Density preset (short|s|0, medium|m|1, long|l|2) or custom characters, dark to light" default:"short"`
	Size       int     `short:"s" long:"size" description:"Number of columns, clamped to 80-200"`
	Width      int     `short:"w" long:"width" description:"Exact number of columns"`
	Height     int     `short:"H" long:"height" description:"Exact number of rows"`
	Fit        bool    `long:"fit" description:"Fit the output to the terminal (default when no size is given)"`
	Ratio      float64 `short:"r" long:"ratio" description:"Character cell aspect correction" default:"0.43"`
	FlipX      bool    `long:"flipX" description:"Mirror the output horizontally"`
	FlipY      bool    `long:"flipY" description:"Mirror the output vertically"`
	Invert     bool    `long:"invert" description:"Reverse the density table"`
	NoColor    bool    `long:"no-color" description:"Print without color escapes"`
	Background bool    `long:"background" description:"Color the cell background instead of the character"`
	Border     bool    `long:"border" description:"Frame the output with a border"`
	Threads    int     `short:"t" long:"thread" description:"Worker threads used for rendering" default:"4"`
	Output     string  `short:"o" long:"output" description:"Write to a file instead; .html writes a web page, .ans/.ansi keeps colors"`
	Brightness float64 `long:"brightness" description:"Brightness change in [-1, 1] applied first"`
	Contrast   float64 `long:"contrast" description:"Contrast change in [-1, 1] applied first"`
	Gamma      float64 `long:"gamma" description:"Gamma correction applied first"`
	Region     string  `long:"region" description:"Convert only x1,y1,x2,y2 or a named region (top-left, center, right-half, ...)"`
	Verbose    string  `long:"verbose" description:"Log level: error, warn, info or debug" optional:"yes" optional-value:"debug"`
	Serve      bool    `long:"serve" description:"Run as an MCP server on stdin/stdout"`
	Version    bool    `long:"version" description:"Print version information"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"Image to convert"`
	} `positional-args:"yes"`
}

// ErrNoInput is returned when no image path is given.
var ErrNoInput = errors.New("missing input image argument")

// Validate rejects flag combinations that cannot be honored together.
func (o *Options) Validate() error {
	if o.Serve || o.Version {
		return nil
	}
	if o.Args.Input == "" {
		return ErrNoInput
	}
	switch {
	case o.Size != 0 && (o.Width != 0 || o.Height != 0):
		return fmt.Errorf("--size cannot be used with --width or --height")
	case o.Fit && (o.Size != 0 || o.Width != 0 || o.Height != 0):
		return fmt.Errorf("--fit cannot be used with --size, --width or --height")
	case o.Background && o.NoColor:
		return fmt.Errorf("--background cannot be used with --no-color")
	case o.Size < 0 || o.Width < 0 || o.Height < 0:
		return fmt.Errorf("sizes must be positive")
	case o.Threads < 1:
		return fmt.Errorf("--thread must be at least 1, got %d", o.Threads)
	case o.Ratio <= 0:
		return fmt.Errorf("--ratio must be positive, got %v", o.Ratio)
	}
	if _, err := o.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the level selected by --verbose, falling back to the
// IMAGE_ASCII_LOG_LEVEL environment variable and then to warn.
func (o *Options) LogLevel() (slog.Level, error) {
	return parseLevel(o.Verbose, os.Getenv("IMAGE_ASCII_LOG_LEVEL"))
}

func parseLevel(flag, env string) (slog.Level, error) {
	text := flag
	if text == "" {
		text = env
	}
	if text == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(text))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", text)
	}
	return level, nil
}

// ConvertOptions maps the flags onto a conversion request.
func (o *Options) ConvertOptions() (convert.Options, error) {
	opts := convert.Options{
		Size:           o.Size,
		Width:          o.Width,
		Height:         o.Height,
		FitTerminal:    o.Fit,
		Density:        o.Characters,
		Scale:          o.Ratio,
		FlipHorizontal: o.FlipX,
		FlipVertical:   o.FlipY,
		Invert:         o.Invert,
		NoColor:        o.NoColor,
		Background:     o.Background,
		Border:         o.Border,
		Threads:        o.Threads,
		Adjustments: imaging.Adjustments{
			Brightness: o.Brightness,
			Contrast:   o.Contrast,
			Gamma:      o.Gamma,
		},
	}
	if o.Region != "" {
		region, err := imaging.ParseRegion(o.Region)
		if err != nil {
			return opts, err
		}
		opts.Region = region
	}
	return opts, nil
}
