package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/katalvlaran/lll/basisio"
)

// inputFlags select where a basis comes from.
type inputFlags struct {
	format string // auto|text|yaml
	delta  string // overrides the input's threshold when set
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.format, "format", "auto", "Input format (auto|text|yaml); auto picks yaml for .yaml/.yml files")
	fs.StringVar(&f.delta, "delta", "", "Lovász threshold, decimal or fraction (default: from input)")
}

// loadInput reads the request from path, or stdin when path is empty or "-".
func loadInput(cmd *cobra.Command, path string, f *inputFlags) (*basisio.Input, error) {
	in, err := readInput(cmd, path, f.format)
	if err != nil {
		return nil, err
	}
	if f.delta != "" {
		if in.Delta, err = basisio.ParseDelta(f.delta); err != nil {
			return nil, fmt.Errorf("--delta: %w", err)
		}
	}
	log.Debug().
		Int("dimension", len(in.Basis)).
		Str("delta", in.Delta.RatString()).
		Msg("input loaded")

	return in, nil
}

func readInput(cmd *cobra.Command, path, format string) (*basisio.Input, error) {
	if path == "" || path == "-" {
		stdin := cmd.InOrStdin()
		if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return basisio.Prompt(stdin, cmd.OutOrStdout())
		}

		return decode(stdin, format, "")
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return decode(fh, format, path)
}

func decode(r io.Reader, format, path string) (*basisio.Input, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "text"
		}
	}
	switch format {
	case "text":
		return basisio.ReadText(r)
	case "yaml":
		return basisio.ReadYAML(r)
	default:
		return nil, fmt.Errorf("--format %q: want auto, text or yaml", format)
	}
}
