// Command jsonfmt reformats a JSON document, minified or pretty-printed,
// reading from a file argument or stdin and writing to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	fastjson "github.com/mcvoid/fastjson"
)

type config struct {
	pretty bool
	indent int
	input  string
}

func main() {
	cfg := &config{}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:           "jsonfmt [flags] [file]",
		Short:         "Reformat a JSON document",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.input = args[0]
			}
			return run(cfg, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.pretty, "pretty", "p", false, "pretty-print instead of minifying")
	flags.IntVarP(&cfg.indent, "indent", "i", 2, "spaces per indent level when --pretty is set")

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("jsonfmt failed")
		os.Exit(1)
	}
}

func run(cfg *config, logger zerolog.Logger) error {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	if cfg.input == "" || cfg.input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(cfg.input)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	value, err := fastjson.ParseBytes(data)
	if err != nil {
		logger.Error().
			Err(err).
			Str("file", displayName(cfg.input)).
			Int("bytes", len(data)).
			Msg("parse failed")
		return err
	}

	var out string
	mode := "minified"
	if cfg.pretty {
		out = fastjson.StringifyPretty(value, cfg.indent)
		mode = "pretty"
	} else {
		out = fastjson.Stringify(value)
	}

	if _, err := fmt.Println(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info().
		Str("file", displayName(cfg.input)).
		Int("bytes", len(data)).
		Str("mode", mode).
		Dur("duration", time.Since(start)).
		Msg("formatted")

	return nil
}

func displayName(input string) string {
	if input == "" {
		return "-"
	}
	return input
}
