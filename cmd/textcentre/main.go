// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/textcentre"
	"github.com/poiesic/textcentre/config"
	"github.com/urfave/cli/v2"
)

const configMetadataKey = "config"

// newToolkit builds the Toolkit used by the AI backed commands.
var newToolkit = func(cfg *config.Config) (*textcentre.Toolkit, error) {
	return textcentre.NewToolkitFromConfig(cfg)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	fileFlag := &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read the text from `PATH` instead of arguments or stdin",
	}

	return &cli.App{
		Name:  "textcentre",
		Usage: "Text statistics, capitalization, calligraphy, similarity and proofreading",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error); overrides the config file",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML configuration file",
			},
		},
		Before: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}
			return setupLogger(c)
		},
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "Count words, characters, sentences and paragraphs",
				ArgsUsage: "[text]",
				Action:    statsCommand,
				Flags:     []cli.Flag{fileFlag},
			},
			{
				Name:      "capitalize",
				Usage:     "Capitalize the first letter of every sentence",
				ArgsUsage: "[text]",
				Action:    capitalizeCommand,
				Flags:     []cli.Flag{fileFlag},
			},
			{
				Name:      "styles",
				Usage:     "Render text in stylized Unicode alphabets",
				ArgsUsage: "[text]",
				Action:    stylesCommand,
				Flags: []cli.Flag{
					fileFlag,
					&cli.StringFlag{
						Name:    "style",
						Aliases: []string{"s"},
						Usage:   "Render only the style with this `KEY`",
					},
					&cli.BoolFlag{
						Name:  "list",
						Usage: "List the available style keys",
					},
				},
			},
			{
				Name:   "similarity",
				Usage:  "Score the lexical and semantic similarity of two texts",
				Action: similarityCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "a",
						Usage: "First text",
					},
					&cli.StringFlag{
						Name:  "b",
						Usage: "Second text",
					},
					&cli.StringFlag{
						Name:  "pairs",
						Usage: "Compare every line of a tab-separated `FILE` holding two texts per line",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report batch progress every N pairs",
						Value: 10,
					},
				},
			},
			{
				Name:      "font",
				Usage:     "Preview web fonts by name",
				ArgsUsage: "NAME [NAME...]",
				Action:    fontCommand,
			},
			{
				Name:      "proofread",
				Usage:     "Correct grammar and spelling",
				ArgsUsage: "[text]",
				Action:    proofreadCommand,
				Flags: []cli.Flag{
					fileFlag,
					&cli.StringFlag{
						Name:  "language",
						Usage: "Language of the text, such as en, es or pt-BR",
						Value: "en",
					},
				},
			},
			{
				Name:   "languages",
				Usage:  "List the languages supported by proofread",
				Action: languagesCommand,
			},
		},
	}
}

func loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configMetadataKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configMetadataKey].(*config.Config); ok {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

func setupLogger(c *cli.Context) error {
	// The flag wins over the configured level
	levelStr := strings.ToLower(c.String("log-level"))
	if levelStr == "" {
		levelStr = configFrom(c).LogLevel
	}

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// readInput returns the text named by --file, the joined arguments, or stdin,
// in that order of preference.
func readInput(c *cli.Context) (string, error) {
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	if c.Args().Present() {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	reader := c.App.Reader
	if reader == nil {
		reader = os.Stdin
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// writeRows prints rows as a table on terminals and as tab-separated lines
// otherwise.
func writeRows(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment) {
	if isTerminal(w) {
		fmt.Fprintln(w, renderTable(headers, rows, aligns))
		return
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}
