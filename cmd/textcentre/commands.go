package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/textcentre/ai"
	"github.com/poiesic/textcentre/calligraphy"
	"github.com/poiesic/textcentre/capitalize"
	"github.com/poiesic/textcentre/similarity"
	"github.com/poiesic/textcentre/stats"
	"github.com/urfave/cli/v2"
)

func statsCommand(c *cli.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}

	s := stats.Compute(input)
	writeRows(c.App.Writer, []string{"Metric", "Count"}, [][]string{
		{"words", strconv.Itoa(s.Words)},
		{"characters", strconv.Itoa(s.Characters)},
		{"sentences", strconv.Itoa(s.Sentences)},
		{"paragraphs", strconv.Itoa(s.Paragraphs)},
	}, []columnAlignment{alignLeft, alignRight})
	return nil
}

func capitalizeCommand(c *cli.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}
	output := capitalize.Sentences(input)
	fmt.Fprint(c.App.Writer, output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(c.App.Writer)
	}
	return nil
}

func stylesCommand(c *cli.Context) error {
	if c.Bool("list") {
		for _, key := range calligraphy.Keys() {
			fmt.Fprintln(c.App.Writer, key)
		}
		return nil
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}

	if key := c.String("style"); key != "" {
		rendered, err := calligraphy.Render(key, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, rendered)
		return nil
	}

	entries := calligraphy.Styles(input)
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Key, entry.Name, entry.Content}
	}
	writeRows(c.App.Writer, []string{"Key", "Style", "Text"}, rows, nil)
	return nil
}

func similarityCommand(c *cli.Context) error {
	pairsPath := c.String("pairs")
	if pairsPath == "" && (!c.IsSet("a") || !c.IsSet("b")) {
		return fmt.Errorf("either --a and --b, or --pairs is required")
	}

	toolkit, err := newToolkit(configFrom(c))
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}
	defer toolkit.Close()

	ctx := context.Background()

	if pairsPath == "" {
		result := toolkit.Compare(ctx, c.String("a"), c.String("b"))
		writeRows(c.App.Writer, []string{"Metric", "Value"}, [][]string{
			{"lexical", strconv.Itoa(result.LexicalScore)},
			{"semantic", strconv.Itoa(result.SemanticScore)},
			{"explanation", result.Explanation},
		}, nil)
		return nil
	}

	pairs, err := readPairs(pairsPath)
	if err != nil {
		return err
	}
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	progress := similarity.NewProgressTracker(c.App.ErrWriter, len(pairs), c.Int("report-interval"))
	results, err := toolkit.CompareAll(ctx, pairs, progress)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	rows := make([][]string, len(results))
	for i, result := range results {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(result.LexicalScore),
			strconv.Itoa(result.SemanticScore),
			result.Explanation,
		}
	}
	writeRows(c.App.Writer, []string{"#", "Lexical", "Semantic", "Explanation"}, rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft})
	return nil
}

// readPairs parses a tab-separated file with two texts per line.
func readPairs(path string) ([]similarity.Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = 2

	var pairs []similarity.Pair
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse pairs: %w", err)
		}
		pairs = append(pairs, similarity.Pair{A: record[0], B: record[1]})
	}
	return pairs, nil
}

func fontCommand(c *cli.Context) error {
	if !c.Args().Present() {
		return fmt.Errorf("at least one font name is required")
	}

	toolkit, err := newToolkit(configFrom(c))
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}
	defer toolkit.Close()

	ctx := context.Background()
	previews := make(map[string]calligraphy.FontPreview)
	for _, name := range c.Args().Slice() {
		preview, err := toolkit.PreviewFont(ctx, name)
		if err != nil {
			return err
		}
		previews[preview.Name] = preview
	}

	var rows [][]string
	for _, name := range toolkit.Fonts() {
		preview := previews[name]
		rows = append(rows, []string{preview.Name, preview.URL, strconv.FormatBool(preview.Loaded)})
	}
	writeRows(c.App.Writer, []string{"Font", "Stylesheet", "Loaded"}, rows, nil)
	return nil
}

func proofreadCommand(c *cli.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}

	toolkit, err := newToolkit(configFrom(c))
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}
	defer toolkit.Close()

	result, err := toolkit.Proofread(context.Background(), input, c.String("language"))
	if err != nil {
		return fmt.Errorf("proofreading failed: %w", err)
	}

	fmt.Fprintln(c.App.Writer, result.CorrectedText)
	if len(result.Corrections) == 0 {
		return nil
	}

	rows := make([][]string, len(result.Corrections))
	for i, correction := range result.Corrections {
		rows[i] = []string{correction.Original, correction.Replacement, correction.Reason}
	}
	fmt.Fprintln(c.App.Writer)
	writeRows(c.App.Writer, []string{"Original", "Replacement", "Reason"}, rows, nil)
	return nil
}

func languagesCommand(c *cli.Context) error {
	rows := make([][]string, len(ai.SupportedLanguages))
	for i, language := range ai.SupportedLanguages {
		rows[i] = []string{language.Code, language.Name}
	}
	writeRows(c.App.Writer, []string{"Code", "Language"}, rows, nil)
	return nil
}
