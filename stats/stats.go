package stats

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"
)

// Stats holds the counts reported for a text.
type Stats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Sentences  int `json:"sentences"`
	Paragraphs int `json:"paragraphs"`
}

// IsZero reports whether every count is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// Counter computes Stats with a chosen Segmenter.
// A Counter is safe for concurrent use.
type Counter struct {
	segmenter Segmenter
	fallback  Segmenter
	logger    *slog.Logger
}

// Option configures a Counter.
type Option func(*Counter)

// WithSegmenter overrides the segmenter chosen by Probe.
func WithSegmenter(s Segmenter) Option {
	return func(c *Counter) {
		if s != nil {
			c.segmenter = s
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Counter) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

var probed = sync.OnceValue(Probe)

// NewCounter creates a Counter using the segmenter selected by Probe unless
// WithSegmenter says otherwise.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{
		fallback: FallbackSegmenter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.segmenter == nil {
		c.segmenter = probed()
	}
	c.logger = c.logger.With("component", "stats")
	return c
}

var defaultCounter = sync.OnceValue(func() *Counter { return NewCounter() })

// Compute returns the statistics of text using the default Counter.
func Compute(text string) Stats {
	return defaultCounter().Compute(text)
}

// Compute returns the statistics of text. It never fails: text that is
// empty after trimming yields zero Stats.
func (c *Counter) Compute(text string) Stats {
	if trim(text) == "" {
		return Stats{}
	}

	words, sentences, err := segment(c.segmenter, text)
	if err != nil {
		c.logger.Debug("segmenter failed, using fallback", "err", err)
		words, sentences, _ = segment(c.fallback, text)
	}

	return Stats{
		Words:      words,
		Characters: utf16Len(text),
		Sentences:  sentences,
		Paragraphs: paragraphs(text),
	}
}

func segment(s Segmenter, text string) (words, sentences int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("segmenter panic: %v", r)
		}
	}()
	return s.Words(text), s.Sentences(text), nil
}

// utf16Len counts UTF-16 code units, the unit editors and browsers report
// as string length. Runes outside the BMP count twice.
func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// paragraphs counts non-blank blocks separated by one or more newlines.
func paragraphs(text string) int {
	count := 0
	for _, block := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' }) {
		if trim(block) != "" {
			count++
		}
	}
	return count
}

// trim strips whitespace and the byte order mark from both ends. NEL
// (U+0085) is kept: it is a control character, not trimmable space.
func trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
