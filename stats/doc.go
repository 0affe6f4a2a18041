// Package stats counts words, characters, sentences and paragraphs in text.
//
// Word and sentence boundaries come from a Segmenter. Probe picks the
// Unicode (UAX #29) segmenter when it works on the host and a regular
// expression approximation otherwise; a Counter also falls back per call if
// its segmenter panics. Characters are UTF-16 code units, matching the
// length browsers and editors display.
package stats
