// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Scanner reads successive scores from a trident score stream. Lines
// that carry no record leave Score nil for the position; the raw line
// is retained for diagnostics.
type Scanner struct {
	sc           *bufio.Scanner
	ignoreOffset bool

	score  *Score
	reason error
	line   string
}

// NewScanner returns a Scanner reading score lines from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// IgnoreOffset sets whether the Scanner's parsing ignores the genomic
// offset carried by reference identifiers.
func (s *Scanner) IgnoreOffset(ok bool) { s.ignoreOffset = ok }

// Next advances the Scanner past the next line, which will then be
// available through the Score and Line methods. It returns false when
// the scan stops, either at the end of the input or an error.
func (s *Scanner) Next() bool {
	s.score, s.reason = nil, nil
	if !s.sc.Scan() {
		return false
	}
	s.line = strings.TrimSpace(s.sc.Text())
	s.score, s.reason = ParseScore(s.line, s.ignoreOffset)
	return true
}

// Score returns the most recent score read by a call to Next. It is nil
// if the line held no record.
func (s *Scanner) Score() *Score { return s.score }

// Malformed returns the grammar diagnosis of the most recent line read
// by a call to Next, or nil if the line was a record or merely empty.
func (s *Scanner) Malformed() error { return s.reason }

// Line returns the raw text of the most recent line read by a call to
// Next.
func (s *Scanner) Line() string { return s.line }

// Err returns the first non-EOF error that was encountered by the
// Scanner.
func (s *Scanner) Err() error { return s.sc.Err() }

// BrokenLine describes a line that held no record, encountered while
// counting under the FailFast policy. It names the offending source.
type BrokenLine struct {
	File string
	Line string
}

func (e *BrokenLine) Error() string {
	return fmt.Sprintf("trident: broken line while parsing score file %s: %q", e.File, e.Line)
}

// Policy determines how a Counter treats lines that hold no record.
type Policy int

const (
	// FailFast stops the count at the first line holding no record.
	FailFast Policy = iota
	// CountAndContinue reports each line holding no record to the
	// Counter's Broken sink and carries on. Intended for batch and
	// cluster use where one bad line must not abort a large job.
	CountAndContinue
)

// A KeyFunc derives the frequency key for a hit.
type KeyFunc func(*Score) string

// A Counter accumulates hit frequencies over score files.
type Counter struct {
	// Policy determines the treatment of lines holding no record.
	// The zero value is FailFast.
	Policy Policy

	// IgnoreOffset sets whether parsing ignores the genomic offset
	// carried by reference identifiers.
	IgnoreOffset bool

	// Broken, if non-nil, is called once for each line holding no
	// record when the Policy is CountAndContinue.
	Broken func(file, line string)
}

// Count reads the named score files in order and returns the hit
// frequencies keyed by key. The name "/dev/stdin" reads the process's
// standard input rather than opening a file. Under FailFast a line
// holding no record returns a nil map and a *BrokenLine.
func (c Counter) Count(key KeyFunc, files ...string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, name := range files {
		err := c.countFile(counts, key, name)
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func (c Counter) countFile(counts map[string]int, key KeyFunc, name string) error {
	in, isFile, err := source(name)
	if err != nil {
		return err
	}
	if isFile {
		defer in.Close()
	}

	sc := NewScanner(in)
	sc.IgnoreOffset(c.IgnoreOffset)
	for sc.Next() {
		hit := sc.Score()
		if hit == nil {
			if c.Policy == CountAndContinue {
				if c.Broken != nil {
					c.Broken(name, sc.Line())
				}
				continue
			}
			return &BrokenLine{File: name, Line: sc.Line()}
		}
		counts[key(hit)]++
	}
	return sc.Err()
}

// source resolves a score file name to its stream. The returned boolean
// indicates that the stream was opened here and is the caller's to
// close.
func source(name string) (*os.File, bool, error) {
	if name == "/dev/stdin" {
		return os.Stdin, false, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}
