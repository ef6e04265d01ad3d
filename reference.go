// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"fmt"
	"strconv"
	"strings"
)

// basesPerLine is the line length, in bases, of the sequence files
// chunked by the upstream trident pipeline. Adjacent chunks overlap by
// one line.
const basesPerLine = 70

// Reference returns the reference descriptor of the score, validating
// it first. A nil score returns a nil descriptor and a nil error.
func (s *Score) Reference() (*Reference, error) {
	if s == nil {
		return nil, nil
	}
	if err := s.CheckReference(); err != nil {
		return nil, err
	}
	return s.zipReference(), nil
}

// zipReference splits the reference identifier positionally into a
// Reference. Segments beyond the descriptor's eight fields are
// discarded.
func (s *Score) zipReference() *Reference {
	var r Reference
	dst := []*string{
		&r.Chromosome, &r.Chunk, &r.SegOffset, &r.SeqSize,
		&r.ChunkSize, &r.ISODate, &r.Assembly, &r.Species,
	}
	for i, seg := range strings.Split(s.ReferenceID, "|") {
		if i == len(dst) {
			break
		}
		*dst[i] = seg
	}
	return &r
}

// CheckReference verifies that the score has a '|'-delimited reference
// identifier and that the segment offset it carries agrees with its
// chunk geometry. A non-nil result is a BrokenScore.
func (s *Score) CheckReference() error {
	if s.ReferenceID == "" {
		return BrokenScore("missing reference section")
	}
	if !strings.Contains(s.ReferenceID, "|") {
		return BrokenScore("broken reference section")
	}
	ref := s.zipReference()

	chunk, err := strconv.Atoi(ref.Chunk)
	if err != nil {
		return BrokenScore(fmt.Sprintf("invalid chunk number %q", ref.Chunk))
	}
	size, err := strconv.Atoi(ref.ChunkSize)
	if err != nil {
		return BrokenScore(fmt.Sprintf("invalid chunk size %q", ref.ChunkSize))
	}
	want, err := strconv.Atoi(ref.SegOffset)
	if err != nil {
		return BrokenScore(fmt.Sprintf("invalid segment offset %q", ref.SegOffset))
	}

	// Chunk size counts lines, less the one line shared with the
	// preceding chunk. Chunk numbers are one-indexed.
	actual := basesPerLine*size*(chunk-1) - basesPerLine
	if actual == -basesPerLine {
		// First chunk, so there is no overlap to subtract.
		actual = 0
	}
	if actual != want {
		return BrokenScore(fmt.Sprintf("segment offset is not the expected value: expected %d, computed %d", want, actual))
	}
	return nil
}
