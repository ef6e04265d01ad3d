// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio/gff"
)

// A Contig is the chromosome or contig a hit is located on.
type Contig string

func (c Contig) Start() int             { return 0 }
func (c Contig) End() int               { return 0 }
func (c Contig) Len() int               { return 0 }
func (c Contig) Name() string           { return string(c) }
func (c Contig) Description() string    { return "contig" }
func (c Contig) Location() feat.Feature { return nil }

var (
	_ feat.Feature = Contig("")
	_ feat.Feature = (*Score)(nil)
)

// Start returns the start of the hit on the reference.
func (s *Score) Start() int { return s.RefStart }

// End returns the end of the hit on the reference.
func (s *Score) End() int { return s.RefEnd }

// Len returns the length of the hit on the reference.
func (s *Score) Len() int { return s.RefEnd - s.RefStart }

// Name returns the query identifier of the hit.
func (s *Score) Name() string { return s.QueryID }

// Description returns the hit's match type.
func (s *Score) Description() string { return s.MatchType }

// Location returns the contig of the hit, the first '|'-delimited
// segment of the reference identifier.
func (s *Score) Location() feat.Feature {
	id := s.ReferenceID
	if i := strings.Index(id, "|"); i >= 0 {
		id = id[:i]
	}
	return Contig(id)
}

// Feature returns the hit as a GFF feature suitable for a gff.Writer.
// The reference descriptor is validated first and a failure there is
// returned unchanged. A nil score returns a nil feature and a nil
// error.
func (s *Score) Feature() (*gff.Feature, error) {
	if s == nil {
		return nil, nil
	}
	ref, err := s.Reference()
	if err != nil {
		return nil, err
	}
	score, err := strconv.ParseFloat(s.Score, 64)
	if err != nil {
		return nil, BrokenScore(fmt.Sprintf("invalid score value %q", s.Score))
	}
	if _, err := strconv.ParseFloat(s.Energy, 64); err != nil {
		return nil, BrokenScore(fmt.Sprintf("invalid energy value %q", s.Energy))
	}
	return &gff.Feature{
		SeqName:    ref.Chromosome,
		Source:     "trident",
		Feature:    s.BaseType,
		FeatStart:  s.RefStart,
		FeatEnd:    s.RefEnd,
		FeatScore:  &score,
		FeatStrand: s.Strand(),
		FeatFrame:  gff.NoFrame,
		FeatAttributes: gff.Attributes{
			{Tag: "Name", Value: s.QueryID},
			{Tag: "Energy", Value: s.Energy},
			{Tag: "Chr", Value: ref.Chromosome},
			{Tag: "GenomeStartPos", Value: strconv.Itoa(s.RefStart)},
		},
	}, nil
}
