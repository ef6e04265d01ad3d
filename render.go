// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"
)

// String returns the canonical score line for s: a '>' followed by the
// fifteen wire fields joined by commas. It is the inverse of ParseScore
// for records parsed with ignoreOffset set.
func (s *Score) String() string {
	v := s.wireValues()
	return ">" + strings.Join(v[:], ",")
}

// Describe returns a human readable rendering of s, one "name: value"
// line per field in lexical name order. The coordinate pair fields show
// their derived start and end values.
func (s *Score) Describe() string {
	v := s.wireValues()
	names := make([]string, len(wireNames))
	copy(names, wireNames[:])
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		switch name {
		case "ref_coords":
			fmt.Fprintf(&b, "%s: %d %d\n", name, s.RefStart, s.RefEnd)
		case "query_coords":
			fmt.Fprintf(&b, "%s: %d %d\n", name, s.QueryStart, s.QueryEnd)
		default:
			for i, n := range wireNames {
				if n == name {
					fmt.Fprintf(&b, "%s: %s\n", name, v[i])
					break
				}
			}
		}
	}
	return b.String()
}

// Strand returns the strand of the hit, seq.Plus for a parallel
// orientation and seq.Minus otherwise.
func (s *Score) Strand() seq.Strand {
	if s.Orientation == "parallel" {
		return seq.Plus
	}
	return seq.Minus
}

// GFFLine returns the nine column tab separated annotation line for s.
// The reference descriptor is validated first and a failure there is
// returned unchanged. A nil score returns an empty line and a nil
// error.
func (s *Score) GFFLine() (string, error) {
	if s == nil {
		return "", nil
	}
	ref, err := s.Reference()
	if err != nil {
		return "", err
	}
	score, err := strconv.ParseFloat(s.Score, 64)
	if err != nil {
		return "", BrokenScore(fmt.Sprintf("invalid score value %q", s.Score))
	}
	energy, err := strconv.ParseFloat(s.Energy, 64)
	if err != nil {
		return "", BrokenScore(fmt.Sprintf("invalid energy value %q", s.Energy))
	}
	strand := '-'
	if s.Strand() == seq.Plus {
		strand = '+'
	}
	return fmt.Sprintf("%s\t.\t%s\t%d\t%d\t%d\t%c\t.\tName=%s;Energy=%f;Chr=%s;GenomeStartPos=%d",
		ref.Chromosome, s.BaseType, s.RefStart, s.RefEnd, int(score), strand,
		s.QueryID, energy, ref.Chromosome, s.RefStart), nil
}
