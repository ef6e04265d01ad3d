// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trident handles the score output of the trident microRNA
// alignment tool. It parses score lines into typed records, validates
// the genomic coordinate data embedded in reference identifiers, and
// renders records as canonical score lines, human readable text or GFF
// annotations. It also provides streaming frequency counting of hits
// across many score files.
package trident

import (
	"fmt"
)

// A Score is one trident alignment hit. The first fifteen fields hold
// the wire values of a score line in canonical order; the remaining
// four are derived from the coordinate pairs and the genomic offset
// carried by the reference identifier.
type Score struct {
	QueryID      string
	ReferenceID  string
	Score        string
	Energy       string
	QueryCoords  string
	RefCoords    string
	Length       string
	Identity     string
	Similarity   string
	QuerySeq     string
	MatchSeq     string
	ReferenceSeq string
	Orientation  string
	MatchType    string
	BaseType     string

	QueryStart, QueryEnd int
	RefStart, RefEnd     int
}

// wireNames are the score field names in canonical line order. The four
// derived coordinate fields are not part of the wire format.
var wireNames = [...]string{
	"query_id", "reference_id", "score", "energy", "query_coords",
	"ref_coords", "length", "identity", "similarity", "query_seq",
	"match_seq", "reference_seq", "orientation", "match_type",
	"base_type",
}

// wireValues returns the wire field values in canonical line order.
func (s *Score) wireValues() [len(wireNames)]string {
	return [...]string{
		s.QueryID, s.ReferenceID, s.Score, s.Energy, s.QueryCoords,
		s.RefCoords, s.Length, s.Identity, s.Similarity, s.QuerySeq,
		s.MatchSeq, s.ReferenceSeq, s.Orientation, s.MatchType,
		s.BaseType,
	}
}

// A Reference describes the composite reference identifier of a Score,
// split on '|'. Trailing fields absent from an under-length identifier
// are left empty.
type Reference struct {
	Chromosome string
	Chunk      string
	SegOffset  string
	SeqSize    string
	ChunkSize  string
	ISODate    string
	Assembly   string
	Species    string
}

// Malformed describes a line that does not match the score line
// grammar. It is returned, never panicked, so the caller chooses
// between failing and skipping.
type Malformed struct {
	Reason string
	Line   string
}

func (e *Malformed) Error() string {
	return fmt.Sprintf("trident: %s: %q", e.Reason, e.Line)
}

// BrokenScore describes a score that violates a reference invariant.
type BrokenScore string

func (e BrokenScore) Error() string {
	return "trident: broken score: " + string(e)
}
