// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"strconv"
	"strings"
)

// ParseScore converts a trident score line to a Score. Lines that carry
// no record — empty lines and '>>' summary lines — return a nil Score
// and a nil error. Lines that do not match the score grammar return a
// nil Score and a *Malformed error. When ignoreOffset is false the
// genomic offset carried by the third '|'-delimited segment of the
// reference identifier is added to the reference coordinates; query
// coordinates are never offset.
func ParseScore(line string, ignoreOffset bool) (*Score, error) {
	if len(line) == 0 {
		return nil, nil
	}
	if line[0] == '>' {
		line = line[1:]
	}
	if len(line) == 0 || line[0] == '>' {
		// Degraded line or summary score, respectively.
		return nil, nil
	}
	line = strings.TrimSpace(line)

	tokens := strings.Split(line, ",")
	// Four fields of a Score are derived, not transmitted.
	if len(tokens) != len(wireNames) {
		return nil, &Malformed{Reason: "invalid score line", Line: line}
	}
	s := &Score{
		QueryID:      tokens[0],
		ReferenceID:  tokens[1],
		Score:        tokens[2],
		Energy:       tokens[3],
		QueryCoords:  tokens[4],
		RefCoords:    tokens[5],
		Length:       tokens[6],
		Identity:     tokens[7],
		Similarity:   tokens[8],
		QuerySeq:     tokens[9],
		MatchSeq:     tokens[10],
		ReferenceSeq: tokens[11],
		Orientation:  tokens[12],
		MatchType:    tokens[13],
		BaseType:     tokens[14],
	}

	var offset int
	if !ignoreOffset && strings.Contains(s.ReferenceID, "|") {
		seg := strings.Split(s.ReferenceID, "|")
		if len(seg) < 3 {
			return nil, &Malformed{Reason: "missing sequence offset", Line: line}
		}
		if isDigits(seg[2]) {
			var err error
			offset, err = strconv.Atoi(seg[2])
			if err != nil {
				// All digits, but out of range.
				return nil, &Malformed{Reason: "invalid sequence offset", Line: line}
			}
		}
	}

	var ok bool
	s.RefStart, s.RefEnd, ok = coords(s.RefCoords)
	if !ok {
		return nil, &Malformed{Reason: "broken reference coordinates", Line: line}
	}
	s.RefStart += offset
	s.RefEnd += offset
	s.QueryStart, s.QueryEnd, ok = coords(s.QueryCoords)
	if !ok {
		return nil, &Malformed{Reason: "broken query coordinates", Line: line}
	}
	return s, nil
}

// coords splits a coordinate pair field into its start and end values.
func coords(field string) (start, end int, ok bool) {
	f := strings.Fields(field)
	if len(f) != 2 {
		return 0, 0, false
	}
	var err error
	start, err = strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
