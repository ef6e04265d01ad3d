// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trident

import (
	"os"
	"path/filepath"
	"strings"

	check "gopkg.in/check.v1"
)

const scoreStream = validLine + "\n" +
	"\n" +
	">bad,line\n" +
	">>scoring summary\n" +
	">Q2,5|1|0|1000|10|2020-01-01|hg38|human,7,1.5,1 5,60 70,5,0.5,0.6,ACG,ACG,ACG,antiparallel,match,genic\n"

func (s *S) TestScanner(c *check.C) {
	sc := NewScanner(strings.NewReader(scoreStream))

	type result struct {
		score     bool
		malformed bool
		line      string
	}
	var got []result
	for sc.Next() {
		got = append(got, result{
			score:     sc.Score() != nil,
			malformed: sc.Malformed() != nil,
			line:      sc.Line(),
		})
	}
	c.Check(sc.Err(), check.IsNil)
	c.Check(got, check.DeepEquals, []result{
		{score: true, line: validLine},
		{line: ""},
		{malformed: true, line: ">bad,line"},
		{line: ">>scoring summary"},
		{score: true, line: ">Q2,5|1|0|1000|10|2020-01-01|hg38|human,7,1.5,1 5,60 70,5,0.5,0.6,ACG,ACG,ACG,antiparallel,match,genic"},
	})
}

func (s *S) TestScannerIgnoreOffset(c *check.C) {
	in := ">Q1,chr2|2|630|1000|10|2020-01-01|hg38|human,42,3.5,10 20,100 200,100,0.9,0.95,ACGT,ACGT,ACGT,parallel,match,genic\n"

	sc := NewScanner(strings.NewReader(in))
	c.Assert(sc.Next(), check.Equals, true)
	c.Assert(sc.Score(), check.NotNil)
	c.Check(sc.Score().RefStart, check.Equals, 730)

	sc = NewScanner(strings.NewReader(in))
	sc.IgnoreOffset(true)
	c.Assert(sc.Next(), check.Equals, true)
	c.Assert(sc.Score(), check.NotNil)
	c.Check(sc.Score().RefStart, check.Equals, 100)
}

func writeScores(c *check.C, name, data string) string {
	path := filepath.Join(c.MkDir(), name)
	err := os.WriteFile(path, []byte(data), 0644)
	c.Assert(err, check.IsNil)
	return path
}

func (s *S) TestCountFailFast(c *check.C) {
	path := writeScores(c, "scores.txt", scoreStream)

	counts, err := Counter{}.Count(func(h *Score) string { return h.QueryID }, path)
	c.Check(counts, check.IsNil)
	c.Assert(err, check.FitsTypeOf, &BrokenLine{})
	c.Check(err.(*BrokenLine).File, check.Equals, path)
	// The blank line is the first non-record in the stream.
	c.Check(err.(*BrokenLine).Line, check.Equals, "")
}

func (s *S) TestCountAndContinue(c *check.C) {
	path := writeScores(c, "scores.txt", scoreStream)

	var broken []string
	counts, err := Counter{
		Policy: CountAndContinue,
		Broken: func(file, line string) { broken = append(broken, line) },
	}.Count(func(h *Score) string { return h.QueryID }, path)
	c.Assert(err, check.IsNil)
	c.Check(counts, check.DeepEquals, map[string]int{"Q1": 1, "Q2": 1})
	c.Check(broken, check.DeepEquals, []string{"", ">bad,line", ">>scoring summary"})
}

func (s *S) TestCountManyFiles(c *check.C) {
	a := writeScores(c, "a.txt", validLine+"\n")
	b := writeScores(c, "b.txt", validLine+"\n"+
		">Q2,5|1|0|1000|10|2020-01-01|hg38|human,7,1.5,1 5,60 70,5,0.5,0.6,ACG,ACG,ACG,antiparallel,match,genic\n")

	counts, err := Counter{}.Count(func(h *Score) string { return h.QueryID }, a, b)
	c.Assert(err, check.IsNil)
	c.Check(counts, check.DeepEquals, map[string]int{"Q1": 2, "Q2": 1})
}

func (s *S) TestCountMissingFile(c *check.C) {
	counts, err := Counter{}.Count(func(h *Score) string { return h.QueryID },
		filepath.Join(c.MkDir(), "no-such-file"))
	c.Check(counts, check.IsNil)
	c.Check(err, check.NotNil)
}

func (s *S) TestStdinAlias(c *check.C) {
	f, isFile, err := source("/dev/stdin")
	c.Assert(err, check.IsNil)
	c.Check(f, check.Equals, os.Stdin)
	c.Check(isFile, check.Equals, false)
}
