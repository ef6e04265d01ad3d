// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// t2gff converts trident score output to GFF annotation lines.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/biogo/biogo/io/featio/gff"

	"github.com/biogo/trident"
)

var (
	inf      = flag.String("in", "", "input trident score file name. Defaults to stdin.")
	outf     = flag.String("out", "", "output GFF file name. Defaults to stdout.")
	noOffset = flag.Bool("no-offset", false, "ignore the genomic offset embedded in reference names.")
	strict   = flag.Bool("strict", false, "fail on lines that cannot be converted.")
	help     = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var in *os.File
	var err error
	if *inf == "" {
		in = os.Stdin
	} else if in, err = os.Open(*inf); err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	} else {
		defer in.Close()
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	defer out.Close()

	b := bufio.NewWriter(out)
	defer b.Flush()
	w := gff.NewWriter(b, 60, true)

	var skipped int
	sc := trident.NewScanner(in)
	sc.IgnoreOffset(*noOffset)
	for sc.Next() {
		score := sc.Score()
		if score == nil {
			if reason := sc.Malformed(); reason != nil {
				if *strict {
					log.Fatalf("failed during parse: %v", reason)
				}
				skipped++
			}
			continue
		}
		ft, err := score.Feature()
		if err != nil {
			if *strict {
				log.Fatalf("failed during conversion: %v", err)
			}
			skipped++
			continue
		}
		if _, err := w.Write(ft); err != nil {
			log.Fatalf("failed to write feature %q: %v", score.QueryID, err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if skipped > 0 {
		log.Printf("skipped %d lines", skipped)
	}
}
