// Copyright ©2015 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tscore prints the records of a trident score file in a human
// readable form, one "name: value" line per field.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/trident"
)

var noOffset = flag.Bool("no-offset", false, "ignore the genomic offset embedded in reference names.")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <filename>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Parses the output of trident")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	in, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%q is not a file\n", name)
		usage()
		os.Exit(1)
	}
	defer in.Close()

	var skipped int
	sc := trident.NewScanner(in)
	sc.IgnoreOffset(*noOffset)
	for sc.Next() {
		score := sc.Score()
		if score == nil {
			skipped++
			continue
		}
		fmt.Println(score.Describe())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d non-score lines\n", skipped)
	}
}
