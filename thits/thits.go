// thits counts hit frequencies across trident score files, keyed by a
// selectable score field. The file name /dev/stdin reads standard
// input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/biogo/trident"
)

var (
	keyName   = flag.String("key", "query", "field to count hits by: query, reference or chromosome.")
	resilient = flag.Bool("resilient", false, "report broken lines as counter events rather than failing.")
	noOffset  = flag.Bool("no-offset", false, "ignore the genomic offset embedded in reference names.")
	help      = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Need at least one input file.")
		flag.Usage()
		os.Exit(1)
	}

	var key trident.KeyFunc
	switch *keyName {
	case "query":
		key = func(h *trident.Score) string { return h.QueryID }
	case "reference":
		key = func(h *trident.Score) string { return h.ReferenceID }
	case "chromosome":
		key = func(h *trident.Score) string { return h.Location().Name() }
	default:
		log.Fatalf("unknown key %q", *keyName)
	}

	c := trident.Counter{IgnoreOffset: *noOffset}
	if *resilient {
		c.Policy = trident.CountAndContinue
		c.Broken = func(file, line string) {
			// Streaming counter protocol understood by Hadoop task
			// trackers.
			fmt.Fprintln(os.Stderr, "reporter:counter:TridentErrors,BrokenLines,1")
		}
	}

	counts, err := c.Count(key, flag.Args()...)
	if err != nil {
		log.Fatalf("failed during count: %v", err)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s\t%d\n", k, counts[k])
	}
}
