// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"smir/grammar"
	"smir/internal/alloc"
	"smir/internal/host"
	"smir/internal/mir"
	"smir/internal/ty"
)

var log = commonlog.GetLogger("smir-cli")

func main() {
	demo := flag.Bool("demo", false, "run against the built-in demo context instead of a fixture")
	printBodies := flag.Bool("print", false, "pretty-print every item body")
	stats := flag.Bool("stats", false, "print traversal statistics per body")
	noGraph := flag.Bool("no-graph", false, "skip serializing the allocation graph")
	item := flag.String("item", "", "item to query with -place")
	place := flag.String("place", "", "place expression to type against -item")
	verbosity := flag.Int("v", 0, "log verbosity (0 = quiet)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: smir-cli [flags] <fixture.json>")
		flag.PrintDefaults()
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	startTime := time.Now()

	ctx, roots, err := loadContext(*demo, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load fixture: %v\n", err)
		os.Exit(1)
	}

	for _, name := range ctx.Items() {
		body, err := ctx.Body(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if *printBodies {
			fmt.Print(mir.Print(name, body))
		}
		if *stats {
			printStats(name, body)
		}
	}

	if *place != "" {
		if err := queryPlace(ctx, *item, *place); err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
	}

	if !*noGraph {
		log.Infof("serializing %d roots", len(roots))
		if err := alloc.WriteGraph(ctx, roots, os.Stdout); err != nil {
			color.Red("Serialization failed after %s: %v", time.Since(startTime), err)
			os.Exit(1)
		}
	}

	color.Green("Processed %d items and %d roots in %s",
		len(ctx.Items()), len(roots), time.Since(startTime))
}

// loadContext returns the demo context or the fixture named on the command
// line, plus the serialization roots.
func loadContext(demo bool, args []string) (host.Context, []ty.AllocId, error) {
	if demo {
		f := host.DemoFixture()
		return f, f.Roots(), nil
	}

	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	f, err := host.LoadFixture(file)
	if err != nil {
		return nil, nil, err
	}
	log.Infof("loaded fixture %s", args[0])
	return f, f.Roots(), nil
}

// queryPlace types a place expression against the named item's body.
func queryPlace(ctx host.Context, item, expr string) error {
	if item == "" {
		return fmt.Errorf("-place requires -item")
	}
	body, err := ctx.Body(item)
	if err != nil {
		return err
	}
	p, err := grammar.ParsePlace(expr)
	if err != nil {
		return err
	}
	t, err := p.Ty(body.Locals)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", p, t)
	return nil
}

func printStats(name string, body *mir.Body) {
	s := mir.CollectStats(body)
	fmt.Printf("%s: %d statements, %d terminators, %d mutating / %d reading / %d non-use place accesses\n",
		name, s.Statements, s.Terminators, s.MutatingUses, s.NonMutatingUses, s.NonUses)
}
