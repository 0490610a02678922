// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"smir/grammar"
	"smir/internal/host"
	"smir/internal/mir"
)

const PROMPT = ">> "

// Start reads commands from in and answers queries against ctx:
//
//	items                list the items with a body
//	print <item>         pretty-print the item's body
//	stats <item>         traversal statistics for the item's body
//	ty <item> <place>    type of a place expression inside the item's body
func Start(in io.Reader, out io.Writer, ctx host.Context) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		eval(out, ctx, line)
	}
}

func eval(out io.Writer, ctx host.Context, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "items":
		for _, name := range ctx.Items() {
			fmt.Fprintln(out, name)
		}
	case "print":
		body, ok := itemBody(out, ctx, fields)
		if !ok {
			return
		}
		fmt.Fprint(out, mir.Print(fields[1], body))
	case "stats":
		body, ok := itemBody(out, ctx, fields)
		if !ok {
			return
		}
		s := mir.CollectStats(body)
		fmt.Fprintf(out, "%d statements, %d terminators, %d mutating / %d reading / %d non-use place accesses\n",
			s.Statements, s.Terminators, s.MutatingUses, s.NonMutatingUses, s.NonUses)
	case "ty":
		if len(fields) < 3 {
			fmt.Fprintln(out, "usage: ty <item> <place>")
			return
		}
		body, ok := itemBody(out, ctx, fields)
		if !ok {
			return
		}
		place, err := grammar.ParsePlace(strings.Join(fields[2:], " "))
		if err != nil {
			fmt.Fprintf(out, "parse error: %v\n", err)
			return
		}
		t, err := place.Ty(body.Locals)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			return
		}
		fmt.Fprintf(out, "%s: %s\n", place, t)
	default:
		fmt.Fprintf(out, "unknown command %q (items, print, stats, ty, quit)\n", fields[0])
	}
}

func itemBody(out io.Writer, ctx host.Context, fields []string) (*mir.Body, bool) {
	if len(fields) < 2 {
		fmt.Fprintf(out, "usage: %s <item>\n", fields[0])
		return nil, false
	}
	body, err := ctx.Body(fields[1])
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return nil, false
	}
	return body, true
}
