package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"smir/internal/host"
)

func run(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	Start(strings.NewReader(script), &out, host.DemoFixture())
	return out.String()
}

func TestReplItems(t *testing.T) {
	out := run(t, "items\n")
	assert.Contains(t, out, "double")
}

func TestReplPrint(t *testing.T) {
	out := run(t, "print double\n")
	assert.Contains(t, out, "fn double(_1: i32) -> i32 {")
	assert.Contains(t, out, "return;")
}

func TestReplStats(t *testing.T) {
	out := run(t, "stats double\n")
	assert.Contains(t, out, "4 statements, 1 terminators")
}

func TestReplPlaceType(t *testing.T) {
	out := run(t, "ty double _2\n")
	assert.Contains(t, out, "_2: i32")

	out = run(t, "ty double (*_1)\n")
	assert.Contains(t, out, "cannot dereference")
}

func TestReplBadInput(t *testing.T) {
	out := run(t, "frobnicate\nprint missing\nquit\nitems\n")
	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, `no item named "missing"`)
	assert.NotContains(t, out, "double", "quit stops the loop")
}