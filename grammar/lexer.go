package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var PlaceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Local slots (must come before Int so "_1" is one token)
		{"Local", `_[0-9]+`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Keywords ("as", "variant")
		{"Ident", `[a-zA-Z][a-zA-Z0-9]*`, nil},

		// Punctuation
		{"Punctuation", `[()*.#\[\]]`, nil},

		// Whitespace
		{"Whitespace", `[ \t]+`, nil},
	},
})
