// Package grammar parses textual place expressions, the same notation the
// body printer emits: "_1", "(*_2).0", "_3[_4]", "(_5 as variant#1)".
// Tools accept them wherever a place inside an existing body must be named.
package grammar

type Place struct {
	Primary  *Primary  `@@`
	Suffixes []*Suffix `@@*`
}

type Primary struct {
	Local    string    `  @Local`
	Deref    *Place    `| "(" "*" @@ ")"`
	Downcast *Downcast `| "(" @@ ")"`
}

type Downcast struct {
	Place   *Place `@@ "as" "variant"`
	Variant string `"#" @Int`
}

type Suffix struct {
	Field string `  "." @Int`
	Index string `| "[" @Local "]"`
}
