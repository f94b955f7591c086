package irtext

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// irLexer tokenizes the textual body format. Typed integers are one token
// so `5_u32` never splits into a value and a stray identifier; locals and
// block labels come before Ident so `_1` and `bb0` keep their shape.
var irLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"TypedInt", `-?[0-9]+_[a-z][a-z0-9]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Local", `_[0-9]+`, nil},
		{"Block", `bb[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Punctuation", `[{}()\[\]:,;=&*.>-]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
