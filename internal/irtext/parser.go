package irtext

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"boogen/internal/mir"
)

var bodyParser = participle.MustBuild[File](
	participle.Lexer(irLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses function bodies from source. The filename only labels
// positions in parse errors; it is never opened.
func Parse(filename, source string) ([]*mir.Body, error) {
	file, err := bodyParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return convert(file)
}

// ParseFile reads path and parses the function bodies in it.
func ParseFile(path string) ([]*mir.Body, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// FormatError renders a parse error with the offending source line and a
// caret under the failure column. Errors without position information come
// back unchanged.
func FormatError(source string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return err.Error()
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return err.Error()
	}

	column := pos.Column
	if column < 1 {
		column = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error in %s at line %d, column %d: %s\n", pos.Filename, pos.Line, pos.Column, pe.Message())
	fmt.Fprintf(&b, "  %s\n", lines[pos.Line-1])
	fmt.Fprintf(&b, "  %s^", strings.Repeat(" ", column-1))
	return b.String()
}
