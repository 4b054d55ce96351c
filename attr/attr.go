// Package attr converts inline style attributes, the declaration
// lists carried by the HTML style="..." attribute, to and from
// style dicts.
package attr

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/benoitkugler/inlinestyle/style"
	"github.com/benoitkugler/inlinestyle/utils"
)

// Parse parses a CSS declaration list into a style dict. Property
// names are converted to their camelCase form ("border-top-width"
// gives "borderTopWidth"); custom properties keep their literal
// name; values are rebuilt from their tokens, with whitespace runs
// collapsed to a single space and commas followed by one.
func Parse(input string) (style.Dict, error) {
	out := style.Dict{}
	p := css.NewParser(parse.NewInput(strings.NewReader(input)), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return out, fmt.Errorf("invalid style attribute: %w", err)
			}
			return out, nil
		case css.DeclarationGrammar:
			out[utils.KebabToCamel(string(data))] = style.String(joinTokens(p.Values()))
		case css.CustomPropertyGrammar:
			out[string(data)] = style.String(joinTokens(p.Values()))
		}
	}
}

// joinTokens rebuilds the value text, collapsing whitespace runs to
// a single space and serializing commas as ", ". The token stream
// does not carry the source spacing of function arguments, so the
// text is normalized, not raw.
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, token := range tokens {
		switch token.TokenType {
		case css.WhitespaceToken:
			if s := b.String(); s != "" && !strings.HasSuffix(s, " ") {
				b.WriteByte(' ')
			}
		case css.CommaToken:
			b.WriteString(", ")
		default:
			b.Write(token.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// Format writes the dict as a declaration list, properties sorted
// by name and spelled kebab-case, custom properties kept verbatim.
// Only scalar values (strings, numbers, booleans) may appear :
// nested dicts, lists and callables have no attribute form.
func Format(d style.Dict) (string, error) {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value, err := formatValue(d[name])
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		if b.Len() != 0 {
			b.WriteString("; ")
		}
		if strings.HasPrefix(name, "--") {
			b.WriteString(name)
		} else {
			b.WriteString(utils.CamelToKebab(name))
		}
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String(), nil
}

func formatValue(v style.Value) (string, error) {
	switch v := v.(type) {
	case style.String:
		return string(v), nil
	case style.Number:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case style.Bool:
		return strconv.FormatBool(bool(v)), nil
	default:
		return "", fmt.Errorf("value %v (type %T) has no attribute form", v, v)
	}
}
