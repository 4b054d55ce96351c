// Package shorthand rewrites the CSS shorthand declarations of style
// objects into their longhand equivalents.
//
// Renderers re-applying whole style objects on each update drop the
// longhand values a shorthand-only update does not override;
// expanding the shorthands beforehand makes every update carry the
// full longhand set.
package shorthand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benoitkugler/inlinestyle/style"
	"github.com/benoitkugler/inlinestyle/utils"
)

// ErrInvalidValue is wrapped by the errors reported in strict mode,
// for the values the lenient expansion degrades instead of
// rejecting.
var ErrInvalidValue = errors.New("invalid value")

type expander func(value string) (style.Dict, error)

// The fixed set of supported shorthand properties; a key absent
// from this table is not a shorthand and its declaration is copied
// unchanged by Expand.
var expanders = map[string]expander{
	"margin":       fourSides("margin", ""),
	"padding":      fourSides("padding", ""),
	"borderColor":  fourSides("border", "Color"),
	"borderStyle":  fourSides("border", "Style"),
	"borderWidth":  fourSides("border", "Width"),
	"borderRadius": expandBorderRadius,
	"borderTop":    borderSide("Top"),
	"borderRight":  borderSide("Right"),
	"borderBottom": borderSide("Bottom"),
	"borderLeft":   borderSide("Left"),
	"border":       expandBorder,
}

// Expansion order of the shorthands of one mapping : the broadest
// first, so that narrower ones override the longhands they share.
// Entries of each tier never overlap each other.
var precedence = []string{
	"border",
	"margin", "padding", "borderColor", "borderStyle", "borderWidth", "borderRadius",
	"borderTop", "borderRight", "borderBottom", "borderLeft",
}

var (
	sides   = [4]string{"Top", "Right", "Bottom", "Left"}
	corners = [4]string{"TopLeft", "TopRight", "BottomRight", "BottomLeft"}

	// keywords accepted as a bare border side value
	borderStyles = utils.NewSet("none", "hidden", "dotted", "dashed",
		"solid", "double", "groove", "ridge", "inset", "outset")
)

// expandToFour stretches tokens to the four Top, Right, Bottom,
// Left positional values, following the CSS shorthand rule. Other
// lengths are returned unchanged.
func expandToFour(tokens []string) []string {
	if len(tokens) == 1 {
		return []string{tokens[0], tokens[0], tokens[0], tokens[0]}
	} else if len(tokens) == 2 {
		return []string{tokens[0], tokens[1], tokens[0], tokens[1]} // (bottom, left) defaults to (top, right)
	} else if len(tokens) == 3 {
		return append(tokens, tokens[1]) // left defaults to right
	}
	return tokens
}

// assignSides maps positional values to the keys prefix + side +
// suffix, sides running Top, Right, Bottom, Left. Values beyond the
// fourth are ignored; missing ones leave their side out.
func assignSides(prefix, suffix string, values []string) style.Dict {
	out := make(style.Dict, 4)
	for i, side := range sides {
		if i >= len(values) {
			break
		}
		out[prefix+side+suffix] = style.String(values[i])
	}
	return out
}

// assignCorners is the borderRadius variant of assignSides, corners
// running TopLeft, TopRight, BottomRight, BottomLeft.
func assignCorners(prefix, suffix string, values []string) style.Dict {
	out := make(style.Dict, 4)
	for i, corner := range corners {
		if i >= len(values) {
			break
		}
		out[prefix+corner+suffix] = style.String(values[i])
	}
	return out
}

// expandFourSides expands the properties setting a value for the
// four sides of a box : margin, padding, borderColor, borderStyle
// and borderWidth.
func expandFourSides(prefix, suffix, value string) (style.Dict, error) {
	tokens := strings.Fields(value)
	out := assignSides(prefix, suffix, expandToFour(tokens))
	if n := len(tokens); n == 0 || n > 4 {
		return out, fmt.Errorf("expected 1 to 4 tokens got %d: %w", n, ErrInvalidValue)
	}
	return out, nil
}

func fourSides(prefix, suffix string) expander {
	return func(value string) (style.Dict, error) {
		return expandFourSides(prefix, suffix, value)
	}
}

// expandBorderRadius expands the borderRadius shorthand. The value
// may carry two radius groups separated by "/" (horizontal radii,
// then vertical radii); each group follows the four values rule and
// the two are merged per corner.
func expandBorderRadius(value string) (style.Dict, error) {
	groups := strings.Split(value, "/")
	hTokens := strings.Fields(groups[0])
	var vTokens []string
	if len(groups) > 1 {
		vTokens = strings.Fields(groups[1])
	}

	horizontal, vertical := expandToFour(hTokens), expandToFour(vTokens)
	values := horizontal
	if len(vertical) != 0 {
		values = make([]string, len(horizontal))
		for i, h := range horizontal {
			if i < len(vertical) {
				values[i] = h + " " + vertical[i]
			} else {
				values[i] = h
			}
		}
	}
	out := assignCorners("border", "Radius", values)

	var err error
	switch {
	case len(groups) > 2:
		err = fmt.Errorf("expected only one '/' separator: %w", ErrInvalidValue)
	case len(hTokens) == 0 || len(hTokens) > 4:
		err = fmt.Errorf("expected 1 to 4 horizontal radii got %d: %w", len(hTokens), ErrInvalidValue)
	case len(groups) > 1 && (len(vTokens) == 0 || len(vTokens) > 4):
		err = fmt.Errorf("expected 1 to 4 vertical radii got %d: %w", len(vTokens), ErrInvalidValue)
	}
	return out, err
}

// expandBorderSide expands a one side shorthand like borderLeft,
// yielding the Width, Style and Color longhands of the side. A bare
// border style keyword fills Style alone; otherwise up to three
// positional tokens are assigned to Width, Style, Color. The
// missing longhands default to "initial".
func expandBorderSide(value, side string) (style.Dict, error) {
	if borderStyles.Has(value) {
		return style.Dict{
			"border" + side + "Width": style.String("initial"),
			"border" + side + "Color": style.String("initial"),
			"border" + side + "Style": style.String(value),
		}, nil
	}

	out := style.Dict{
		"border" + side + "Width": style.String("initial"),
		"border" + side + "Style": style.String("initial"),
		"border" + side + "Color": style.String("initial"),
	}
	tokens := strings.Fields(value)
	for i, slot := range [3]string{"Width", "Style", "Color"} {
		if i >= len(tokens) {
			break
		}
		out["border"+side+slot] = style.String(tokens[i])
	}
	if n := len(tokens); n == 0 || n > 3 {
		return out, fmt.Errorf("expected 1 to 3 tokens got %d: %w", n, ErrInvalidValue)
	}
	return out, nil
}

func borderSide(side string) expander {
	return func(value string) (style.Dict, error) {
		return expandBorderSide(value, side)
	}
}

// expandBorder applies the side expansion to the four sides at
// once, with the same input. The two part "<style> <color>" grammar
// is not special cased : tokens are always assigned positionally.
func expandBorder(value string) (style.Dict, error) {
	out := make(style.Dict, 12)
	var err error
	for _, side := range sides {
		expanded, e := expandBorderSide(value, side)
		out.UpdateWith(expanded)
		if err == nil {
			err = e
		}
	}
	return out, err
}

// recognized unit suffixes, kept as is by ApplyPX
var keptUnits = [4]string{"px", "em", "pt", "%"}

// ApplyPX appends the default "px" unit to every token carrying
// none of the px, em, pt or % suffixes. It is a standalone helper :
// the expansion itself never rewrites values.
func ApplyPX(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		hasUnit := false
		for _, unit := range keptUnits {
			if strings.HasSuffix(token, unit) {
				hasUnit = true
				break
			}
		}
		if hasUnit {
			out[i] = token
		} else {
			out[i] = token + "px"
		}
	}
	return out
}

// Margin expands the margin shorthand into its four marginTop,
// marginRight, marginBottom, marginLeft longhands.
func Margin(value string) style.Dict {
	out, _ := expandFourSides("margin", "", value)
	return out
}

// Padding expands the padding shorthand into its four sides.
func Padding(value string) style.Dict {
	out, _ := expandFourSides("padding", "", value)
	return out
}

// BorderColor expands the borderColor shorthand into the four
// border{Side}Color longhands.
func BorderColor(value string) style.Dict {
	out, _ := expandFourSides("border", "Color", value)
	return out
}

// BorderStyle expands the borderStyle shorthand into the four
// border{Side}Style longhands.
func BorderStyle(value string) style.Dict {
	out, _ := expandFourSides("border", "Style", value)
	return out
}

// BorderWidth expands the borderWidth shorthand into the four
// border{Side}Width longhands.
func BorderWidth(value string) style.Dict {
	out, _ := expandFourSides("border", "Width", value)
	return out
}

// BorderRadius expands the borderRadius shorthand into the four
// border{Corner}Radius longhands.
func BorderRadius(value string) style.Dict {
	out, _ := expandBorderRadius(value)
	return out
}

// BorderSide expands a one side border shorthand; side is one of
// "Top", "Right", "Bottom", "Left", as spelled in the generated
// keys.
func BorderSide(value, side string) style.Dict {
	out, _ := expandBorderSide(value, side)
	return out
}

// Border expands the border shorthand, covering the four sides.
func Border(value string) style.Dict {
	out, _ := expandBorder(value)
	return out
}

// BorderTop, BorderRight, BorderBottom and BorderLeft fix the side
// of BorderSide.
func BorderTop(value string) style.Dict    { return BorderSide(value, "Top") }
func BorderRight(value string) style.Dict  { return BorderSide(value, "Right") }
func BorderBottom(value string) style.Dict { return BorderSide(value, "Bottom") }
func BorderLeft(value string) style.Dict   { return BorderSide(value, "Left") }
