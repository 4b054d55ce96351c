// Package htmlstyle rewrites the style attributes of HTML documents,
// expanding the shorthand declarations they carry. Longhand
// declarations survive renderers and mail clients which drop or
// mangle shorthands.
package htmlstyle

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/benoitkugler/inlinestyle/attr"
	"github.com/benoitkugler/inlinestyle/logger"
	"github.com/benoitkugler/inlinestyle/shorthand"
	"github.com/benoitkugler/inlinestyle/style"
)

// ExpandNode rewrites in place the style attribute of n and of its
// descendant elements. Attribute text which does not parse is left
// untouched and logged.
func ExpandNode(n *html.Node) {
	expandNode(n, logger.Warning.Named("htmlstyle"), shorthand.New())
}

func expandNode(n *html.Node, log *zap.Logger, ex *shorthand.Expander) {
	if n.Type == html.ElementNode {
		for i, a := range n.Attr {
			if a.Key != "style" || a.Namespace != "" {
				continue
			}
			declarations, err := attr.Parse(a.Val)
			if err != nil {
				log.Warn("keeping unparsable style attribute",
					zap.String("element", n.Data), zap.String("style", a.Val), zap.Error(err))
				continue
			}
			text, err := attr.Format(ex.Expand(declarations).(style.Dict))
			if err != nil {
				log.Warn("keeping unformattable style attribute",
					zap.String("element", n.Data), zap.String("style", a.Val), zap.Error(err))
				continue
			}
			n.Attr[i].Val = text
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		expandNode(child, log, ex)
	}
}

// Expand reads an HTML document from r, expands every style
// attribute and renders the result to w.
func Expand(r io.Reader, w io.Writer) error {
	root, err := html.Parse(r)
	if err != nil {
		return err
	}
	ExpandNode(root)
	return html.Render(w, root)
}
