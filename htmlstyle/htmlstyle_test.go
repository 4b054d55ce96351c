package htmlstyle_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benoitkugler/inlinestyle/htmlstyle"
	tu "github.com/benoitkugler/inlinestyle/utils/testutils"
)

func TestExpandDocument(t *testing.T) {
	input := `<p class="lead" style="margin: 1px 2px">hi</p><div>plain</div>`
	var buf bytes.Buffer
	if err := htmlstyle.Expand(strings.NewReader(input), &buf); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, buf.String(),
		`<html><head></head><body>`+
			`<p class="lead" style="margin-bottom: 1px; margin-left: 2px; margin-right: 2px; margin-top: 1px">hi</p>`+
			`<div>plain</div></body></html>`)
}

func TestExpandKeepsMalformedAttribute(t *testing.T) {
	input := `<p style="color red">x</p>`
	var buf bytes.Buffer
	if err := htmlstyle.Expand(strings.NewReader(input), &buf); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, buf.String(),
		`<html><head></head><body><p style="color red">x</p></body></html>`)
}

func TestExpandKebabShorthands(t *testing.T) {
	input := `<span style="border-radius: 4px/8px">x</span>`
	var buf bytes.Buffer
	if err := htmlstyle.Expand(strings.NewReader(input), &buf); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, buf.String(),
		`<html><head></head><body>`+
			`<span style="border-bottom-left-radius: 4px 8px; border-bottom-right-radius: 4px 8px; `+
			`border-top-left-radius: 4px 8px; border-top-right-radius: 4px 8px">x</span>`+
			`</body></html>`)
}
