package sheet_test

import (
	"strings"
	"testing"

	"github.com/benoitkugler/inlinestyle/sheet"
	"github.com/benoitkugler/inlinestyle/style"
	tu "github.com/benoitkugler/inlinestyle/utils/testutils"
)

func TestLoadJSON(t *testing.T) {
	const doc = `{"button": {"padding": "5px", "color": "blue"}}`
	got, err := sheet.Load(strings.NewReader(doc), sheet.JSON)
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, got, sheet.Sheet{
		"button": style.Dict{
			"paddingTop":    style.String("5px"),
			"paddingRight":  style.String("5px"),
			"paddingBottom": style.String("5px"),
			"paddingLeft":   style.String("5px"),
			"color":         style.String("blue"),
		},
	})
}

func TestLoadYAML(t *testing.T) {
	const doc = `
link:
  borderBottom: 1px dotted
  opacity: 0.5
`
	got, err := sheet.Load(strings.NewReader(doc), sheet.YAML)
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, got, sheet.Sheet{
		"link": style.Dict{
			"borderBottomWidth": style.String("1px"),
			"borderBottomStyle": style.String("dotted"),
			"borderBottomColor": style.String("initial"),
			"opacity":           style.Number(0.5),
		},
	})
}

func TestLoadInvalid(t *testing.T) {
	for _, test := range []struct {
		doc    string
		format sheet.Format
	}{
		{`{]`, sheet.JSON},
		{`{"button": 4}`, sheet.JSON}, // rules must be mappings
		{`{}`, 0},                     // unknown format
	} {
		if _, err := sheet.Load(strings.NewReader(test.doc), test.format); err == nil {
			t.Fatalf("expected an error on %s", test.doc)
		}
	}
}

func TestLoadFile(t *testing.T) {
	got, err := sheet.LoadFile("testdata/theme.toml")
	if err != nil {
		t.Fatal(err)
	}

	button := got["button"]
	tu.AssertEqual(t, len(button), 17) // 4 margins, 12 borders, color
	tu.AssertEqual(t, button["marginTop"], style.String("2px"))
	tu.AssertEqual(t, button["marginLeft"], style.String("4px"))
	tu.AssertEqual(t, button["borderTopWidth"], style.String("1px"))
	tu.AssertEqual(t, button["borderLeftStyle"], style.String("solid"))
	tu.AssertEqual(t, button["borderBottomColor"], style.String("black"))
	tu.AssertEqual(t, button["color"], style.String("white"))
	if _, in := button["border"]; in {
		t.Fatal("shorthand properties should not survive Load")
	}

	tu.AssertEqual(t, got["card"], style.Dict{
		"borderTopLeftRadius":     style.String("4px 8px"),
		"borderTopRightRadius":    style.String("4px 8px"),
		"borderBottomRightRadius": style.String("4px 8px"),
		"borderBottomLeftRadius":  style.String("4px 8px"),
		"paddingTop":              style.String("8px"),
		"paddingRight":            style.String("8px"),
		"paddingBottom":           style.String("8px"),
		"paddingLeft":             style.String("8px"),
		"opacity":                 style.Number(0.9),
	})
}

func TestLoadFileUnsupported(t *testing.T) {
	if _, err := sheet.LoadFile("testdata/theme.ini"); err == nil {
		t.Fatal("expected an error on unsupported extension")
	}
}
