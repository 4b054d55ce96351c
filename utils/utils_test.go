package utils

import "testing"

func TestSet(t *testing.T) {
	s := NewSet("solid", "dotted")
	if !s.Has("solid") || !s.Has("dotted") || s.Has("dashed") {
		t.Fatalf("unexpected set content: %v", s)
	}
	s.Add("dashed")
	if !s.Has("dashed") {
		t.Fatalf("unexpected set content: %v", s)
	}
}

func TestPropertyNames(t *testing.T) {
	for _, test := range []struct {
		kebab, camel string
	}{
		{"margin", "margin"},
		{"border-top-width", "borderTopWidth"},
		{"border-top-left-radius", "borderTopLeftRadius"},
		{"-webkit-transition", "WebkitTransition"},
	} {
		if got := KebabToCamel(test.kebab); got != test.camel {
			t.Fatalf("KebabToCamel(%s): expected %s, got %s", test.kebab, test.camel, got)
		}
		if got := CamelToKebab(test.camel); got != test.kebab {
			t.Fatalf("CamelToKebab(%s): expected %s, got %s", test.camel, test.kebab, got)
		}
	}

	// repeated dashes collapse; not a round trip
	if got := KebabToCamel("a--b"); got != "aB" {
		t.Fatalf("KebabToCamel(a--b): expected aB, got %s", got)
	}
}
