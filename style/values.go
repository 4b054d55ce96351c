// Package style defines the value model shared by the expansion
// packages : a style is a tree of declarations, where keys are
// camelCase property names and values are strings, numbers,
// booleans, nested styles, ordered lists or callables.
package style

// Value is the type of the values a style declaration may take.
// It is implemented by String, Number, Bool, Dict, List and Func;
// a nil Value stands for the null literal.
//
// The concrete type is chosen at construction time : the expansion
// never infers it from the shape of the data.
type Value interface {
	isValue()
}

// String is a raw CSS value, such as "1px solid red".
type String string

// Number is a numeric literal, kept verbatim by the expansion.
type Number float64

// Bool is a boolean literal, kept verbatim by the expansion.
type Bool bool

// Dict is a style object, mapping property names to values.
type Dict map[string]Value

// List is an ordered sequence of values, used for instance for
// variants of a style object.
type List []Value

// Func is a callable producing a value, supporting dynamic or
// interpolated styles.
type Func func(args ...Value) Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Dict) isValue()   {}
func (List) isValue()   {}
func (Func) isValue()   {}

// Copy returns a shallow copy.
func (d Dict) Copy() Dict {
	out := make(Dict, len(d))
	for name, value := range d {
		out[name] = value
	}
	return out
}

// UpdateWith merges the entries of other into the dict, overriding
// the keys already present.
func (d Dict) UpdateWith(other Dict) {
	for name, value := range other {
		d[name] = value
	}
}
