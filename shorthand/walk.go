package shorthand

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benoitkugler/inlinestyle/logger"
	"github.com/benoitkugler/inlinestyle/style"
)

// An Expander walks style value trees, replacing the supported
// shorthand declarations by their longhand expansion. It holds no
// per-call state : one instance may be shared freely between
// goroutines.
type Expander struct {
	log *zap.Logger
}

// Option configures an Expander.
type Option func(*Expander)

// WithLogger redirects the warnings emitted by the lenient mode.
func WithLogger(log *zap.Logger) Option {
	return func(ex *Expander) { ex.log = log }
}

// New returns a ready to use Expander. Without options, warnings go
// to logger.Warning.
func New(options ...Option) *Expander {
	ex := &Expander{}
	for _, option := range options {
		option(ex)
	}
	if ex.log == nil {
		ex.log = logger.Warning
	}
	ex.log = ex.log.Named("shorthand")
	return ex
}

// Expand returns a copy of the given value where every supported
// shorthand declaration has been replaced by its longhand
// properties, using a default Expander. It is the main entry point
// of this module.
func Expand(v style.Value) style.Value { return New().Expand(v) }

// Expand walks the value : mappings are rebuilt with their
// shorthand declarations expanded and the other entries kept,
// lists are rebuilt element-wise, callables are wrapped so that
// their future results are expanded as well, and any other value is
// returned unchanged.
//
// A shorthand declaration is a mapping entry whose key belongs to
// the supported set (margin, padding, borderRadius, borderStyle,
// borderColor, borderWidth, borderTop, borderRight, borderBottom,
// borderLeft, border) and whose value is a string; the entry is
// replaced by the expanded longhands. Only the keys of each mapping
// are matched : expanded output is never reinterpreted.
//
// Colliding keys resolve deterministically : shorthands expand from
// the broadest (border) to the narrowest (the per side shorthands),
// and the mapping's own entries are applied last, overriding the
// expanded longhands they share a name with.
//
// The returned containers are freshly allocated, sharing no storage
// with the input. Values the expansion has to degrade (see
// ExpandStrict) are reported to the Expander logger.
func (ex *Expander) Expand(v style.Value) style.Value {
	switch v := v.(type) {
	case style.Dict:
		out := make(style.Dict, len(v))
		for _, key := range precedence {
			s, isString := v[key].(style.String)
			if !isString {
				continue
			}
			expanded, err := expanders[key](string(s))
			if err != nil {
				ex.log.Warn("invalid shorthand value",
					zap.String("property", key), zap.String("value", string(s)), zap.Error(err))
			}
			out.UpdateWith(expanded)
		}
		for key, value := range v {
			if _, isString := value.(style.String); isString {
				if _, isShorthand := expanders[key]; isShorthand {
					continue // expanded above
				}
			}
			out[key] = ex.Expand(value)
		}
		return out
	case style.List:
		out := make(style.List, len(v))
		for i, item := range v {
			out[i] = ex.Expand(item)
		}
		return out
	case style.Func:
		return style.Func(func(args ...style.Value) style.Value {
			return ex.Expand(v(args...))
		})
	default:
		return v
	}
}

// ExpandStrict behaves like Expand, but also reports the values the
// lenient mode silently degrades : empty shorthand values, more
// than four tokens for a four sides shorthand, extra border side
// tokens or radius groups. The defects of the whole tree are
// accumulated in the returned error, each wrapping ErrInvalidValue;
// the returned value is still usable and matches the Expand output.
//
// Callables are wrapped the lenient way, since they run after this
// call has returned : their defects are logged, not reported.
func (ex *Expander) ExpandStrict(v style.Value) (style.Value, error) {
	switch v := v.(type) {
	case style.Dict:
		out := make(style.Dict, len(v))
		var err error
		for _, key := range precedence {
			s, isString := v[key].(style.String)
			if !isString {
				continue
			}
			expanded, e := expanders[key](string(s))
			if e != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", key, e))
			}
			out.UpdateWith(expanded)
		}
		for key, value := range v {
			if _, isString := value.(style.String); isString {
				if _, isShorthand := expanders[key]; isShorthand {
					continue // expanded above
				}
			}
			expanded, e := ex.ExpandStrict(value)
			err = multierr.Append(err, e)
			out[key] = expanded
		}
		return out, err
	case style.List:
		out := make(style.List, len(v))
		var err error
		for i, item := range v {
			expanded, e := ex.ExpandStrict(item)
			err = multierr.Append(err, e)
			out[i] = expanded
		}
		return out, err
	case style.Func:
		return ex.Expand(v), nil
	default:
		return v, nil
	}
}
