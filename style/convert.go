package style

import (
	"encoding/json"
	"fmt"
)

// FromInterface converts a plain Go value, as produced by the
// encoding/json, yaml or toml decoders, to its Value equivalent.
// The supported input types are nil, bool, string, the usual
// numeric types, []any and map[string]any.
func FromInterface(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case uint64:
		return Number(v), nil
	case float32:
		return Number(v), nil
	case float64:
		return Number(v), nil
	case []any:
		out := make(List, len(v))
		for i, item := range v {
			value, err := FromInterface(item)
			if err != nil {
				return nil, err
			}
			out[i] = value
		}
		return out, nil
	case map[string]any:
		out := make(Dict, len(v))
		for name, item := range v {
			value, err := FromInterface(item)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (type %T)", v, v)
	}
}

// ToInterface is the reverse of FromInterface, turning a value tree
// back into plain Go values. Func values have no document form and
// are rejected.
func ToInterface(v Value) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case String:
		return string(v), nil
	case Number:
		return float64(v), nil
	case Bool:
		return bool(v), nil
	case List:
		out := make([]any, len(v))
		for i, item := range v {
			value, err := ToInterface(item)
			if err != nil {
				return nil, err
			}
			out[i] = value
		}
		return out, nil
	case Dict:
		out := make(map[string]any, len(v))
		for name, item := range v {
			value, err := ToInterface(item)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
		return out, nil
	case Func:
		return nil, fmt.Errorf("callable values have no document form")
	default:
		return nil, fmt.Errorf("unsupported value %v (type %T)", v, v)
	}
}

// MarshalJSON implements json.Marshaler. Callable values are
// rejected.
func (d Dict) MarshalJSON() ([]byte, error) {
	plain, err := ToInterface(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(plain)
}

// UnmarshalJSON implements json.Unmarshaler : style objects decode
// from JSON objects, with nested objects, arrays, numbers, booleans
// and nulls mapped to their Value equivalent.
func (d *Dict) UnmarshalJSON(data []byte) error {
	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	value, err := FromInterface(plain)
	if err != nil {
		return err
	}
	*d = value.(Dict)
	return nil
}
