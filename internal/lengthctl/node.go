package lengthctl

// Node is the tagged variant the trimmer recurses over. A decoded JSON
// payload maps onto exactly one of Text, Scalar, List or Map.
type Node interface {
	isNode()
}

// Text is a string leaf subject to character and token caps.
type Text string

// Scalar is a non-string leaf (number, bool, null); it passes through
// trimming untouched.
type Scalar struct {
	Value any
}

// List is an ordered sequence of nodes.
type List []Node

// Map is a string-keyed object.
type Map map[string]Node

func (Text) isNode()   {}
func (Scalar) isNode() {}
func (List) isNode()   {}
func (Map) isNode()    {}

// FromAny converts a decoded JSON-like value into a Node tree.
func FromAny(v any) Node {
	switch t := v.(type) {
	case Node:
		return t
	case string:
		return Text(t)
	case []string:
		out := make(List, len(t))
		for i, s := range t {
			out[i] = Text(s)
		}
		return out
	case []any:
		out := make(List, len(t))
		for i, x := range t {
			out[i] = FromAny(x)
		}
		return out
	case map[string]any:
		out := make(Map, len(t))
		for k, x := range t {
			out[k] = FromAny(x)
		}
		return out
	default:
		return Scalar{Value: v}
	}
}

// ToAny converts a Node tree back into plain JSON-encodable values.
func ToAny(n Node) any {
	switch t := n.(type) {
	case Text:
		return string(t)
	case Scalar:
		return t.Value
	case List:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = ToAny(x)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = ToAny(x)
		}
		return out
	default:
		return nil
	}
}
