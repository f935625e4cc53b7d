package value

import "fmt"

// HashMap maps String or Keyword keys to Values (spec §3). Insertion
// order is preserved so printing and `keys`/`vals` are deterministic,
// which matters for the reader/printer round-trip property (spec §8).
type HashMap struct {
	order []string
	keys  map[string]Value // raw key -> original key Value (String or Keyword)
	vals  map[string]Value
	Meta  Value
}

// NewHashMap builds an empty HashMap.
func NewHashMap() *HashMap {
	return &HashMap{
		keys: make(map[string]Value),
		vals: make(map[string]Value),
		Meta: NilValue,
	}
}

func (h *HashMap) Kind() Kind     { return KindHashMap }
func (h *HashMap) String() string { return Pr(h, false) }

// hashKey encodes a hashable key Value into a map key that
// distinguishes String("x") from Keyword("x"); see spec §9 on keyword
// encoding being an implementation detail, not an observable-behavior
// contract.
func hashKey(k Value) (string, error) {
	switch k := k.(type) {
	case String:
		return "s:" + string(k), nil
	case Keyword:
		return "k:" + string(k), nil
	default:
		return "", fmt.Errorf("hash-map key must be a string or keyword, got %s", k.Kind())
	}
}

// Assoc returns a new HashMap with the given key/value replaced or
// added; the receiver is left untouched (spec §3, immutable
// containers).
func (h *HashMap) Assoc(k, v Value) (*HashMap, error) {
	key, err := hashKey(k)
	if err != nil {
		return nil, err
	}
	out := h.clone()
	if _, exists := out.vals[key]; !exists {
		out.order = append(out.order, key)
	}
	out.keys[key] = k
	out.vals[key] = v
	return out, nil
}

// Dissoc returns a new HashMap with the given keys removed.
func (h *HashMap) Dissoc(ks ...Value) (*HashMap, error) {
	out := h.clone()
	for _, k := range ks {
		key, err := hashKey(k)
		if err != nil {
			return nil, err
		}
		if _, exists := out.vals[key]; exists {
			delete(out.vals, key)
			delete(out.keys, key)
			for i, o := range out.order {
				if o == key {
					out.order = append(out.order[:i], out.order[i+1:]...)
					break
				}
			}
		}
	}
	return out, nil
}

// Get returns the value for k, or (nil, false) if absent.
func (h *HashMap) Get(k Value) (Value, bool) {
	key, err := hashKey(k)
	if err != nil {
		return nil, false
	}
	v, ok := h.vals[key]
	return v, ok
}

// Contains reports whether k is present.
func (h *HashMap) Contains(k Value) bool {
	_, ok := h.Get(k)
	return ok
}

// Keys returns the map's keys in insertion order.
func (h *HashMap) Keys() []Value {
	out := make([]Value, len(h.order))
	for i, key := range h.order {
		out[i] = h.keys[key]
	}
	return out
}

// Vals returns the map's values in insertion order.
func (h *HashMap) Vals() []Value {
	out := make([]Value, len(h.order))
	for i, key := range h.order {
		out[i] = h.vals[key]
	}
	return out
}

// Len returns the number of entries.
func (h *HashMap) Len() int { return len(h.order) }

func (h *HashMap) clone() *HashMap {
	out := &HashMap{
		order: append([]string(nil), h.order...),
		keys:  make(map[string]Value, len(h.keys)),
		vals:  make(map[string]Value, len(h.vals)),
		Meta:  h.Meta,
	}
	for k, v := range h.keys {
		out.keys[k] = v
	}
	for k, v := range h.vals {
		out.vals[k] = v
	}
	return out
}
