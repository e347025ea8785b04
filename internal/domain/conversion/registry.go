package conversion

import (
	"fmt"
	"sort"
)

// Entry binds a conversion pair to its processor and default parameters.
// Entries are created once at startup and never mutated.
type Entry struct {
	Input     Format
	Output    Format
	Processor Processor
	Defaults  Params
}

// Key returns the registry key for the entry's pair.
func (e *Entry) Key() Key { return MakeKey(e.Input, e.Output) }

// Registry is the static table of supported conversions. Lookup is
// exact-match on the key; there is no aliasing between jpg and jpeg.
type Registry struct {
	entries map[Key]*Entry
	keys    []Key
}

// NewRegistry builds the lookup table from a declarative entry list. It fails
// on duplicate pairs and on default parameters that do not validate, so a
// misconfigured table is caught at startup rather than per request.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{entries: make(map[Key]*Entry, len(entries))}
	for i := range entries {
		e := entries[i]
		if e.Processor == nil {
			return nil, fmt.Errorf("entry %s: nil processor", e.Key())
		}
		if e.Defaults == nil {
			return nil, fmt.Errorf("entry %s: nil default params", e.Key())
		}
		if err := e.Defaults.Validate(); err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.Key(), err)
		}
		key := e.Key()
		if _, dup := r.entries[key]; dup {
			return nil, fmt.Errorf("duplicate conversion %s", key)
		}
		r.entries[key] = &e
		r.keys = append(r.keys, key)
	}
	sort.Slice(r.keys, func(i, j int) bool { return r.keys[i] < r.keys[j] })
	return r, nil
}

// Lookup returns the entry for key, or ok=false on a miss.
func (r *Registry) Lookup(key Key) (*Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Has reports whether the conversion is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns all registered conversion keys, sorted.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// KeysByInput returns the keys accepting the given input format.
func (r *Registry) KeysByInput(format Format) []Key {
	var out []Key
	for _, key := range r.keys {
		if r.entries[key].Input == format {
			out = append(out, key)
		}
	}
	return out
}

// KeysByOutput returns the keys producing the given output format.
func (r *Registry) KeysByOutput(format Format) []Key {
	var out []Key
	for _, key := range r.keys {
		if r.entries[key].Output == format {
			out = append(out, key)
		}
	}
	return out
}

// Len returns the number of registered conversions.
func (r *Registry) Len() int { return len(r.keys) }
