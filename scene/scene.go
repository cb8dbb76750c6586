// Package scene models the group/entity/solid tree that a scene file
// describes and the walker that applies the geo package's transformations
// to it in the fixed order the format requires (spec §4.12).
package scene

import "github.com/brushfix/brushfix/geo"

// VisGroup is one entry of the scene's visibility-group table.
type VisGroup struct {
	Index   int
	Name    string
	Color   [3]byte
	Visible bool
}

// KeyValue is one classname-less key/value pair carried by an entity.
type KeyValue struct {
	Key, Value string
}

// Entity is a classed leaf of the tree: a classname, its key/value data,
// and the solids it owns directly.
type Entity struct {
	Classname string
	KeyValues []KeyValue
	Solids    []geo.Solid
	Visgroup  int
	Index     int
}

// Value returns the value for key, or "" if the entity carries no such key.
func (e *Entity) Value(key string) string {
	for _, kv := range e.KeyValues {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// SetValue sets key to value, replacing any existing entry.
func (e *Entity) SetValue(key, value string) {
	for i, kv := range e.KeyValues {
		if kv.Key == key {
			e.KeyValues[i].Value = value
			return
		}
	}
	e.KeyValues = append(e.KeyValues, KeyValue{Key: key, Value: value})
}

// Group is an interior tree node: child groups, entities, and solids owned
// directly by the group itself (spec §3 "group/entity tree").
type Group struct {
	Groups   []Group
	Entities []Entity
	Solids   []geo.Solid
	Visgroup int
	Index    int
}

// Scene is the whole loaded file: the visibility-group table, the
// worldspawn entity's own keys, and the root group of its direct children.
type Scene struct {
	VisGroups []VisGroup
	Classname string
	KeyValues []KeyValue
	Root      Group
}

// Value returns the worldspawn value for key, or "" if absent.
func (s *Scene) Value(key string) string {
	for _, kv := range s.KeyValues {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// SetValue sets the worldspawn key to value, replacing any existing entry.
func (s *Scene) SetValue(key, value string) {
	for i, kv := range s.KeyValues {
		if kv.Key == key {
			s.KeyValues[i].Value = value
			return
		}
	}
	s.KeyValues = append(s.KeyValues, KeyValue{Key: key, Value: value})
}

// VisGroupVisible reports whether index is visible — visgroup 0 is always
// visible regardless of the table (spec §4.12).
func (s *Scene) VisGroupVisible(index int) bool {
	if index == 0 {
		return true
	}
	for _, vg := range s.VisGroups {
		if vg.Index == index {
			return vg.Visible
		}
	}
	return true
}
