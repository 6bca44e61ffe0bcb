// Copyright 2025 The Smithy Model Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"fmt"
	"sort"
)

// Model is an immutable, fully-assembled shape graph together with the
// trait definition registry. All cross-references between shapes are
// expressed as ShapeIDs and resolved through lookups, never as direct
// ownership links, so traversal over broken or cyclic references stays
// safe.
type Model struct {
	shapes    map[ShapeID]*Shape
	sortedIDs []ShapeID
	traitDefs map[string]TraitDefinition
}

// Shape looks up a shape by ID. Absent IDs report ok=false.
func (m *Model) Shape(id ShapeID) (*Shape, bool) {
	s, ok := m.shapes[id]
	return s, ok
}

// Shapes returns all shapes in sorted ID order.
func (m *Model) Shapes() []*Shape {
	out := make([]*Shape, 0, len(m.sortedIDs))
	for _, id := range m.sortedIDs {
		out = append(out, m.shapes[id])
	}
	return out
}

// StructureShapes returns all structure shapes in sorted ID order.
func (m *Model) StructureShapes() []*Shape {
	var out []*Shape
	for _, id := range m.sortedIDs {
		if s := m.shapes[id]; s.Kind == KindStructure {
			out = append(out, s)
		}
	}
	return out
}

// TraitDefinition looks up a trait definition by name. Names without a
// namespace are resolved against the prelude namespace.
func (m *Model) TraitDefinition(name string) (TraitDefinition, bool) {
	def, ok := m.traitDefs[AbsoluteTraitName(name)]
	return def, ok
}

// TraitDefinitions returns all trait definitions sorted by name.
func (m *Model) TraitDefinitions() []TraitDefinition {
	names := make([]string, 0, len(m.traitDefs))
	for name := range m.traitDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]TraitDefinition, 0, len(names))
	for _, name := range names {
		out = append(out, m.traitDefs[name])
	}
	return out
}

// Builder assembles a Model. The zero value is not usable; create one
// with NewBuilder.
type Builder struct {
	shapes    map[ShapeID]*Shape
	traitDefs map[string]TraitDefinition
	errs      []error
}

// NewBuilder creates an empty model builder.
func NewBuilder() *Builder {
	return &Builder{
		shapes:    make(map[ShapeID]*Shape),
		traitDefs: make(map[string]TraitDefinition),
	}
}

// AddShape registers a shape. Duplicate IDs and malformed shapes are
// reported by Build.
func (b *Builder) AddShape(shapes ...*Shape) *Builder {
	for _, s := range shapes {
		if _, dup := b.shapes[s.ID]; dup {
			b.errs = append(b.errs, fmt.Errorf("duplicate shape ID %q", s.ID))
			continue
		}
		if err := checkShape(s); err != nil {
			b.errs = append(b.errs, err)
			continue
		}
		b.shapes[s.ID] = s
	}
	return b
}

// AddTraitDefinition registers a trait definition. The last definition
// added for a name wins.
func (b *Builder) AddTraitDefinition(defs ...TraitDefinition) *Builder {
	for _, def := range defs {
		def.Name = AbsoluteTraitName(def.Name)
		b.traitDefs[def.Name] = def
	}
	return b
}

// Build assembles the immutable model. The builder must not be reused
// and the registered shapes must not be mutated afterwards.
func (b *Builder) Build() (*Model, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("model assembly failed: %w", b.errs[0])
	}
	m := &Model{
		shapes:    b.shapes,
		traitDefs: b.traitDefs,
		sortedIDs: make([]ShapeID, 0, len(b.shapes)),
	}
	for id := range b.shapes {
		m.sortedIDs = append(m.sortedIDs, id)
	}
	sort.Slice(m.sortedIDs, func(i, j int) bool {
		return m.sortedIDs[i].Less(m.sortedIDs[j])
	})
	return m, nil
}

func checkShape(s *Shape) error {
	if s.ID.IsMember() {
		return fmt.Errorf("shape ID %q: members are owned by their declaring structure, not registered directly", s.ID)
	}
	if s.Kind != KindStructure {
		if s.Parent != nil {
			return fmt.Errorf("shape %q is a %s: only structure shapes may declare a parent", s.ID, s.Kind)
		}
		if len(s.Members) > 0 {
			return fmt.Errorf("shape %q is a %s: only structure shapes may declare members", s.ID, s.Kind)
		}
		return nil
	}
	for name, member := range s.Members {
		if member.ID != s.ID.WithMember(name) {
			return fmt.Errorf("structure %q: member %q has inconsistent ID %q", s.ID, name, member.ID)
		}
	}
	return nil
}
