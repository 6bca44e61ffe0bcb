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

import "sort"

// Shape is a node in the shape graph. Shapes are tagged variants over
// Kind: only structure shapes may carry a parent reference and members.
// Shapes are treated as immutable once the owning Model is built.
type Shape struct {
	// ID is the unique identifier of the shape.
	ID ShapeID

	// Kind identifies the shape variant.
	Kind Kind

	// Parent is the optional "isa" parent reference. Only meaningful for
	// structure shapes.
	Parent *ShapeID

	// Members maps member name to member. Only meaningful for structure
	// shapes.
	Members map[string]*Member

	// Traits maps absolute trait name to the applied trait.
	Traits map[string]Trait
}

// Trait looks up an applied trait by name. Names without a namespace are
// resolved against the prelude namespace.
func (s *Shape) Trait(name string) (Trait, bool) {
	t, ok := s.Traits[AbsoluteTraitName(name)]
	return t, ok
}

// HasTrait reports whether the named trait is applied to the shape.
func (s *Shape) HasTrait(name string) bool {
	_, ok := s.Trait(name)
	return ok
}

// SortedMemberNames returns the shape's member names in sorted order for
// deterministic traversal.
func (s *Shape) SortedMemberNames() []string {
	names := make([]string, 0, len(s.Members))
	for name := range s.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Member is a named, typed slot declared on a structure shape. Member
// identity is case-sensitive; case-insensitive uniqueness across a
// hierarchy is enforced by validation, not here.
type Member struct {
	// ID is the declaring shape's ID with the member part set.
	ID ShapeID

	// Target references the shape the member points at.
	Target ShapeID

	// Traits maps absolute trait name to the applied trait.
	Traits map[string]Trait
}

// NewMember creates a member of the given structure shape.
func NewMember(declaring ShapeID, name string, target ShapeID, traits ...Trait) *Member {
	return &Member{
		ID:     declaring.WithMember(name),
		Target: target,
		Traits: TraitMap(traits...),
	}
}

// MemberName returns the member's name within its declaring shape.
func (m *Member) MemberName() string { return m.ID.Member }

// Trait looks up an applied trait by name.
func (m *Member) Trait(name string) (Trait, bool) {
	t, ok := m.Traits[AbsoluteTraitName(name)]
	return t, ok
}

// HasTrait reports whether the named trait is applied to the member.
func (m *Member) HasTrait(name string) bool {
	_, ok := m.Trait(name)
	return ok
}
