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

// Package knowledge provides memoized derived views over a model
// snapshot. Indexes never mutate the model and never raise defects:
// they produce a deterministic best-effort view even over an invalid
// hierarchy, leaving defect reporting to the validators.
package knowledge

import (
	"sort"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vszabo2/smithy/pkg/model"
)

// StructureIndex answers queries about structure inheritance: resolved
// ancestor chains, merged member sets, and merged inherited traits.
//
// The index is a pure function of one model snapshot. It is safe for
// concurrent use once constructed: per-shape merged views are computed
// at most effectively once per key; concurrent first lookups may compute
// redundantly but always converge on the same cached value.
type StructureIndex struct {
	model           *model.Model
	inheritedTraits sets.Set[string]
	structs         map[model.ShapeID]*model.Shape
	parents         map[model.ShapeID][]*model.Shape

	members sync.Map // model.ShapeID -> map[string]*model.Member
	traits  sync.Map // model.ShapeID -> map[string]model.Trait
}

// NewStructureIndex builds the index for a model snapshot. Ancestor
// chains are resolved eagerly; merged member and trait views are
// computed lazily on first query.
func NewStructureIndex(m *model.Model) *StructureIndex {
	idx := &StructureIndex{
		model:           m,
		inheritedTraits: sets.New[string](),
		structs:         make(map[model.ShapeID]*model.Shape),
		parents:         make(map[model.ShapeID][]*model.Shape),
	}
	for _, def := range m.TraitDefinitions() {
		if def.Inherited {
			idx.inheritedTraits.Insert(def.Name)
		}
	}
	for _, s := range m.StructureShapes() {
		idx.structs[s.ID] = s
		idx.parents[s.ID] = resolveParents(m, s)
	}
	return idx
}

// Parent returns the resolved direct parent structure, if any.
func (x *StructureIndex) Parent(id model.ShapeID) (*model.Shape, bool) {
	parents := x.Parents(id)
	if len(parents) == 0 {
		return nil, false
	}
	return parents[0], true
}

// Parents returns the resolved ancestor chain in order from closest to
// furthest. Resolution stops silently at a missing parent, a parent of
// the wrong kind, or a cycle; reporting those defects is the hierarchy
// validator's job. The returned slice must not be mutated.
func (x *StructureIndex) Parents(id model.ShapeID) []*model.Shape {
	return x.parents[id]
}

// Members returns the combined members of a structure and all of its
// ancestors, keyed by member name.
//
// Merging does not reject subtypes that redefine ancestor members (that
// is validated elsewhere); on a name conflict the furthest ancestor's
// definition wins. The returned map must not be mutated.
func (x *StructureIndex) Members(id model.ShapeID) map[string]*model.Member {
	if v, ok := x.members.Load(id); ok {
		return v.(map[string]*model.Member)
	}
	v, _ := x.members.LoadOrStore(id, x.computeMembers(id))
	return v.(map[string]*model.Member)
}

func (x *StructureIndex) computeMembers(id model.ShapeID) map[string]*model.Member {
	s, ok := x.structs[id]
	if !ok {
		return map[string]*model.Member{}
	}
	merged := make(map[string]*model.Member, len(s.Members))
	for name, m := range s.Members {
		merged[name] = m
	}
	for _, parent := range x.Parents(id) {
		for name, m := range parent.Members {
			merged[name] = m
		}
	}
	return merged
}

// Traits returns the combined traits of a structure, keyed by absolute
// trait name. Only ancestor traits whose definition is marked inherited
// participate; the structure's own traits always win over inherited
// ones, and closer ancestors win over further ones. The returned map
// must not be mutated.
func (x *StructureIndex) Traits(id model.ShapeID) map[string]model.Trait {
	if v, ok := x.traits.Load(id); ok {
		return v.(map[string]model.Trait)
	}
	v, _ := x.traits.LoadOrStore(id, x.computeTraits(id))
	return v.(map[string]model.Trait)
}

func (x *StructureIndex) computeTraits(id model.ShapeID) map[string]model.Trait {
	s, ok := x.structs[id]
	if !ok {
		return map[string]model.Trait{}
	}
	merged := make(map[string]model.Trait, len(s.Traits))
	parents := x.Parents(id)
	for i := len(parents) - 1; i >= 0; i-- {
		for name, t := range parents[i].Traits {
			if x.inheritedTraits.Has(name) {
				merged[name] = t
			}
		}
	}
	for name, t := range s.Traits {
		merged[name] = t
	}
	return merged
}

// FindTrait looks up a trait by name in the merged trait view. Names
// without a namespace are resolved against the prelude namespace.
func (x *StructureIndex) FindTrait(id model.ShapeID, name string) (model.Trait, bool) {
	t, ok := x.Traits(id)[model.AbsoluteTraitName(name)]
	return t, ok
}

// TraitMatching returns the first trait in the merged trait view that
// the given predicate matches, scanning traits in sorted name order.
func (x *StructureIndex) TraitMatching(id model.ShapeID, match func(model.Trait) bool) (model.Trait, bool) {
	traits := x.Traits(id)
	names := make([]string, 0, len(traits))
	for name := range traits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if t := traits[name]; match(t) {
			return t, true
		}
	}
	return model.Trait{}, false
}

// Subtypes returns the structures whose direct parent reference equals
// the given ID, in sorted ID order. The scan is recomputed per call.
func (x *StructureIndex) Subtypes(id model.ShapeID) []*model.Shape {
	var out []*model.Shape
	for _, s := range x.model.StructureShapes() {
		if s.Parent != nil && *s.Parent == id {
			out = append(out, s)
		}
	}
	return out
}

// resolveParents walks the raw parent chain with an explicit visited
// set so that cyclic or broken chains terminate with whatever ancestors
// were accumulated before the break.
func resolveParents(m *model.Model, s *model.Shape) []*model.Shape {
	var parents []*model.Shape
	visited := sets.New(s.ID)
	for s.Parent != nil {
		parentID := *s.Parent
		if visited.Has(parentID) {
			return parents
		}
		parent, ok := m.Shape(parentID)
		if !ok || parent.Kind != model.KindStructure {
			return parents
		}
		visited.Insert(parentID)
		parents = append(parents, parent)
		s = parent
	}
	return parents
}
