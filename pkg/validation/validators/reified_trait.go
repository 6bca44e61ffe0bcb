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

package validators

import (
	"sort"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vszabo2/smithy/pkg/knowledge"
	"github.com/vszabo2/smithy/pkg/model"
	"github.com/vszabo2/smithy/pkg/validation"
)

// ReifiedTraitValidator ensures that any trait marked reified is applied
// with the exact same value on a structure and its direct parent.
//
// Each (structure, parent) pair is checked independently; transitive
// consistency across a whole chain follows from the union of the
// pairwise checks, so no multi-level walk is needed.
type ReifiedTraitValidator struct{}

// Name implements validation.Validator.
func (ReifiedTraitValidator) Name() string { return "ReifiedTraitValidator" }

// Validate implements validation.Validator.
func (v ReifiedTraitValidator) Validate(m *model.Model, index *knowledge.StructureIndex) []validation.Event {
	reified := sets.New[string]()
	for _, def := range m.TraitDefinitions() {
		if def.Reified {
			reified.Insert(def.Name)
		}
	}

	var events []validation.Event
	for _, s := range m.StructureShapes() {
		events = append(events, v.validateStructure(index, reified, s)...)
	}
	return events
}

func (v ReifiedTraitValidator) validateStructure(index *knowledge.StructureIndex, reified sets.Set[string], s *model.Shape) []validation.Event {
	parent, ok := index.Parent(s.ID)
	if !ok {
		// Nothing to check without a resolved parent.
		return nil
	}

	parentTraits := reifiedTraits(parent, reified)
	childTraits := reifiedTraits(s, reified)

	var events []validation.Event
	for _, name := range sortedTraitNames(parentTraits) {
		parentTrait := parentTraits[name]
		childTrait, present := childTraits[name]
		switch {
		case !present:
			events = append(events, validation.Errorf(validation.ReifiedAnnotationMissingOnChild, s.ID,
				"Structure is missing reified trait `%s` defined on parent structure, `%s`, with value `%s`",
				name, parent.ID, parentTrait.ValueJSON()))
		case !childTrait.Equal(parentTrait):
			events = append(events, validation.Errorf(validation.ReifiedAnnotationValueMismatch, s.ID,
				"Structure has a different reified trait value for `%s` than its parent structure, `%s`: `%s` vs `%s`",
				name, parent.ID, childTrait.ValueJSON(), parentTrait.ValueJSON()))
		}
	}

	for _, name := range sortedTraitNames(childTraits) {
		if _, present := parentTraits[name]; !present {
			events = append(events, validation.Errorf(validation.ReifiedAnnotationMissingOnParent, s.ID,
				"Structure defines a reified trait value for `%s` that is missing from its parent, `%s`, with value `%s`. "+
					"This trait must be applied using the exact same value across all shapes in the hierarchy.",
				name, parent.ID, childTraits[name].ValueJSON()))
		}
	}

	return events
}

func reifiedTraits(s *model.Shape, reified sets.Set[string]) map[string]model.Trait {
	out := make(map[string]model.Trait)
	for name, t := range s.Traits {
		if reified.Has(name) {
			out[name] = t
		}
	}
	return out
}

func sortedTraitNames(traits map[string]model.Trait) []string {
	names := make([]string, 0, len(traits))
	for name := range traits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
