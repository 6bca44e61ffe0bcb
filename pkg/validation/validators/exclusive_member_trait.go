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

// ExclusiveMemberTraitValidator detects traits marked structurally
// exclusive that are applied to more than one member of a structure's
// effective member set, inherited members included.
type ExclusiveMemberTraitValidator struct{}

// Name implements validation.Validator.
func (ExclusiveMemberTraitValidator) Name() string { return "ExclusiveMemberTraitValidator" }

// Validate implements validation.Validator.
func (v ExclusiveMemberTraitValidator) Validate(m *model.Model, index *knowledge.StructureIndex) []validation.Event {
	var events []validation.Event
	for _, s := range m.StructureShapes() {
		events = append(events, v.validateStructure(m, index, s)...)
	}
	return events
}

func (v ExclusiveMemberTraitValidator) validateStructure(m *model.Model, index *knowledge.StructureIndex, s *model.Shape) []validation.Event {
	members := index.Members(s.ID)

	// Collect the distinct exclusive trait names applied across the
	// effective member set.
	exclusive := sets.New[string]()
	for _, member := range members {
		for name := range member.Traits {
			if def, ok := m.TraitDefinition(name); ok && def.StructurallyExclusive {
				exclusive.Insert(name)
			}
		}
	}
	if exclusive.Len() == 0 {
		return nil
	}

	var events []validation.Event
	for _, traitName := range sets.List(exclusive) {
		var matches []model.ShapeID
		for _, member := range members {
			if member.HasTrait(traitName) {
				matches = append(matches, member.ID)
			}
		}
		if len(matches) < 2 {
			continue
		}
		sort.Slice(matches, func(i, j int) bool { return matches[i].Less(matches[j]) })

		// Show the bare member name for members of the structure under
		// validation; inherited members keep the full shape ID so the
		// message makes clear where they come from.
		names := make([]string, 0, len(matches))
		for _, id := range matches {
			if id.WithoutMember() == s.ID {
				names = append(names, id.Member)
			} else {
				names = append(names, id.String())
			}
		}

		events = append(events, validation.Errorf(validation.ExclusiveAnnotationMultipleMembers, s.ID,
			"The `%s` trait can be applied to only a single member of a structure, but was found on the following members: %s",
			model.IdiomaticTraitName(traitName), validation.TickedList(names)))
	}
	return events
}
