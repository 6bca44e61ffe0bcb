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

// Package validators implements the structural-inheritance validators.
package validators

import (
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vszabo2/smithy/pkg/knowledge"
	"github.com/vszabo2/smithy/pkg/model"
	"github.com/vszabo2/smithy/pkg/validation"
)

// HierarchyValidator checks the correctness of structural inheritance:
//
//   - The parent referenced in "isa" must be a structure.
//   - The parent referenced in "isa" must not be marked as final.
//   - The parent chain must not form a circular inheritance hierarchy.
//   - Structures must not case-insensitively redefine members declared
//     by any ancestor structure under a different spelling.
//
// Missing parents are deliberately not reported here: reference
// integrity is a different validator's concern and duplicate events
// help nobody. Kind and final checks apply to a structure's direct
// parent only; deeper ancestors report those defects from their own
// walks, so each offending edge yields exactly one event.
type HierarchyValidator struct{}

// Name implements validation.Validator.
func (HierarchyValidator) Name() string { return "HierarchyValidator" }

// Validate implements validation.Validator. The parent walk performs
// its own cycle detection instead of using the index, because the index
// silently tolerates the very cycles this validator exists to report.
func (v HierarchyValidator) Validate(m *model.Model, index *knowledge.StructureIndex) []validation.Event {
	var events []validation.Event
	for _, s := range m.StructureShapes() {
		if ev, ok := v.validateChain(m, s); ok {
			events = append(events, ev)
		}
	}
	for _, s := range m.StructureShapes() {
		if ev, ok := v.validateMemberConflicts(s, index); ok {
			events = append(events, ev)
		}
	}
	return events
}

// validateChain walks the raw parent chain of one structure and reports
// at most one defect, first violation wins.
func (v HierarchyValidator) validateChain(m *model.Model, s *model.Shape) (validation.Event, bool) {
	visited := sets.New(s.ID)
	chain := []string{s.ID.String()}
	current := s

	for current.Parent != nil {
		parentID := *current.Parent

		if visited.Has(parentID) {
			return validation.Errorf(validation.CircularInheritance, s.ID,
				"Structure shape has a circular inheritance hierarchy: %s < %s",
				strings.Join(chain, " < "), parentID), true
		}
		visited.Insert(parentID)
		chain = append(chain, parentID.String())

		parent, ok := m.Shape(parentID)
		if !ok {
			// Dangling references are reported by the reference validator.
			return validation.Event{}, false
		}

		if parent.Kind != model.KindStructure {
			if current == s {
				return validation.Errorf(validation.NonStructuralParent, s.ID,
					"Structure shape parent `%s` is a `%s` and not a structure",
					parentID, parent.Kind), true
			}
			// A non-structure ancestor ends the walk; the structure that
			// references it reports the defect from its own walk.
			return validation.Event{}, false
		}

		if current == s && parent.HasTrait(model.FinalTraitName) {
			return validation.Errorf(validation.FinalParentExtension, s.ID,
				"Structure shape attempts to extend from `%s` which is marked with the final trait",
				parentID), true
		}

		current = parent
	}

	return validation.Event{}, false
}

// validateMemberConflicts compares a structure's own member names
// case-insensitively against every ancestor's own members. An exact
// same-spelling redefinition is an override resolved by the index's
// merge precedence, not a conflict.
func (v HierarchyValidator) validateMemberConflicts(s *model.Shape, index *knowledge.StructureIndex) (validation.Event, bool) {
	var ancestorMembers []*model.Member
	for _, ancestor := range index.Parents(s.ID) {
		for _, name := range ancestor.SortedMemberNames() {
			ancestorMembers = append(ancestorMembers, ancestor.Members[name])
		}
	}

	conflicts := make(map[string]sets.Set[string])
	for _, name := range s.SortedMemberNames() {
		for _, test := range ancestorMembers {
			if name == test.MemberName() || !strings.EqualFold(name, test.MemberName()) {
				continue
			}
			if conflicts[name] == nil {
				conflicts[name] = sets.New[string]()
			}
			conflicts[name].Insert(test.ID.String())
		}
	}

	if len(conflicts) == 0 {
		return validation.Event{}, false
	}

	names := make([]string, 0, len(conflicts))
	for name := range conflicts {
		names = append(names, name)
	}
	sort.Strings(names)

	var msg strings.Builder
	msg.WriteString("Member name conflicts were found in the inheritance hierarchy of this structure: ")
	for _, name := range names {
		ids := conflicts[name].UnsortedList()
		sort.Strings(ids)
		msg.WriteString("`" + name + "` conflicts with " + validation.TickedList(ids) + "; ")
	}
	msg.WriteString("Member names must be case-insensitively unique across all inherited shapes.")

	return validation.Errorf(validation.MemberNameConflict, s.ID, "%s", msg.String()), true
}
