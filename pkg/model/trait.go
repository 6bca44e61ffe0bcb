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
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// PreludeNamespace is the namespace assumed for trait names given without
// an explicit namespace.
const PreludeNamespace = "smithy.api"

// FinalTraitName marks a structure that must not be extended.
const FinalTraitName = PreludeNamespace + "#final"

// Trait is a named, optionally-valued marker applied to a shape or member.
// Values are JSON-like: nil, bool, float64, string, []any, or
// map[string]any.
type Trait struct {
	// Name is the fully-qualified trait name.
	Name string
	// Value is the applied trait value.
	Value any
}

// Equal reports whether two traits have the same name and structurally
// equal values.
func (t Trait) Equal(other Trait) bool {
	return t.Name == other.Name && reflect.DeepEqual(t.Value, other.Value)
}

// ValueJSON renders the trait value as JSON for inclusion in messages.
func (t Trait) ValueJSON() string {
	b, err := json.Marshal(t.Value)
	if err != nil {
		return fmt.Sprintf("%v", t.Value)
	}
	return string(b)
}

// AbsoluteTraitName qualifies a trait name with the prelude namespace if
// it carries no namespace of its own.
func AbsoluteTraitName(name string) string {
	if strings.Contains(name, "#") {
		return name
	}
	return PreludeNamespace + "#" + name
}

// IdiomaticTraitName strips the prelude namespace from a trait name, the
// way trait names are written in messages and model sources.
func IdiomaticTraitName(name string) string {
	return strings.TrimPrefix(name, PreludeNamespace+"#")
}

// TraitMap builds a trait map keyed by absolute trait name.
func TraitMap(traits ...Trait) map[string]Trait {
	m := make(map[string]Trait, len(traits))
	for _, t := range traits {
		t.Name = AbsoluteTraitName(t.Name)
		m[t.Name] = t
	}
	return m
}

// TraitDefinition describes a trait and the facets that govern how the
// trait behaves across an inheritance hierarchy.
type TraitDefinition struct {
	// Name is the fully-qualified trait name.
	Name string
	// Inherited traits propagate from parent structures to subtypes
	// through the structure index's merged trait view.
	Inherited bool
	// Reified traits must be applied with the exact same value on a
	// structure and its direct parent.
	Reified bool
	// StructurallyExclusive traits may be applied to at most one member
	// of a structure's effective member set.
	StructurallyExclusive bool
}
