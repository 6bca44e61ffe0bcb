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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vszabo2/smithy/pkg/model"
	"github.com/vszabo2/smithy/pkg/validation"
)

const errorTrait = "smithy.api#error"

func reifiedDef() model.TraitDefinition {
	return model.TraitDefinition{Name: errorTrait, Reified: true}
}

func TestReifiedTraitEqualValuesPass(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).AddTraitDefinition(reifiedDef()))
	assert.Empty(t, events)
}

func TestReifiedTraitMissingOnChild(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).AddTraitDefinition(reifiedDef()))
	require.Len(t, events, 1)
	assert.Equal(t, validation.ReifiedAnnotationMissingOnChild, events[0].ID)
	assert.Equal(t, idB, events[0].Shape)
	assert.Equal(t,
		"Structure is missing reified trait `smithy.api#error` defined on parent structure, "+
			"`foo.baz#A`, with value `\"client\"`",
		events[0].Message)
}

func TestReifiedTraitValueMismatch(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "server"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).AddTraitDefinition(reifiedDef()))
	require.Len(t, events, 1)
	assert.Equal(t, validation.ReifiedAnnotationValueMismatch, events[0].ID)
	assert.Equal(t, idB, events[0].Shape)
	assert.Equal(t,
		"Structure has a different reified trait value for `smithy.api#error` than its parent "+
			"structure, `foo.baz#A`: `\"server\"` vs `\"client\"`",
		events[0].Message)
}

func TestReifiedTraitMissingOnParent(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).AddTraitDefinition(reifiedDef()))
	require.Len(t, events, 1)
	assert.Equal(t, validation.ReifiedAnnotationMissingOnParent, events[0].ID)
	assert.Equal(t, idB, events[0].Shape)
	assert.Equal(t,
		"Structure defines a reified trait value for `smithy.api#error` that is missing from its "+
			"parent, `foo.baz#A`, with value `\"client\"`. This trait must be applied using the "+
			"exact same value across all shapes in the hierarchy.",
		events[0].Message)
}

func TestReifiedTraitStructuralValueComparison(t *testing.T) {
	value := func() any {
		return map[string]any{"code": float64(503), "retryable": true}
	}
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: value()})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: value()})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).AddTraitDefinition(reifiedDef()))
	assert.Empty(t, events)
}

func TestReifiedTraitChecksEveryAdjacentPair(t *testing.T) {
	// A carries the trait; B dropped it; C reintroduced it. Both defective
	// edges (B,A) and (C,B) are reported independently.
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA}
	c := &model.Shape{ID: idC, Kind: model.KindStructure, Parent: &idB,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b, c).AddTraitDefinition(reifiedDef()))
	require.Len(t, events, 2)
	assert.Equal(t, validation.ReifiedAnnotationMissingOnChild, events[0].ID)
	assert.Equal(t, idB, events[0].Shape)
	assert.Equal(t, validation.ReifiedAnnotationMissingOnParent, events[1].ID)
	assert.Equal(t, idC, events[1].Shape)
}

func TestReifiedTraitSkipsParentlessStructures(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: errorTrait, Value: "client"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a).AddTraitDefinition(reifiedDef()))
	assert.Empty(t, events)
}

func TestNonReifiedTraitsAreNotCompared(t *testing.T) {
	a := &model.Shape{ID: idA, Kind: model.KindStructure,
		Traits: model.TraitMap(model.Trait{Name: "foo.baz#plain", Value: "x"})}
	b := &model.Shape{ID: idB, Kind: model.KindStructure, Parent: &idA,
		Traits: model.TraitMap(model.Trait{Name: "foo.baz#plain", Value: "y"})}

	events := runValidator(t, ReifiedTraitValidator{},
		model.NewBuilder().AddShape(a, b).
			AddTraitDefinition(model.TraitDefinition{Name: "foo.baz#plain"}))
	assert.Empty(t, events)
}
