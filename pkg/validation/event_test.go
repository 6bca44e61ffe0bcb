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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vszabo2/smithy/pkg/model"
)

func TestEventString(t *testing.T) {
	e := Errorf(FinalParentExtension, model.NewShapeID("foo.baz", "B"),
		"Structure shape attempts to extend from `%s` which is marked with the final trait",
		"foo.baz#A")
	assert.Equal(t, SeverityError, e.Severity)
	assert.Equal(t,
		"ERROR: foo.baz#B: (FinalParentExtension) Structure shape attempts to extend from "+
			"`foo.baz#A` which is marked with the final trait",
		e.String())
}

func TestSortEvents(t *testing.T) {
	b := model.NewShapeID("foo.baz", "B")
	a := model.NewShapeID("foo.baz", "A")

	events := []Event{
		{ID: MemberNameConflict, Shape: b, Message: "z"},
		{ID: CircularInheritance, Shape: b, Message: "y"},
		{ID: MemberNameConflict, Shape: a, Message: "x"},
		{ID: CircularInheritance, Shape: b, Message: "a"},
	}
	SortEvents(events)

	got := make([]string, len(events))
	for i, e := range events {
		got[i] = e.Shape.String() + "/" + e.ID + "/" + e.Message
	}
	assert.Equal(t, []string{
		"foo.baz#A/MemberNameConflict/x",
		"foo.baz#B/CircularInheritance/a",
		"foo.baz#B/CircularInheritance/y",
		"foo.baz#B/MemberNameConflict/z",
	}, got)
}

func TestTickedList(t *testing.T) {
	assert.Equal(t, "", TickedList(nil))
	assert.Equal(t, "`a`", TickedList([]string{"a"}))
	assert.Equal(t, "`a`, `b`, `c`", TickedList([]string{"a", "b", "c"}))
}
