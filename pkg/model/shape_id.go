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
	"strings"
)

// ShapeID uniquely identifies a shape in a model. Its text form is
// "namespace#Name" for top-level shapes and "namespace#Name$member" for
// members. Two IDs are equal iff all three parts match.
type ShapeID struct {
	// Namespace is the dotted namespace of the shape (e.g. "smithy.example").
	Namespace string
	// Name is the shape name within the namespace.
	Name string
	// Member is the member name, empty for top-level shapes.
	Member string
}

// NewShapeID creates a top-level shape ID.
func NewShapeID(namespace, name string) ShapeID {
	return ShapeID{Namespace: namespace, Name: name}
}

// ParseShapeID parses the text form of a shape ID.
func ParseShapeID(s string) (ShapeID, error) {
	namespace, rest, ok := strings.Cut(s, "#")
	if !ok || namespace == "" || rest == "" {
		return ShapeID{}, fmt.Errorf("invalid shape ID %q: expected \"namespace#Name\"", s)
	}
	name, member, hasMember := strings.Cut(rest, "$")
	if name == "" || (hasMember && member == "") {
		return ShapeID{}, fmt.Errorf("invalid shape ID %q: empty name or member", s)
	}
	return ShapeID{Namespace: namespace, Name: name, Member: member}, nil
}

// String returns the text form of the ID.
func (id ShapeID) String() string {
	if id.Member == "" {
		return id.Namespace + "#" + id.Name
	}
	return id.Namespace + "#" + id.Name + "$" + id.Member
}

// IsMember reports whether the ID identifies a member of a shape.
func (id ShapeID) IsMember() bool { return id.Member != "" }

// WithMember returns the ID of the named member of this shape.
func (id ShapeID) WithMember(member string) ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name, Member: member}
}

// WithoutMember returns the ID of the shape that declares this member.
func (id ShapeID) WithoutMember() ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name}
}

// Compare totally orders IDs by namespace, then name, then member.
// It returns -1, 0, or 1.
func (id ShapeID) Compare(other ShapeID) int {
	if c := strings.Compare(id.Namespace, other.Namespace); c != 0 {
		return c
	}
	if c := strings.Compare(id.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(id.Member, other.Member)
}

// Less reports whether id sorts before other.
func (id ShapeID) Less(other ShapeID) bool { return id.Compare(other) < 0 }
