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

import "fmt"

// Kind identifies the kind of a shape. Only structure shapes participate
// in inheritance: they are the only kind that may declare a parent and
// members.
type Kind int

const (
	// KindStructure is an aggregate shape with named members.
	KindStructure Kind = iota
	// KindMember is a named slot declared on a structure.
	KindMember
	// KindString is a string simple shape.
	KindString
	// KindInteger is an integer simple shape.
	KindInteger
	// KindBoolean is a boolean simple shape.
	KindBoolean
	// KindList is a homogeneous list shape.
	KindList
	// KindMap is a string-keyed map shape.
	KindMap
)

// String returns the lower-case kind name used in validation messages
// and model documents.
func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindMember:
		return "member"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a kind name from a model document to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "structure":
		return KindStructure, nil
	case "member":
		return KindMember, nil
	case "string":
		return KindString, nil
	case "integer":
		return KindInteger, nil
	case "boolean":
		return KindBoolean, nil
	case "list":
		return KindList, nil
	case "map":
		return KindMap, nil
	default:
		return 0, fmt.Errorf("unknown shape kind %q", s)
	}
}
