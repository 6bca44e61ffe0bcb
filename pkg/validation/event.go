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
	"fmt"
	"sort"
	"strings"

	"github.com/vszabo2/smithy/pkg/model"
)

// Severity classifies a validation event.
type Severity int

const (
	// SeverityError marks a model defect that must be fixed.
	SeverityError Severity = iota
	// SeverityWarning marks a finding that does not invalidate the model.
	SeverityWarning
	// SeverityNote marks an informational finding.
	SeverityNote
)

// String returns the upper-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityNote:
		return "NOTE"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Defect identifiers attached to events.
const (
	CircularInheritance                = "CircularInheritance"
	NonStructuralParent                = "NonStructuralParent"
	FinalParentExtension               = "FinalParentExtension"
	MemberNameConflict                 = "MemberNameConflict"
	ExclusiveAnnotationMultipleMembers = "ExclusiveAnnotationMultipleMembers"
	ReifiedAnnotationMissingOnChild    = "ReifiedAnnotationMissingOnChild"
	ReifiedAnnotationMissingOnParent   = "ReifiedAnnotationMissingOnParent"
	ReifiedAnnotationValueMismatch     = "ReifiedAnnotationValueMismatch"
)

// Event is a single structured validation finding. Events are reportable
// findings, never faults: a validation pass always scans the whole model
// regardless of what it found.
type Event struct {
	// ID is the defect identifier (one of the constants above).
	ID string
	// Severity classifies the finding.
	Severity Severity
	// Shape is the shape the finding is most actionable against: the
	// child in parent/child checks, the record itself in per-record
	// checks.
	Shape model.ShapeID
	// Message is the human-readable description. The identifiers and
	// values named in it are part of the observable contract.
	Message string
}

// String renders the event in "SEVERITY: shape: (ID) message" form.
func (e Event) String() string {
	return fmt.Sprintf("%s: %s: (%s) %s", e.Severity, e.Shape, e.ID, e.Message)
}

// Errorf builds an error-severity event against the given shape.
func Errorf(id string, shape model.ShapeID, format string, args ...any) Event {
	return Event{
		ID:       id,
		Severity: SeverityError,
		Shape:    shape,
		Message:  fmt.Sprintf(format, args...),
	}
}

// SortEvents orders events deterministically: by shape ID, then defect
// ID, then message.
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if c := events[i].Shape.Compare(events[j].Shape); c != 0 {
			return c < 0
		}
		if events[i].ID != events[j].ID {
			return events[i].ID < events[j].ID
		}
		return events[i].Message < events[j].Message
	})
}

// TickedList joins items as `a`, `b`, `c` for inclusion in messages.
func TickedList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "`" + strings.Join(items, "`, `") + "`"
}
