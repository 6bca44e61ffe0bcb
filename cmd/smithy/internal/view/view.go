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

// Package view renders command output and carries the CLI logger.
package view

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vszabo2/smithy/pkg/validation"
)

// Stream provides basic output operations wrapping an io.Writer.
type Stream struct {
	Writer io.Writer
}

// NewStream creates a Stream writing to the provided io.Writer.
func NewStream(w io.Writer) *Stream {
	return &Stream{Writer: w}
}

// Println writes arguments to the stream with a newline.
func (s *Stream) Println(args ...any) {
	fmt.Fprintln(s.Writer, args...)
}

// Printf writes formatted output to the stream.
func (s *Stream) Printf(format string, args ...any) {
	fmt.Fprintf(s.Writer, format, args...)
}

// ValidateResult is the outcome of one validation pass.
type ValidateResult struct {
	FileCount int
	Events    []validation.Event
}

// ErrorCount returns the number of error-severity events.
func (r ValidateResult) ErrorCount() int {
	n := 0
	for _, e := range r.Events {
		if e.Severity == validation.SeverityError {
			n++
		}
	}
	return n
}

// RenderValidateResult writes a human-readable validation report.
func (s *Stream) RenderValidateResult(result ValidateResult) {
	for _, e := range result.Events {
		s.Println(severityLabel(e.Severity), e.Shape.String()+":", e.Message)
	}

	if n := result.ErrorCount(); n > 0 {
		s.Println(color.RGB(229, 50, 50).Sprintf("Invalid!"),
			fmt.Sprintf("%d error(s) found in %d file(s).", n, result.FileCount))
		return
	}
	s.Println(color.RGB(50, 108, 229).Sprintf("Valid!"),
		fmt.Sprintf("no errors found in %d file(s).", result.FileCount))
}

func severityLabel(sev validation.Severity) string {
	switch sev {
	case validation.SeverityError:
		return color.RedString(sev.String())
	case validation.SeverityWarning:
		return color.YellowString(sev.String())
	default:
		return sev.String()
	}
}
