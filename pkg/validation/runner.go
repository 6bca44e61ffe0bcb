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

// Package validation defines the structured validation event model and
// runs validators over an assembled shape graph.
package validation

import (
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/vszabo2/smithy/pkg/knowledge"
	"github.com/vszabo2/smithy/pkg/model"
)

// Validator detects one family of model defects. Validators only read
// the model and the shared structure index, so they can run in parallel.
type Validator interface {
	// Name identifies the validator in logs.
	Name() string
	// Validate scans the whole model and returns every defect found.
	Validate(m *model.Model, index *knowledge.StructureIndex) []Event
}

// Runner executes a set of validators over one model snapshot.
type Runner struct {
	// Validators to run. Each runs in its own goroutine.
	Validators []Validator
	// Logger receives per-validator progress at V(1). The zero value
	// discards all output.
	Logger logr.Logger
}

// Run builds the structure index once, fans the validators out over it,
// and returns all events in deterministic order. A run never fails:
// every defect is a reportable finding.
func (r *Runner) Run(m *model.Model) []Event {
	index := knowledge.NewStructureIndex(m)
	results := make([][]Event, len(r.Validators))

	var g errgroup.Group
	for i, v := range r.Validators {
		g.Go(func() error {
			results[i] = v.Validate(m, index)
			r.Logger.V(1).Info("validator finished", "validator", v.Name(), "events", len(results[i]))
			return nil
		})
	}
	_ = g.Wait()

	var events []Event
	for _, res := range results {
		events = append(events, res...)
	}
	SortEvents(events)
	return events
}
