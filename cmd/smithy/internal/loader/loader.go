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

// Package loader reads model documents and assembles them into a single
// shape graph. Documents may be JSON or YAML; YAML is a superset of
// JSON, so one decoder handles both.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/vszabo2/smithy/pkg/model"
)

type document struct {
	TraitDefs map[string]traitDef `json:"traitDefs,omitempty"`
	Shapes    map[string]shapeDef `json:"shapes,omitempty"`
}

type traitDef struct {
	Inherited             bool `json:"inherited,omitempty"`
	Reified               bool `json:"reified,omitempty"`
	StructurallyExclusive bool `json:"structurallyExclusive,omitempty"`
}

type shapeDef struct {
	Type    string               `json:"type"`
	IsA     string               `json:"isa,omitempty"`
	Members map[string]memberDef `json:"members,omitempty"`
	Traits  map[string]any       `json:"traits,omitempty"`
}

type memberDef struct {
	Target string         `json:"target"`
	Traits map[string]any `json:"traits,omitempty"`
}

// CollectFiles returns the model document paths under path. A file is
// returned as-is; a directory yields its .json, .yaml, and .yml files
// (non-recursive), sorted.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		if !hasModelExt(path) {
			return nil, fmt.Errorf("file %q must have a .json, .yaml, or .yml extension", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !hasModelExt(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func hasModelExt(name string) bool {
	switch filepath.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadModel loads every model document under path and assembles them
// into one model. Shapes and trait definitions from all documents share
// a single graph; duplicate shape IDs across documents are an error.
func LoadModel(path string) (*model.Model, int, error) {
	files, err := CollectFiles(path)
	if err != nil {
		return nil, 0, err
	}
	if len(files) == 0 {
		return nil, 0, fmt.Errorf("no model documents found in %q", path)
	}

	builder := model.NewBuilder()
	for _, file := range files {
		if err := loadFile(builder, file); err != nil {
			return nil, 0, fmt.Errorf("failed to load %q: %w", file, err)
		}
	}

	m, err := builder.Build()
	if err != nil {
		return nil, 0, err
	}
	return m, len(files), nil
}

func loadFile(builder *model.Builder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return fmt.Errorf("failed to parse model document: %w", err)
	}

	for name, def := range doc.TraitDefs {
		builder.AddTraitDefinition(model.TraitDefinition{
			Name:                  model.AbsoluteTraitName(name),
			Inherited:             def.Inherited,
			Reified:               def.Reified,
			StructurallyExclusive: def.StructurallyExclusive,
		})
	}

	for rawID, def := range doc.Shapes {
		shape, err := convertShape(rawID, def)
		if err != nil {
			return err
		}
		builder.AddShape(shape)
	}
	return nil
}

func convertShape(rawID string, def shapeDef) (*model.Shape, error) {
	id, err := model.ParseShapeID(rawID)
	if err != nil {
		return nil, err
	}

	kind, err := model.ParseKind(def.Type)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", rawID, err)
	}

	shape := &model.Shape{
		ID:     id,
		Kind:   kind,
		Traits: convertTraits(def.Traits),
	}

	if def.IsA != "" {
		parent, err := model.ParseShapeID(def.IsA)
		if err != nil {
			return nil, fmt.Errorf("shape %q: invalid isa reference: %w", rawID, err)
		}
		shape.Parent = &parent
	}

	if len(def.Members) > 0 {
		shape.Members = make(map[string]*model.Member, len(def.Members))
		for name, m := range def.Members {
			target, err := model.ParseShapeID(m.Target)
			if err != nil {
				return nil, fmt.Errorf("shape %q: member %q: invalid target: %w", rawID, name, err)
			}
			shape.Members[name] = &model.Member{
				ID:     id.WithMember(name),
				Target: target,
				Traits: convertTraits(m.Traits),
			}
		}
	}

	return shape, nil
}

func convertTraits(raw map[string]any) map[string]model.Trait {
	if len(raw) == 0 {
		return nil
	}
	traits := make([]model.Trait, 0, len(raw))
	for name, value := range raw {
		traits = append(traits, model.Trait{Name: name, Value: value})
	}
	return model.TraitMap(traits...)
}
