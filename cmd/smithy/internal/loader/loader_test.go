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

package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vszabo2/smithy/pkg/model"
)

func TestCollectFiles(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr string
	}{
		{
			name: "single file",
			path: filepath.Join("testdata", "weather.json"),
			want: []string{filepath.Join("testdata", "weather.json")},
		},
		{
			name: "directory is sorted and non-recursive",
			path: filepath.Join("testdata", "split"),
			want: []string{
				filepath.Join("testdata", "split", "base.yaml"),
				filepath.Join("testdata", "split", "derived.yaml"),
			},
		},
		{
			name:    "missing path",
			path:    filepath.Join("testdata", "nope.json"),
			wantErr: "failed to access path",
		},
		{
			name:    "unsupported extension",
			path:    filepath.Join("testdata", "loader_test.go"),
			wantErr: "must have a .json, .yaml, or .yml extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectFiles(tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadModelFromJSON(t *testing.T) {
	m, files, err := LoadModel(filepath.Join("testdata", "weather.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, files)

	entity, ok := m.Shape(model.NewShapeID("smithy.example", "Entity"))
	require.True(t, ok)
	assert.Equal(t, model.KindStructure, entity.Kind)
	assert.True(t, entity.HasTrait("smithy.example#audited"))

	city, ok := m.Shape(model.NewShapeID("smithy.example", "City"))
	require.True(t, ok)
	require.NotNil(t, city.Parent)
	assert.Equal(t, entity.ID, *city.Parent)

	name, ok := city.Members["name"]
	require.True(t, ok)
	assert.Equal(t, city.ID.WithMember("name"), name.ID)
	assert.Equal(t, model.NewShapeID("smithy.api", "String"), name.Target)
	// Member trait names are stored fully qualified even when the
	// document spells them with the prelude namespace.
	_, ok = name.Traits["smithy.api#required"]
	assert.True(t, ok)

	def, ok := m.TraitDefinition("error")
	require.True(t, ok)
	assert.True(t, def.Reified)
	assert.False(t, def.Inherited)

	def, ok = m.TraitDefinition("smithy.example#audited")
	require.True(t, ok)
	assert.True(t, def.Inherited)
}

func TestLoadModelMergesDirectory(t *testing.T) {
	m, files, err := LoadModel(filepath.Join("testdata", "split"))
	require.NoError(t, err)
	assert.Equal(t, 2, files)

	bucket, ok := m.Shape(model.NewShapeID("smithy.example", "Bucket"))
	require.True(t, ok)
	require.NotNil(t, bucket.Parent)
	assert.Equal(t, model.NewShapeID("smithy.example", "Resource"), *bucket.Parent)

	def, ok := m.TraitDefinition("smithy.example#exclusiveKey")
	require.True(t, ok)
	assert.True(t, def.StructurallyExclusive)
}

func TestLoadModelRejectsDuplicateShapes(t *testing.T) {
	_, _, err := LoadModel(filepath.Join("testdata", "duplicate"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate shape ID "smithy.example#Thing"`)
}

func TestLoadModelRejectsUnknownKinds(t *testing.T) {
	_, _, err := LoadModel(filepath.Join("testdata", "broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `shape "smithy.example#Gauge"`)
}
