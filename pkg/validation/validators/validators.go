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

import "github.com/vszabo2/smithy/pkg/validation"

// All returns the full set of structural-inheritance validators.
func All() []validation.Validator {
	return []validation.Validator{
		HierarchyValidator{},
		ExclusiveMemberTraitValidator{},
		ReifiedTraitValidator{},
	}
}
