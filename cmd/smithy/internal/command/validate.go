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

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vszabo2/smithy/cmd/smithy/internal/loader"
	"github.com/vszabo2/smithy/cmd/smithy/internal/view"
	"github.com/vszabo2/smithy/pkg/validation"
	"github.com/vszabo2/smithy/pkg/validation/validators"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	Path string
}

// NewValidateCommand builds the validate subcommand.
func NewValidateCommand(cli *CLI) *cobra.Command {
	var opts ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a model's structural inheritance",
		Long: Highlight("smithy validate -f <path>") + "\n\n" +
			"Validate the inheritance hierarchy of a model by file or directory.\n" +
			"When targeting a directory, all .json, .yaml, and .yml documents are\n" +
			"assembled into a single model before validation.\n\n" +
			"Examples:\n" +
			"  # Validate a single model document\n" +
			"  smithy validate -f model.json\n\n" +
			"  # Validate all documents in a directory as one model\n" +
			"  smithy validate -f .\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunValidate(cli, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "file", "f", "", "Path to a model document or directory")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// RunValidate loads the model at opts.Path, runs every validator over
// it, and renders the findings. It returns an error when the model has
// error-severity defects so the process exits non-zero.
func RunValidate(cli *CLI, opts ValidateOptions) error {
	m, fileCount, err := loader.LoadModel(opts.Path)
	if err != nil {
		return err
	}

	runner := &validation.Runner{
		Validators: validators.All(),
		Logger:     cli.Logger(),
	}

	result := view.ValidateResult{
		FileCount: fileCount,
		Events:    runner.Run(m),
	}
	cli.RenderValidateResult(result)

	if n := result.ErrorCount(); n > 0 {
		return fmt.Errorf("found %d validation error(s)", n)
	}
	return nil
}
