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
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/vszabo2/smithy/cmd/smithy/internal/view"
)

var debugFlag bool

// NewRootCommand builds the smithy root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smithy",
		Short: "smithy validates interface definition models",
		Long: Highlight("Usage: smithy <subcommand> [args]") + "\n\n" +
			"smithy loads interface definition model documents, resolves their\n" +
			"structural inheritance hierarchies, and reports hierarchy defects.\n",
		Version:       version.GetVersionInfo().GitVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Set log level to debug")
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Disable color output if NO_COLOR is set in the environment.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}

	cli := NewCLI(os.Stdout, view.LogLevelSilent)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debugFlag {
			*cli = *NewCLI(os.Stdout, view.LogLevelDebug)
		}
	}

	rootCmd.AddCommand(NewValidateCommand(cli))

	if err := rootCmd.Execute(); err != nil {
		cli.Println(color.RedString("Error:"), err.Error())
		return 1
	}
	return 0
}
