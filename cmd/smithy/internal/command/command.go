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

// Package command wires the smithy CLI commands.
package command

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/go-logr/logr"

	"github.com/vszabo2/smithy/cmd/smithy/internal/view"
)

// CLI is the shared state propagated from the root command to all
// subcommands.
type CLI struct {
	*view.Stream
	handler slog.Handler
}

// NewCLI creates CLI state writing to w at the given log level.
func NewCLI(w io.Writer, level view.LogLevel) *CLI {
	return &CLI{
		Stream:  view.NewStream(w),
		handler: view.NewLogHandler(w, level),
	}
}

// Logger returns a logr.Logger backed by the CLI's slog handler.
func (c *CLI) Logger() logr.Logger {
	return logr.FromSlogHandler(c.handler)
}

// Highlight applies the CLI accent color to the given format and
// arguments.
func Highlight(format string, a ...any) string {
	return color.RGB(50, 108, 229).Sprintf(format, a...)
}
