// Copyright 2026 The zxc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRunCommand is a CLI surface only: executing compiled code is out of
// this front-end's scope (spec.md §1's non-goals), so it reports that and
// exits non-zero rather than growing an interpreter.
func newRunCommand(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "(unsupported) execute a compiled program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("zxc run: execution is outside this front-end's scope; use compile to check a program")
		},
	}
}
