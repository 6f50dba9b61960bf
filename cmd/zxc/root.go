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
	"os"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalState bundles the process-external collaborators a subcommand
// needs, following the teacher's globalState pattern (cmd/root.go): real OS
// access is confined here so tests can substitute an in-memory
// afero.MemMapFs and a buffer-backed logger instead.
type globalState struct {
	fs     afero.Fs
	logger *logrus.Logger
	flags  globalFlags
}

func newGlobalState() *globalState {
	logger := &logrus.Logger{
		Out:       colorable.NewColorable(os.Stderr),
		Formatter: &logrus.TextFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	return &globalState{
		fs:     afero.NewOsFs(),
		logger: logger,
		flags:  defaultFlags(),
	}
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:           "zxc",
		Short:         "front-end for the Language: lexer, parser, and file-code converter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if gs.flags.noColor {
				gs.logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
			}
			return nil
		},
	}
	bindPersistentFlags(root.PersistentFlags(), &gs.flags)

	root.AddCommand(newCompileCommand(gs), newRunCommand(gs))
	return root
}

// Execute runs the CLI and returns the process exit code spec.md §6
// describes: 0 on success, 1 on any error (a reported diagnostic or a CLI
// usage error a cobra.Command detects on its own).
func Execute() int {
	gs := newGlobalState()
	root := newRootCommand(gs)
	if err := root.Execute(); err != nil {
		gs.logger.Error(err)
		return 1
	}
	return 0
}
