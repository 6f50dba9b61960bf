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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zx-lang/zxc/pkg/convert"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/progress"
	"github.com/zx-lang/zxc/pkg/registry"
	"github.com/zx-lang/zxc/pkg/reporter"
	"github.com/zx-lang/zxc/pkg/resolve"
)

func newCompileCommand(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <path>",
		Short: "lex, parse, convert, and register a program starting at <path>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(gs, args[0])
		},
	}
}

func runCompile(gs *globalState, path string) error {
	cfg := &resolve.Config{
		StdRoot:     gs.flags.stdRoot,
		ImportPaths: gs.flags.importPaths,
		FS:          gs.fs,
	}
	expanded, err := cfg.ExpandImportPaths()
	if err != nil {
		return err
	}
	cfg.ImportPaths = expanded

	files, err := convert.Convert(path, cfg, &convert.Pools{}, logrusProgress{gs.logger})
	if err != nil {
		reportCompileError(gs, err)
		return fmt.Errorf("compile failed")
	}

	ordered := convert.DependencyOrder(files)
	reg, err := registry.Build(ordered)
	if err != nil {
		reportCompileError(gs, err)
		return fmt.Errorf("compile failed")
	}

	gs.logger.Infof("compiled %d file(s) rooted at %s", len(files), path)
	_ = reg // the registry is this front-end's terminal artifact; later passes consume it
	return nil
}

// reportCompileError runs err through a pkg/reporter.Handler before
// rendering it: spec.md §7's propagation policy treats the core as
// all-or-nothing and leaves multi-diagnostic layering to an external
// collaborator above it, which is exactly the Handler/Reporter split
// pkg/reporter defines. The CLI's ErrorReporter always aborts (cobra only
// has one chance to print one failure per run), but going through Handler
// keeps this driver on the same seam a future IDE/LSP front-end reusing
// pkg/convert would plug multi-error recovery into.
func reportCompileError(gs *globalState, err error) {
	var chain []string
	var d *diag.Diagnostic
	switch e := err.(type) {
	case *convert.CircularImportError:
		d, chain = e.Diagnostic, e.Chain()
	case *diag.Diagnostic:
		d = e
	default:
		gs.logger.Error(err)
		return
	}

	handler := reporter.NewHandler(reporter.NewReporter(
		func(d *diag.Diagnostic) error {
			renderDiagnostic(gs.logger.Out, d, "", gs.flags.noColor)
			if len(chain) > 0 {
				gs.logger.Errorf("import chain: %s", strings.Join(chain, " -> "))
			}
			return d
		},
		func(d *diag.Diagnostic) {
			renderDiagnostic(gs.logger.Out, d, "", gs.flags.noColor)
		},
	))
	_ = handler.HandleError(d)
}

// logrusProgress is a progress.Reporter that logs each file's pipeline
// phases at debug level, the driver-level counterpart to SPEC_FULL.md §4's
// four-hook contract (pkg/progress defines the contract itself; the core
// packages never log).
type logrusProgress struct {
	logger *logrus.Logger
}

func (r logrusProgress) Post(name string, steps int, nestedDepth int) progress.Task {
	r.logger.Debugf("%sstart %s (%d steps)", strings.Repeat("  ", nestedDepth), name, steps)
	return logrusTask{logger: r.logger, name: name}
}

type logrusTask struct {
	logger *logrus.Logger
	name   string
}

func (t logrusTask) Advance() {
	t.logger.Debugf("  %s: step complete", t.name)
}

func (t logrusTask) Complete(recomputeTime bool) {
	t.logger.Debugf("%s: done (recompute=%v)", t.name, recomputeTime)
}

func (t logrusTask) Fail(reason string) {
	t.logger.Debugf("%s: failed: %s", t.name, reason)
}
