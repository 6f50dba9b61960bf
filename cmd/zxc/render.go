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
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zx-lang/zxc/pkg/diag"
)

// renderDiagnostic prints d against the source it was found in, with a
// caret under the offending column — the "external diagnostics-rendering
// collaborator" spec.md §6 and SPEC_FULL.md §2 assign to the driver rather
// than the core packages. source may be empty (e.g. a converter error
// reported before any file was fully read); the excerpt is skipped then.
func renderDiagnostic(w io.Writer, d *diag.Diagnostic, source string, noColor bool) {
	phaseLabel := color.New(color.FgYellow)
	errLabel := color.New(color.FgRed, color.Bold)
	pointer := color.New(color.FgCyan)
	if noColor {
		color.NoColor = true
	}

	fmt.Fprintf(w, "%s %s: %s\n",
		errLabel.Sprint("error"), phaseLabel.Sprintf("[%s/%s]", d.Phase, d.Kind), d.Message)
	fmt.Fprintf(w, "  --> line %d, column %d\n", d.Line, d.Column)

	line, ok := sourceLine(source, d.Line)
	if !ok {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)
	caretCol := d.Column - 1
	if caretCol < 0 {
		caretCol = 0
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", caretCol), pointer.Sprint("^"))
}

// sourceLine returns the 1-based lineNo of source, or ok=false if source is
// empty or lineNo is out of range.
func sourceLine(source string, lineNo int) (string, bool) {
	if source == "" || lineNo < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if lineNo > len(lines) {
		return "", false
	}
	return lines[lineNo-1], true
}
