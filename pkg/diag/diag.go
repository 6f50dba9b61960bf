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

// Package diag defines the structured diagnostic record produced by every
// phase of the front-end. Rendering a Diagnostic to a human-readable,
// ANSI-colored source excerpt is the job of an external collaborator (see
// cmd/zxc/render.go); this package only defines the record and the closed
// set of error kinds the front-end can report.
package diag

// Phase identifies which pipeline stage produced a Diagnostic.
type Phase string

const (
	PhaseLexer     Phase = "lexer"
	PhaseParser    Phase = "parser"
	PhaseConverter Phase = "converter"
	PhaseRegistry  Phase = "registry"
	PhaseArena     Phase = "arena"
)

// Kind is the closed taxonomy of error kinds the front-end can report.
// Several kinds (e.g. future semantic-analysis errors) are intentionally
// absent: they belong to later passes not implemented by this front-end.
type Kind string

const (
	KindUnknownToken    Kind = "UnknownToken"
	KindUnclosedString  Kind = "UnclosedString"
	KindUnclosedComment Kind = "UnclosedComment"
	KindUnexpectedToken Kind = "UnexpectedToken"
	KindIllegalImport   Kind = "IllegalImport"
	KindCircularImport  Kind = "CircularImport"
	KindSymbolNotFound  Kind = "SymbolNotFound"
	KindSymbolMismatch  Kind = "SymbolMismatch"
	KindOutOfMemory     Kind = "OutOfMemory"
)

// Diagnostic is a structured error or warning record with a source
// location. It implements error so it can be returned and wrapped directly.
type Diagnostic struct {
	Phase   Phase
	Kind    Kind
	Line    int
	Column  int
	Message string
}

// New builds a Diagnostic.
func New(phase Phase, kind Kind, line, column int, message string) *Diagnostic {
	return &Diagnostic{Phase: phase, Kind: kind, Line: line, Column: column, Message: message}
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// Position returns the 1-based line/column the diagnostic points at, for
// callers that want to format their own excerpt without depending on this
// package's Error() text.
func (d *Diagnostic) Position() (line, column int) {
	return d.Line, d.Column
}
