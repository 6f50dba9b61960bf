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

// Package progress defines the four-hook contract spec.md §6 delegates to an
// external timed-task collaborator: post/advance/complete/fail, called at
// file boundaries and at each phase transition (read, lex, parse, convert).
// Every Post is balanced by exactly one Complete or Fail.
package progress

// Task is the handle returned by Post for one unit of work (one file's
// pipeline, in the converter's use).
type Task interface {
	// Advance reports that one of the steps passed to Post has finished.
	Advance()
	// Complete reports that all steps finished successfully. recomputeTime
	// asks the reporter to fold this task's duration into its running
	// estimate for remaining work, matching the original's "recompute_time"
	// parameter.
	Complete(recomputeTime bool)
	// Fail reports that the task aborted; reason is a short human-readable
	// cause, not a full diagnostic render.
	Fail(reason string)
}

// Reporter posts new tasks. nestedDepth lets a reporter indent or group
// tasks spawned while another is in flight (e.g. an import discovered while
// converting its importer).
type Reporter interface {
	Post(name string, steps int, nestedDepth int) Task
}

// Noop is a Reporter whose tasks do nothing; it is the default when a caller
// doesn't care about progress output (e.g. most tests).
var Noop Reporter = noopReporter{}

type noopReporter struct{}

func (noopReporter) Post(string, int, int) Task { return noopTask{} }

type noopTask struct{}

func (noopTask) Advance()      {}
func (noopTask) Complete(bool) {}
func (noopTask) Fail(string)   {}
