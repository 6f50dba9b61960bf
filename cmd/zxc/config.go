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

import "github.com/spf13/pflag"

// globalFlags holds the persistent flags every subcommand shares, mirroring
// the teacher's globalFlags/globalState split (cmd/root.go): flags are
// plain fields bound directly by pflag, never read back out of the
// cobra.Command.
type globalFlags struct {
	stdRoot      string
	importPaths  []string
	noColor      bool
	optimization int
}

func defaultFlags() globalFlags {
	return globalFlags{optimization: 3}
}

func bindPersistentFlags(flags *pflag.FlagSet, g *globalFlags) {
	flags.StringVar(&g.stdRoot, "std-root", g.stdRoot,
		"standard library root that @std/ imports resolve against")
	flags.StringSliceVarP(&g.importPaths, "import-path", "I", g.importPaths,
		"additional import directory (repeatable, glob patterns allowed; expanded but not consulted when resolving imports)")
	flags.BoolVar(&g.noColor, "no-color", g.noColor, "disable colored diagnostic output")
	flags.IntVarP(&g.optimization, "optimization", "O", g.optimization,
		"optimization level passed through to later pipeline stages (accepted but unused by this front-end)")
}
