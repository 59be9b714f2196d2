// Copyright 2026 The HOCON-Go Authors
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

// Command hocon loads a YAML tree (internal/treebuild's parser stand-in),
// resolves its substitutions, and prints the result. It exists to exercise
// the library the way a real consumer would, not as a HOCON file format
// tool.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hocon-lang/hocon-go"
	"github.com/hocon-lang/hocon-go/internal/core/resolve"
	"github.com/hocon-lang/hocon-go/internal/treebuild"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitArgs    = 2
)

// Options holds the CLI configuration.
type Options struct {
	InputFile       string
	Format          string
	Env             bool
	AllowUnresolved bool
	Debug           bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(ExitArgs)
	}
}

func newRootCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:           "hocon",
		Short:         "Resolve substitutions in a configuration tree",
		Long:          `hocon reads a configuration tree and rewrites every "${path}" / "${?path}" substitution into a concrete value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.InputFile == "" {
				return fmt.Errorf("required flag \"file\" not set")
			}
			if opts.Format != "json" && opts.Format != "yaml" {
				return fmt.Errorf("--format must be \"json\" or \"yaml\", got %q", opts.Format)
			}
			exitCode := runResolve(&opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if exitCode != ExitSuccess {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.InputFile, "file", "f", "", "path to input configuration tree (YAML) (required)")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&opts.Env, "env", false, "fall back to OS environment variables for single-segment lookups")
	cmd.Flags().BoolVar(&opts.AllowUnresolved, "allow-unresolved", false, "keep unresolvable required substitutions as-is instead of failing")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "dump the resolved tree to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runResolve(opts *Options, stdout, stderr io.Writer) int {
	resolve.Debug = opts.Debug

	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to read %s: %v\n", opts.InputFile, err)
		return ExitError
	}

	tree, err := treebuild.Build(data, opts.InputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	resolved, err := hocon.Resolve(tree, hocon.Options{
		UseSystemEnvironment: opts.Env,
		AllowUnresolved:      opts.AllowUnresolved,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	plain, err := toPlain(resolved)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	var out []byte
	switch opts.Format {
	case "yaml":
		out, err = yaml.Marshal(plain)
	default:
		out, err = json.MarshalIndent(plain, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to render output: %v\n", err)
		return ExitError
	}

	fmt.Fprintln(stdout, string(out))
	return ExitSuccess
}
