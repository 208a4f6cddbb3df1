// Copyright 2023 AI Redefined Inc. <dev+cogment@ai-r.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/ryanuber/columnize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cogment/bundleconf/api"
)

// tableDelim separates the columns, values can contain anything printable
const tableDelim = "\x1f"

// definesCmd represents the defines command
var definesCmd = &cobra.Command{
	Use:   "defines",
	Short: "List the define substitutions built from the dotenv file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := readProjectOptions(cmd, rootViper)
		if err != nil {
			return err
		}
		return listDefines(cmd.OutOrStdout(), afero.NewOsFs(), options, ambientEnvironment())
	},
}

func listDefines(w io.Writer, fs afero.Fs, options projectOptions, ambient api.Environment) error {
	resolver, err := newProjectResolver(fs, options)
	if err != nil {
		return err
	}
	config, err := resolver.Resolve(options.override, ambient)
	if err != nil {
		return err
	}

	defines := config.Defines()
	keys := make([]string, 0, len(defines))
	for key := range defines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tableConfig := columnize.DefaultConfig()
	tableConfig.Delim = tableDelim
	output := []string{strings.Join([]string{"KEY", "VALUE"}, tableDelim)}
	for _, key := range keys {
		output = append(output, strings.Join([]string{key, defines[key]}, tableDelim))
	}
	if _, err := fmt.Fprintln(w, columnize.Format(output, tableConfig)); err != nil {
		return err
	}

	dotEnvPath := resolver.DotEnvPath(config.Mode)
	size := "unknown size"
	if info, err := fs.Stat(dotEnvPath); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	_, err = fmt.Fprintf(
		w,
		"%s loaded from %s (%s)\n",
		color.CyanString("%d key(s)", len(keys)),
		dotEnvPath,
		size,
	)
	return err
}
