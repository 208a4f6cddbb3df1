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
	"strings"

	"github.com/fatih/color"
	"github.com/ryanuber/columnize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cogment/bundleconf/api"
)

const noRule = "-"

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match FILE...",
	Short: "Show the module rule handling each of the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := readProjectOptions(cmd, rootViper)
		if err != nil {
			return err
		}
		config, err := resolveConfiguration(afero.NewOsFs(), options, ambientEnvironment())
		if err != nil {
			return err
		}
		return listMatchingRules(cmd.OutOrStdout(), config, args)
	},
}

func listMatchingRules(w io.Writer, config *api.Configuration, filenames []string) error {
	tableConfig := columnize.DefaultConfig()
	tableConfig.Delim = tableDelim
	output := []string{strings.Join([]string{"FILE", "RULE", "LOADERS"}, tableDelim)}
	unmatched := 0
	for _, filename := range filenames {
		rule, ok := config.RuleFor(filename)
		if !ok {
			unmatched++
			output = append(output, strings.Join([]string{filename, noRule, noRule}, tableDelim))
			continue
		}
		output = append(output, strings.Join([]string{filename, rule.Name, strings.Join(rule.LoaderNames(), ",")}, tableDelim))
	}
	if _, err := fmt.Fprintln(w, columnize.Format(output, tableConfig)); err != nil {
		return err
	}

	if unmatched > 0 {
		_, err := fmt.Fprintln(w, color.YellowString("%d file(s) not handled by any rule", unmatched))
		return err
	}
	return nil
}
