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
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cogment/bundleconf/api"
	"github.com/cogment/bundleconf/templates"
	"github.com/cogment/bundleconf/utils/constants"
)

const defaultWebpackConfigFilename = "webpack.client.js"

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the resolved configuration as a webpack configuration module",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := readProjectOptions(cmd, rootViper)
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString(constants.OutKey)
		if err != nil {
			return err
		}

		outputPath, config, err := renderWebpackConfig(afero.NewOsFs(), options, ambientEnvironment(), out)
		if err != nil {
			return err
		}

		_, err = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s configuration written to %s\n", config.Mode, outputPath)
		return err
	},
}

func init() {
	renderCmd.Flags().String(constants.OutKey, "", constants.OutDesc)
}

func renderWebpackConfig(
	fs afero.Fs,
	options projectOptions,
	ambient api.Environment,
	out string,
) (string, *api.Configuration, error) {
	outputPath := filepath.Join(options.root, defaultWebpackConfigFilename)
	if out != "" {
		expanded, err := homedir.Expand(out)
		if err != nil {
			return "", nil, err
		}
		outputPath = expanded
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(options.root, outputPath)
		}
	}

	config, err := resolveConfiguration(fs, options, ambient)
	if err != nil {
		return "", nil, err
	}

	if err := templates.GenerateWebpackConfig(fs, config, outputPath); err != nil {
		return "", nil, err
	}
	return outputPath, config, nil
}
