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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/cogment/bundleconf/api"
	"github.com/cogment/bundleconf/helper"
	"github.com/cogment/bundleconf/utils"
	"github.com/cogment/bundleconf/utils/constants"
)

type outputFormat string

const (
	jsonOutput outputFormat = "json"
	yamlOutput outputFormat = "yaml"
)

var resolveViper = viper.New()

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved webpack configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := readProjectOptions(cmd, rootViper)
		if err != nil {
			return err
		}

		config, err := resolveConfiguration(afero.NewOsFs(), options, ambientEnvironment())
		if err != nil {
			return err
		}

		return writeConfiguration(cmd.OutOrStdout(), config, outputFormat(resolveViper.GetString(constants.FormatKey)))
	},
}

func init() {
	resolveViper.SetDefault(constants.FormatKey, string(jsonOutput))
	_ = resolveViper.BindEnv(constants.FormatKey, constants.FormatEnv)
	resolveCmd.Flags().String(
		constants.FormatKey,
		resolveViper.GetString(constants.FormatKey),
		constants.FormatDesc,
	)

	_ = resolveViper.BindPFlags(resolveCmd.Flags())
}

func ambientEnvironment() api.Environment {
	return api.EnvironmentFromList(os.Environ())
}

func newProjectResolver(fs afero.Fs, options projectOptions) (*api.Resolver, error) {
	settings, err := api.LoadProjectSettings(fs, options.root, options.settingsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to load the project settings: %w", err)
	}
	return api.NewResolver(fs, options.root, settings), nil
}

func resolveConfiguration(fs afero.Fs, options projectOptions, ambient api.Environment) (*api.Configuration, error) {
	log.WithFields(logrus.Fields{
		"root":     options.root,
		"override": utils.FormatStringToString(options.override),
	}).Debug("Resolving configuration")

	resolver, err := newProjectResolver(fs, options)
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(options.override, ambient)
}

func writeConfiguration(w io.Writer, config *api.Configuration, format outputFormat) error {
	var content string
	switch format {
	case jsonOutput:
		jsonContent, err := helper.PrettyPrint(config)
		if err != nil {
			return err
		}
		content = jsonContent
	case yamlOutput:
		yamlContent, err := yaml.Marshal(config)
		if err != nil {
			return err
		}
		content = string(yamlContent)
	default:
		return fmt.Errorf("invalid output format %q expecting one of %v", format, []outputFormat{jsonOutput, yamlOutput})
	}

	_, err := io.WriteString(w, content)
	return err
}
