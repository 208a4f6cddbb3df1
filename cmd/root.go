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
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cogment/bundleconf/api"
	"github.com/cogment/bundleconf/utils"
	"github.com/cogment/bundleconf/utils/constants"
)

// rootViper represents the configuration shared by all the commands
var rootViper = viper.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "bundleconf",
	Short:         "Resolve the webpack client configuration of a project",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLog(rootViper)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if closeErr := closeLogFile(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootViper.SetDefault(constants.LogLevelKey, logrus.InfoLevel.String())
	_ = rootViper.BindEnv(constants.LogLevelKey, constants.LogLevelEnv)
	rootCmd.PersistentFlags().String(
		constants.LogLevelKey,
		rootViper.GetString(constants.LogLevelKey),
		constants.LogLevelDesc,
	)

	_ = rootViper.BindEnv(constants.LogFileKey, constants.LogFileEnv)
	rootCmd.PersistentFlags().String(
		constants.LogFileKey,
		rootViper.GetString(constants.LogFileKey),
		constants.LogFileDesc,
	)

	_ = rootViper.BindEnv(constants.LogFormatKey, constants.LogFormatEnv)
	rootCmd.PersistentFlags().String(
		constants.LogFormatKey,
		rootViper.GetString(constants.LogFormatKey),
		constants.LogFormatDesc,
	)

	rootViper.SetDefault(constants.RootKey, ".")
	_ = rootViper.BindEnv(constants.RootKey, constants.RootEnv)
	rootCmd.PersistentFlags().String(
		constants.RootKey,
		rootViper.GetString(constants.RootKey),
		constants.RootDesc,
	)

	_ = rootViper.BindEnv(constants.SettingsKey, constants.SettingsEnv)
	rootCmd.PersistentFlags().String(
		constants.SettingsKey,
		rootViper.GetString(constants.SettingsKey),
		constants.SettingsDesc,
	)

	rootCmd.PersistentFlags().StringArray(constants.EnvKey, []string{}, constants.EnvDesc)

	// Don't sort alphabetically, keep insertion order
	rootCmd.PersistentFlags().SortFlags = false

	// Bind "cobra" flags defined in the CLI with viper
	_ = rootViper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(definesCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(versionCmd)
}

// projectOptions are the inputs of the configuration resolution gathered from the command line
type projectOptions struct {
	root         string
	settingsFile string
	override     api.Environment
}

func readProjectOptions(cmd *cobra.Command, cfg *viper.Viper) (projectOptions, error) {
	root, err := homedir.Expand(cfg.GetString(constants.RootKey))
	if err != nil {
		return projectOptions{}, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return projectOptions{}, err
	}

	settingsFile := cfg.GetString(constants.SettingsKey)
	if settingsFile != "" {
		settingsFile, err = homedir.Expand(settingsFile)
		if err != nil {
			return projectOptions{}, err
		}
	}

	assignments, err := cmd.Flags().GetStringArray(constants.EnvKey)
	if err != nil {
		return projectOptions{}, err
	}
	override, err := parseEnvironmentOverride(assignments)
	if err != nil {
		return projectOptions{}, err
	}

	return projectOptions{
		root:         root,
		settingsFile: settingsFile,
		override:     override,
	}, nil
}

func parseEnvironmentOverride(assignments []string) (api.Environment, error) {
	override := api.Environment{}
	for _, assignment := range assignments {
		values, err := utils.ParseStringToString(assignment)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s value: %w", constants.EnvKey, err)
		}
		for key, value := range values {
			override[key] = value
		}
	}
	return override, nil
}
