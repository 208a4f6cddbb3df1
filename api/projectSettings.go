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

package api

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// ProjectSettingsFilename is the name of the optional settings file at the root of a project
const ProjectSettingsFilename = "bundleconf.yaml"

const defaultProjectSettingsYaml = `
title: Matoon
template: ./template.html
entry: src/app.js
target: web
public_path: /static/
output_dir: dist/public
loadable_stats_dir: ./dist
dotenv:
  development: .env.dev
  production: .env
aliases:
  assets: src/assets
  app: src/app
  features: src/features
  pages: src/pages
main_files:
  - index
dev_server:
  content_base: ./dist/public
  port: 3000
  history_api_fallback: true
  compress: true
  hot: true
styles:
  include_paths:
    - src/assets
  extract_public_path: ../
assets:
  images_output_path: ./images
  fonts_output_path: ./fonts
`

// ProjectSettings describes the project specific values of the bundler configuration, as loaded from a
// `bundleconf.yaml` file.
//
// Relative paths are relative to the project root.
type ProjectSettings struct {
	Title            string
	Template         string
	Entry            string
	Target           string
	PublicPath       string `yaml:"public_path"`
	OutputDir        string `yaml:"output_dir"`
	LoadableStatsDir string `yaml:"loadable_stats_dir"`
	DotEnv           DotEnvSettings
	Aliases          map[string]string
	MainFiles        []string          `yaml:"main_files"`
	DevServer        DevServerSettings `yaml:"dev_server"`
	Styles           StylesSettings
	Assets           AssetsSettings
}

// DotEnvSettings are the dotenv file paths used in each mode
type DotEnvSettings struct {
	Development string
	Production  string
}

// DevServerSettings configures the development server.
//
// Flags are pointers so that an explicit `false` survives the merge with the defaults.
type DevServerSettings struct {
	ContentBase        string `yaml:"content_base"`
	Port               int
	HistoryAPIFallback *bool `yaml:"history_api_fallback"`
	Compress           *bool
	Hot                *bool
}

type StylesSettings struct {
	IncludePaths      []string `yaml:"include_paths"`
	ExtractPublicPath string   `yaml:"extract_public_path"`
}

type AssetsSettings struct {
	ImagesOutputPath string `yaml:"images_output_path"`
	FontsOutputPath  string `yaml:"fonts_output_path"`
}

// DotEnvPath returns the dotenv file used in the given mode
func (s *ProjectSettings) DotEnvPath(mode Mode) string {
	if mode.IsDevelopment() {
		return s.DotEnv.Development
	}
	return s.DotEnv.Production
}

func createProjectSettingsFromYamlContent(yamlContent []byte) (*ProjectSettings, error) {
	settings := ProjectSettings{}
	err := yaml.Unmarshal(yamlContent, &settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// CreateDefaultProjectSettings creates the default project settings
func CreateDefaultProjectSettings() *ProjectSettings {
	defaultSettings, err := createProjectSettingsFromYamlContent([]byte(defaultProjectSettingsYaml))
	if err != nil {
		// The defaults are part of the binary, if they can't be parsed it's a huge problem
		panic(err)
	}
	return defaultSettings
}

// ExtendDefaultProjectSettings extends the default project settings with the given settings
//
// the given settings are left untouched.
func ExtendDefaultProjectSettings(settings *ProjectSettings) (*ProjectSettings, error) {
	defaultSettings := CreateDefaultProjectSettings()
	extendedSettings := ProjectSettings{}
	err := copier.CopyWithOption(&extendedSettings, settings, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, err
	}
	err = mergo.Merge(&extendedSettings, defaultSettings, mergo.WithoutDereference)
	if err != nil {
		return nil, err
	}
	return &extendedSettings, nil
}

// CreateProjectSettingsFromYaml creates a new instance of ProjectSettings from a given `bundleconf.yaml` file
func CreateProjectSettingsFromYaml(fs afero.Fs, filename string) (*ProjectSettings, error) {
	yamlContent, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	loadedSettings, err := createProjectSettingsFromYamlContent(yamlContent)
	if err != nil {
		return nil, fmt.Errorf("invalid project settings file %q: %w", filename, err)
	}
	return ExtendDefaultProjectSettings(loadedSettings)
}

// LoadProjectSettings loads the settings of the project located at root.
//
// When filename is empty, `bundleconf.yaml` is looked up in root and the defaults are used if it doesn't exist.
func LoadProjectSettings(fs afero.Fs, root string, filename string) (*ProjectSettings, error) {
	if filename != "" {
		return CreateProjectSettingsFromYaml(fs, filename)
	}

	filename = filepath.Join(root, ProjectSettingsFilename)
	_, err := fs.Stat(filename)
	if os.IsNotExist(err) {
		log.WithField("path", filename).Debug("No project settings file, using defaults")
		return CreateDefaultProjectSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return CreateProjectSettingsFromYaml(fs, filename)
}
