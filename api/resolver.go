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
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var log = logrus.WithField("component", "resolver")

const (
	developmentDevtool = "cheap-module-source-map"
	productionDevtool  = "hidden-source-map"

	developmentScriptFilename = "js/[name].js"
	productionScriptFilename  = "js/[name].[hash].js"
)

// Resolver builds the bundler configuration of a project
type Resolver struct {
	fs       afero.Fs
	root     string
	settings *ProjectSettings
}

// NewResolver creates a resolver for the project located at root, nil settings means the defaults
func NewResolver(fs afero.Fs, root string, settings *ProjectSettings) *Resolver {
	if settings == nil {
		settings = CreateDefaultProjectSettings()
	}
	return &Resolver{
		fs:       fs,
		root:     root,
		settings: settings,
	}
}

// DotEnvPath returns the path of the dotenv file read in the given mode
func (r *Resolver) DotEnvPath(mode Mode) string {
	return r.projectPath(r.settings.DotEnvPath(mode))
}

func (r *Resolver) projectPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.root, path)
}

// Resolve builds the configuration for the given environment.
//
// override is the environment explicitly provided by the caller, ambient is the process environment.
// A *ConfigurationLoadError is returned when the dotenv file of the selected mode can't be loaded.
func (r *Resolver) Resolve(override Environment, ambient Environment) (*Configuration, error) {
	mode := DetectMode(override, ambient)
	log.WithFields(logrus.Fields{
		"mode":     mode,
		"node_env": ResolveValue(override, ambient, NodeEnvKey),
	}).Infof("Running in %s mode", mode)

	values, err := LoadDotEnv(r.fs, r.DotEnvPath(mode))
	if err != nil {
		return nil, err
	}

	config := &Configuration{
		Mode:      mode,
		Devtool:   productionDevtool,
		DevServer: r.devServer(),
		Target:    r.settings.Target,
		Entry:     r.projectPath(r.settings.Entry),
		Output: Output{
			Filename:      productionScriptFilename,
			ChunkFilename: productionScriptFilename,
			Path:          r.projectPath(r.settings.OutputDir),
			PublicPath:    r.settings.PublicPath,
		},
		Resolve: r.resolve(),
		Plugins: r.plugins(mode, ProjectDefines(values)),
		Module: Module{
			Rules: []*Rule{
				scriptsRule(),
				stylesRule(mode, r.settings),
				imagesRule(r.settings),
				fontsRule(r.settings),
			},
		},
	}

	if mode.IsDevelopment() {
		config.Devtool = developmentDevtool
		config.Output.Filename = developmentScriptFilename
		config.Output.ChunkFilename = developmentScriptFilename
	}

	return config, nil
}

func (r *Resolver) devServer() DevServer {
	settings := r.settings.DevServer
	return DevServer{
		ContentBase:        settings.ContentBase,
		PublicPath:         r.settings.PublicPath,
		HistoryAPIFallback: isEnabled(settings.HistoryAPIFallback),
		Compress:           isEnabled(settings.Compress),
		Hot:                isEnabled(settings.Hot),
		Port:               settings.Port,
	}
}

func (r *Resolver) resolve() Resolve {
	alias := make(map[string]string, len(r.settings.Aliases))
	for name, path := range r.settings.Aliases {
		alias[name] = r.projectPath(path)
	}
	mainFiles := make([]string, len(r.settings.MainFiles))
	copy(mainFiles, r.settings.MainFiles)
	return Resolve{
		Alias:     alias,
		MainFiles: mainFiles,
	}
}

// plugins assembles the plugins, order matters as the bundler applies them in sequence
func (r *Resolver) plugins(mode Mode, defines map[string]string) []*Plugin {
	dev := mode.IsDevelopment()
	list := &PluginList{}
	list.AddIf(!dev, func() *Plugin { return newMiniCssExtractPlugin(mode) }).
		Add(newLoadableComponentsPlugin(r.settings.LoadableStatsDir)).
		AddIf(dev, newHotModuleReplacementPlugin).
		AddIf(dev, newReactRefreshPlugin).
		Add(newHTMLPlugin(r.settings.Title, r.settings.Template)).
		Add(newHTMLHarddiskPlugin()).
		Add(newDefinePlugin(defines))
	return list.Plugins()
}

func isEnabled(flag *bool) bool {
	return flag != nil && *flag
}
