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

// Options are the options handed to a plugin or a loader
type Options map[string]interface{}

// Require is an option value standing for a module to be loaded by the bundler host,
// e.g. `require('autoprefixer')`
type Require string

const (
	MiniCssExtractPluginName       = "MiniCssExtractPlugin"
	LoadableComponentsPluginName   = "LoadableComponentsPlugin"
	HotModuleReplacementPluginName = "HotModuleReplacementPlugin"
	ReactRefreshPluginName         = "ReactRefreshPlugin"
	HTMLPluginName                 = "HtmlWebpackPlugin"
	HTMLHarddiskPluginName         = "HtmlWebpackHarddiskPlugin"
	DefinePluginName               = "DefinePlugin"
)

// Plugin describes a bundler plugin instance.
//
// When Export is empty, the Package module is the plugin constructor,
// otherwise the constructor is the Export member of the Package module.
type Plugin struct {
	Name    string  `json:"name" yaml:"name"`
	Package string  `json:"package" yaml:"package"`
	Export  string  `json:"export,omitempty" yaml:"export,omitempty"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// PluginList assembles an ordered list of plugins
type PluginList struct {
	plugins []*Plugin
}

// Add appends a plugin, nil plugins are ignored
func (l *PluginList) Add(plugin *Plugin) *PluginList {
	if plugin != nil {
		l.plugins = append(l.plugins, plugin)
	}
	return l
}

// AddIf appends the plugin built by makePlugin only when cond holds
func (l *PluginList) AddIf(cond bool, makePlugin func() *Plugin) *PluginList {
	if cond {
		l.Add(makePlugin())
	}
	return l
}

func (l *PluginList) Len() int {
	return len(l.plugins)
}

// Plugins returns a copy of the assembled list
func (l *PluginList) Plugins() []*Plugin {
	plugins := make([]*Plugin, len(l.plugins))
	copy(plugins, l.plugins)
	return plugins
}

func newMiniCssExtractPlugin(mode Mode) *Plugin {
	filename := "css/[name].[contenthash].css"
	if mode.IsDevelopment() {
		filename = "css/[name].css"
	}
	return &Plugin{
		Name:    MiniCssExtractPluginName,
		Package: "mini-css-extract-plugin",
		Options: Options{
			"filename":      filename,
			"chunkFilename": filename,
		},
	}
}

func newLoadableComponentsPlugin(statsDir string) *Plugin {
	return &Plugin{
		Name:    LoadableComponentsPluginName,
		Package: "@loadable/webpack-plugin",
		Options: Options{
			"writeToDisk": Options{"filename": statsDir},
		},
	}
}

func newHotModuleReplacementPlugin() *Plugin {
	return &Plugin{
		Name:    HotModuleReplacementPluginName,
		Package: "webpack",
		Export:  HotModuleReplacementPluginName,
	}
}

func newReactRefreshPlugin() *Plugin {
	return &Plugin{
		Name:    ReactRefreshPluginName,
		Package: "@pmmmwh/react-refresh-webpack-plugin",
	}
}

func newHTMLPlugin(title string, template string) *Plugin {
	return &Plugin{
		Name:    HTMLPluginName,
		Package: "html-webpack-plugin",
		Options: Options{
			"title":             title,
			"template":          template,
			"alwaysWriteToDisk": true,
		},
	}
}

func newHTMLHarddiskPlugin() *Plugin {
	return &Plugin{
		Name:    HTMLHarddiskPluginName,
		Package: "html-webpack-harddisk-plugin",
	}
}

func newDefinePlugin(defines map[string]string) *Plugin {
	options := make(Options, len(defines))
	for key, value := range defines {
		options[key] = value
	}
	return &Plugin{
		Name:    DefinePluginName,
		Package: "webpack",
		Export:  DefinePluginName,
		Options: options,
	}
}
