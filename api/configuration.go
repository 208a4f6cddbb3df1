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

// Configuration is the bundler configuration, as consumed by webpack.
//
// It is built by a Resolver and is not modified afterwards.
type Configuration struct {
	Mode      Mode      `json:"mode" yaml:"mode"`
	Devtool   string    `json:"devtool" yaml:"devtool"`
	DevServer DevServer `json:"devServer" yaml:"devServer"`
	Target    string    `json:"target" yaml:"target"`
	Entry     string    `json:"entry" yaml:"entry"`
	Output    Output    `json:"output" yaml:"output"`
	Resolve   Resolve   `json:"resolve" yaml:"resolve"`
	Plugins   []*Plugin `json:"plugins" yaml:"plugins"`
	Module    Module    `json:"module" yaml:"module"`
}

// DevServer holds the development server options
type DevServer struct {
	ContentBase        string `json:"contentBase" yaml:"contentBase"`
	PublicPath         string `json:"publicPath" yaml:"publicPath"`
	HistoryAPIFallback bool   `json:"historyApiFallback" yaml:"historyApiFallback"`
	Compress           bool   `json:"compress" yaml:"compress"`
	Hot                bool   `json:"hot" yaml:"hot"`
	Port               int    `json:"port" yaml:"port"`
}

// Output holds the emitted files options
type Output struct {
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
	Path          string `json:"path" yaml:"path"`
	PublicPath    string `json:"publicPath" yaml:"publicPath"`
}

// Resolve holds the module resolution options
type Resolve struct {
	Alias     map[string]string `json:"alias" yaml:"alias"`
	MainFiles []string          `json:"mainFiles" yaml:"mainFiles"`
}

// Module holds the module transformation rules
type Module struct {
	Rules []*Rule `json:"rules" yaml:"rules"`
}

// Plugin retrieves the first plugin having the given name
func (c *Configuration) Plugin(name string) (*Plugin, bool) {
	for _, plugin := range c.Plugins {
		if plugin.Name == name {
			return plugin, true
		}
	}
	return nil, false
}

// PluginNames lists the names of the plugins in order
func (c *Configuration) PluginNames() []string {
	names := make([]string, 0, len(c.Plugins))
	for _, plugin := range c.Plugins {
		names = append(names, plugin.Name)
	}
	return names
}

// RuleFor retrieves the first rule handling the given filename
func (c *Configuration) RuleFor(filename string) (*Rule, bool) {
	for _, rule := range c.Module.Rules {
		if rule.Matches(filename) {
			return rule, true
		}
	}
	return nil, false
}

// Defines retrieves the substitutions handed to the define plugin
func (c *Configuration) Defines() map[string]string {
	defines := map[string]string{}
	plugin, ok := c.Plugin(DefinePluginName)
	if !ok {
		return defines
	}
	for key, value := range plugin.Options {
		if str, ok := value.(string); ok {
			defines[key] = str
		}
	}
	return defines
}
