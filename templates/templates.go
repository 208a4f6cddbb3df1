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

package templates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/cogment/bundleconf/api"
	"github.com/cogment/bundleconf/helper"
)

var log = logrus.WithField("component", "templates")

type requireStatement struct {
	Binding string
	Package string
}

type webpackConfigData struct {
	Version  string
	Config   *api.Configuration
	Requires []requireStatement
}

var funcMap = template.FuncMap{
	"jsValue":     jsLiteral,
	"constructor": pluginConstructor,
	"hasOptions":  func(plugin *api.Plugin) bool { return plugin.Options != nil },
	"loaderRef":   loaderRef,
}

// pluginBinding is the name of the variable the plugin's package is required into
func pluginBinding(plugin *api.Plugin) string {
	if plugin.Export == "" {
		return plugin.Name
	}
	return helper.Camelify(plugin.Package)
}

func pluginConstructor(plugin *api.Plugin) string {
	if plugin.Export == "" {
		return plugin.Name
	}
	return pluginBinding(plugin) + "." + plugin.Export
}

func loaderRef(loader api.Loader) string {
	if loader.Expr != "" {
		return loader.Expr
	}
	return jsString(loader.Loader)
}

// listRequires lists the modules required by the configuration, in order of first use
func listRequires(config *api.Configuration) ([]requireStatement, error) {
	requires := []requireStatement{}
	packageByBinding := map[string]string{}
	add := func(binding string, pkg string) error {
		if existingPkg, ok := packageByBinding[binding]; ok {
			if existingPkg != pkg {
				return fmt.Errorf("%q is bound to both %q and %q", binding, existingPkg, pkg)
			}
			return nil
		}
		packageByBinding[binding] = pkg
		requires = append(requires, requireStatement{Binding: binding, Package: pkg})
		return nil
	}

	for _, plugin := range config.Plugins {
		if err := add(pluginBinding(plugin), plugin.Package); err != nil {
			return nil, err
		}
	}
	for _, rule := range config.Module.Rules {
		for _, loader := range rule.Use {
			if loader.Expr == "" {
				continue
			}
			binding, _, _ := strings.Cut(loader.Expr, ".")
			if err := add(binding, loader.Package); err != nil {
				return nil, err
			}
		}
	}
	return requires, nil
}

// RenderWebpackConfig writes the configuration as a CommonJS webpack configuration module
func RenderWebpackConfig(w io.Writer, config *api.Configuration) error {
	requires, err := listRequires(config)
	if err != nil {
		return err
	}

	t := template.Must(template.New("webpack.config.js").Funcs(funcMap).Parse(WEBPACK_CONFIG_JS))
	return t.Execute(w, webpackConfigData{
		Version:  helper.Version,
		Config:   config,
		Requires: requires,
	})
}

// GenerateWebpackConfig generates the webpack configuration file at the given path
func GenerateWebpackConfig(fs afero.Fs, config *api.Configuration, outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(outputDir, os.ModePerm); err != nil {
		return err
	}

	outputFile, err := fs.Create(outputPath)
	if err != nil {
		return err
	}
	defer outputFile.Close()

	if err = RenderWebpackConfig(outputFile, config); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path": outputPath,
		"mode": config.Mode,
	}).Debug("Webpack configuration generated")
	return nil
}
