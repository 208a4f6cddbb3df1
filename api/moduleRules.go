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
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a regular expression in its javascript literal form, e.g. `/\.s[ac]ss$/i`
type Pattern struct {
	Source string
	Flags  string
}

func (p Pattern) String() string {
	return fmt.Sprintf("/%s/%s", p.Source, p.Flags)
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p Pattern) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// Regexp compiles the pattern, only the "i" flag is supported
func (p Pattern) Regexp() (*regexp.Regexp, error) {
	prefix := ""
	for _, flag := range p.Flags {
		switch flag {
		case 'i':
			prefix = "(?i)"
		default:
			return nil, fmt.Errorf("unsupported regular expression flag %q in %s", flag, p)
		}
	}
	return regexp.Compile(prefix + p.Source)
}

// Loader is a step of a rule transformation chain.
//
// Expr, when set, is the javascript expression evaluating to the loader, it is exported by Package.
type Loader struct {
	Loader  string  `json:"loader" yaml:"loader"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
	Expr    string  `json:"-" yaml:"-"`
	Package string  `json:"-" yaml:"-"`
}

// Rule maps the modules matching Test to a chain of loaders, applied in order
type Rule struct {
	Name string   `json:"-" yaml:"-"`
	Test Pattern  `json:"test" yaml:"test"`
	Use  []Loader `json:"use" yaml:"use"`
}

// Matches checks if the given filename is handled by the rule
func (r *Rule) Matches(filename string) bool {
	re, err := r.Test.Regexp()
	if err != nil {
		log.WithField("pattern", r.Test.String()).WithError(err).Debug("Invalid rule pattern")
		return false
	}
	return re.MatchString(filename)
}

// LoaderNames lists the loaders of the rule in order
func (r *Rule) LoaderNames() []string {
	names := make([]string, 0, len(r.Use))
	for _, loader := range r.Use {
		names = append(names, loader.Loader)
	}
	return names
}

const (
	ScriptsRuleName = "scripts"
	StylesRuleName  = "styles"
	ImagesRuleName  = "images"
	FontsRuleName   = "fonts"
)

const (
	StyleLoader          = "style-loader"
	MiniCssExtractLoader = "mini-css-extract-plugin/dist/loader"
)

func scriptsRule() *Rule {
	return &Rule{
		Name: ScriptsRuleName,
		Test: Pattern{Source: `\.js?$`},
		Use: []Loader{
			{
				Loader: "babel-loader",
				Options: Options{
					"presets": []string{"@babel/preset-env", "@babel/preset-react"},
					"plugins": []string{"@loadable/babel-plugin"},
				},
			},
		},
	}
}

func stylesRule(mode Mode, settings *ProjectSettings) *Rule {
	var inject Loader
	if mode.IsDevelopment() {
		inject = Loader{Loader: StyleLoader}
	} else {
		inject = Loader{
			Loader:  MiniCssExtractLoader,
			Options: Options{"publicPath": settings.Styles.ExtractPublicPath},
			Expr:    MiniCssExtractPluginName + ".loader",
			Package: "mini-css-extract-plugin",
		}
	}

	includePaths := make([]string, len(settings.Styles.IncludePaths))
	copy(includePaths, settings.Styles.IncludePaths)

	return &Rule{
		Name: StylesRuleName,
		Test: Pattern{Source: `\.s[ac]ss$`, Flags: "i"},
		Use: []Loader{
			inject,
			{Loader: "css-loader"},
			{
				Loader: "postcss-loader",
				Options: Options{
					"plugins": []Require{"autoprefixer"},
				},
			},
			{
				Loader: "sass-loader",
				Options: Options{
					"sourceMap":   true,
					"sassOptions": Options{"includePaths": includePaths},
				},
			},
		},
	}
}

func fileRule(name string, extensions []string, outputPath string) *Rule {
	return &Rule{
		Name: name,
		Test: Pattern{Source: fmt.Sprintf(`\.(%s)$`, strings.Join(extensions, "|"))},
		Use: []Loader{
			{
				Loader:  "file-loader",
				Options: Options{"outputPath": outputPath},
			},
		},
	}
}

func imagesRule(settings *ProjectSettings) *Rule {
	return fileRule(ImagesRuleName, []string{"jpg", "png", "svg"}, settings.Assets.ImagesOutputPath)
}

func fontsRule(settings *ProjectSettings) *Rule {
	return fileRule(FontsRuleName, []string{"ttf", "eot", "woff", "woff2"}, settings.Assets.FontsOutputPath)
}
