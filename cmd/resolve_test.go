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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/cogment/bundleconf/api"
)

func createTestProject(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.env", []byte("API_URL=https://api.example.com\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/project/.env.dev", []byte("API_URL=http://x\nDEBUG=1\n"), 0644))
	return fs
}

func TestParseEnvironmentOverride(t *testing.T) {
	t.Parallel()
	override, err := parseEnvironmentOverride([]string{"NODE_ENV=production", "A=1,B=2", "NODE_ENV=dev"})
	require.NoError(t, err)
	assert.Equal(t, api.Environment{"NODE_ENV": "dev", "A": "1", "B": "2"}, override)

	override, err = parseEnvironmentOverride(nil)
	require.NoError(t, err)
	assert.Empty(t, override)

	_, err = parseEnvironmentOverride([]string{"NODE_ENV"})
	assert.Error(t, err)
}

func TestResolveConfiguration(t *testing.T) {
	t.Parallel()
	fs := createTestProject(t)

	config, err := resolveConfiguration(fs, projectOptions{root: "/project"}, api.Environment{"NODE_ENV": "dev"})
	require.NoError(t, err)
	assert.Equal(t, api.ModeDevelopment, config.Mode)

	config, err = resolveConfiguration(
		fs,
		projectOptions{root: "/project", override: api.Environment{"NODE_ENV": "production"}},
		api.Environment{},
	)
	require.NoError(t, err)
	assert.Equal(t, api.ModeProduction, config.Mode)
}

func TestResolveConfigurationMissingDotEnv(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	config, err := resolveConfiguration(fs, projectOptions{root: "/project"}, nil)
	assert.Nil(t, config)
	var loadErr *api.ConfigurationLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestResolveConfigurationInvalidSettings(t *testing.T) {
	t.Parallel()
	fs := createTestProject(t)

	_, err := resolveConfiguration(fs, projectOptions{root: "/project", settingsFile: "/missing.yaml"}, nil)
	assert.Error(t, err)
}

func TestWriteConfigurationJson(t *testing.T) {
	t.Parallel()
	config, err := resolveConfiguration(createTestProject(t), projectOptions{root: "/project"}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeConfiguration(&out, config, jsonOutput))
	content := out.String()
	assert.Contains(t, content, `"mode": "production"`)
	assert.Contains(t, content, `"test": "/\\.js?$/"`)
	assert.Contains(t, content, `"process.env.API_URL": "\"https://api.example.com\""`)
	assert.NotContains(t, content, "Expr")
}

func TestWriteConfigurationYaml(t *testing.T) {
	t.Parallel()
	config, err := resolveConfiguration(createTestProject(t), projectOptions{root: "/project"}, api.Environment{"NODE_ENV": "dev"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeConfiguration(&out, config, yamlOutput))

	decoded := struct {
		Mode    string
		Devtool string
		Plugins []struct {
			Name string
		}
	}{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "development", decoded.Mode)
	assert.Equal(t, "cheap-module-source-map", decoded.Devtool)
	assert.Len(t, decoded.Plugins, 6)
}

func TestWriteConfigurationInvalidFormat(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	assert.Error(t, writeConfiguration(&out, &api.Configuration{}, outputFormat("toml")))
	assert.Empty(t, out.String())
}

func TestListDefines(t *testing.T) {
	t.Parallel()
	fs := createTestProject(t)

	var out bytes.Buffer
	require.NoError(t, listDefines(&out, fs, projectOptions{root: "/project"}, api.Environment{"NODE_ENV": "dev"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Regexp(t, `^KEY\s+VALUE$`, lines[0])
	assert.Regexp(t, `^process\.env\.API_URL\s+"http://x"$`, lines[1])
	assert.Regexp(t, `^process\.env\.DEBUG\s+"1"$`, lines[2])
	assert.Contains(t, lines[3], "2 key(s)")
	assert.Contains(t, lines[3], "/project/.env.dev")
	assert.Contains(t, lines[3], "25 B")
}

func TestRenderWebpackConfig(t *testing.T) {
	t.Parallel()
	fs := createTestProject(t)

	outputPath, config, err := renderWebpackConfig(fs, projectOptions{root: "/project"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "/project/webpack.client.js", outputPath)
	assert.Equal(t, api.ModeProduction, config.Mode)
	exists, err := afero.Exists(fs, outputPath)
	require.NoError(t, err)
	assert.True(t, exists)

	outputPath, _, err = renderWebpackConfig(fs, projectOptions{root: "/project"}, nil, "build/webpack.js")
	require.NoError(t, err)
	assert.Equal(t, "/project/build/webpack.js", outputPath)

	outputPath, _, err = renderWebpackConfig(fs, projectOptions{root: "/project"}, nil, "/tmp/webpack.js")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/webpack.js", outputPath)
}

func TestRenderWebpackConfigMissingDotEnv(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	_, _, err := renderWebpackConfig(fs, projectOptions{root: "/project"}, nil, "")
	assert.Error(t, err)
	exists, _ := afero.Exists(fs, "/project/webpack.client.js")
	assert.False(t, exists)
}
