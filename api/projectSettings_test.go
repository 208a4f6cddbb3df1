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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefaultProjectSettings(t *testing.T) {
	t.Parallel()
	settings := CreateDefaultProjectSettings()

	assert.Equal(t, "Matoon", settings.Title)
	assert.Equal(t, "./template.html", settings.Template)
	assert.Equal(t, "src/app.js", settings.Entry)
	assert.Equal(t, ".env.dev", settings.DotEnvPath(ModeDevelopment))
	assert.Equal(t, ".env", settings.DotEnvPath(ModeProduction))
	assert.Equal(t, 3000, settings.DevServer.Port)
	require.NotNil(t, settings.DevServer.Hot)
	assert.True(t, *settings.DevServer.Hot)
	assert.Len(t, settings.Aliases, 4)
	assert.Equal(t, []string{"src/assets"}, settings.Styles.IncludePaths)
}

func TestExtendDefaultProjectSettings(t *testing.T) {
	t.Parallel()
	compress := false
	settings := &ProjectSettings{
		Title:   "Other",
		Aliases: map[string]string{"components": "src/components"},
		DevServer: DevServerSettings{
			Port:     8080,
			Compress: &compress,
		},
	}

	extended, err := ExtendDefaultProjectSettings(settings)
	require.NoError(t, err)

	assert.Equal(t, "Other", extended.Title)
	assert.Equal(t, "./template.html", extended.Template)
	assert.Equal(t, 8080, extended.DevServer.Port)
	assert.Equal(t, "./dist/public", extended.DevServer.ContentBase)
	require.NotNil(t, extended.DevServer.Compress)
	assert.False(t, *extended.DevServer.Compress)
	require.NotNil(t, extended.DevServer.Hot)
	assert.True(t, *extended.DevServer.Hot)
	assert.Equal(t, map[string]string{
		"components": "src/components",
		"assets":     "src/assets",
		"app":        "src/app",
		"features":   "src/features",
		"pages":      "src/pages",
	}, extended.Aliases)

	// The given settings are left untouched
	assert.Equal(t, map[string]string{"components": "src/components"}, settings.Aliases)
	assert.Empty(t, settings.Template)
}

func TestLoadProjectSettingsDefaults(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	settings, err := LoadProjectSettings(fs, "/project", "")
	require.NoError(t, err)
	assert.Equal(t, CreateDefaultProjectSettings(), settings)
}

func TestLoadProjectSettingsFromProjectRoot(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	content := `
title: My App
dotenv:
  development: config/dev.env
dev_server:
  port: 4000
  hot: false
`
	require.NoError(t, afero.WriteFile(fs, "/project/bundleconf.yaml", []byte(content), 0644))

	settings, err := LoadProjectSettings(fs, "/project", "")
	require.NoError(t, err)
	assert.Equal(t, "My App", settings.Title)
	assert.Equal(t, "config/dev.env", settings.DotEnv.Development)
	assert.Equal(t, ".env", settings.DotEnv.Production)
	assert.Equal(t, 4000, settings.DevServer.Port)
	require.NotNil(t, settings.DevServer.Hot)
	assert.False(t, *settings.DevServer.Hot)
}

func TestLoadProjectSettingsExplicitFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	_, err := LoadProjectSettings(fs, "/project", "/elsewhere/settings.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/elsewhere/settings.yaml", []byte("entry: src/index.js\n"), 0644))
	settings, err := LoadProjectSettings(fs, "/project", "/elsewhere/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, "src/index.js", settings.Entry)
}

func TestLoadProjectSettingsInvalid(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/bundleconf.yaml", []byte("title: [unclosed\n"), 0644))

	_, err := LoadProjectSettings(fs, "/project", "")
	assert.Error(t, err)
}

func TestResolveWithSettings(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/config/dev.env", []byte("A=1\n"), 0644))
	hot := false
	settings, err := ExtendDefaultProjectSettings(&ProjectSettings{
		DotEnv:    DotEnvSettings{Development: "config/dev.env"},
		DevServer: DevServerSettings{Hot: &hot},
	})
	require.NoError(t, err)

	config, err := NewResolver(fs, "/project", settings).Resolve(Environment{"NODE_ENV": "dev"}, nil)
	require.NoError(t, err)
	assert.False(t, config.DevServer.Hot)
	assert.True(t, config.DevServer.Compress)
	assert.Equal(t, map[string]string{"process.env.A": `"1"`}, config.Defines())
}
