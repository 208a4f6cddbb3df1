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
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogment/bundleconf/utils"
	"github.com/cogment/bundleconf/utils/constants"
)

func TestConfigureLog(t *testing.T) {
	defer func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetOutput(os.Stderr)
	}()

	cfg := viper.New()
	cfg.Set(constants.LogLevelKey, "debug")
	assert.NoError(t, configureLog(cfg))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &utils.LoggerFormatter{}, logrus.StandardLogger().Formatter)

	cfg.Set(constants.LogLevelKey, LogLevelOff)
	cfg.Set(constants.LogFormatKey, "json")
	assert.NoError(t, configureLog(cfg))
	assert.Equal(t, logrus.PanicLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
}

func TestConfigureLogFile(t *testing.T) {
	defer func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
		_ = closeLogFile()
		logrus.SetOutput(os.Stderr)
	}()

	dir := t.TempDir()
	cfg := viper.New()
	cfg.Set(constants.LogLevelKey, "info")
	cfg.Set(constants.LogFileKey, dir+"/first.log")
	require.NoError(t, configureLog(cfg))
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	first := logFile
	require.NotNil(t, first)
	logrus.Info("to the first file")

	// Reconfiguring closes the previous file
	cfg.Set(constants.LogFileKey, dir+"/second.log")
	require.NoError(t, configureLog(cfg))
	_, err := first.WriteString("closed")
	assert.Error(t, err)
	logrus.Info("to the second file")

	require.NoError(t, closeLogFile())
	assert.Nil(t, logFile)
	assert.Equal(t, os.Stderr, logrus.StandardLogger().Out)
	assert.NoError(t, closeLogFile())

	content, err := os.ReadFile(dir + "/first.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "to the first file")
	content, err = os.ReadFile(dir + "/second.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "to the second file")
	assert.NotContains(t, string(content), "to the first file")
}

func TestConfigureLogInvalid(t *testing.T) {
	cfg := viper.New()
	cfg.Set(constants.LogLevelKey, "verbose")
	assert.Error(t, configureLog(cfg))

	cfg = viper.New()
	cfg.Set(constants.LogLevelKey, "info")
	cfg.Set(constants.LogFormatKey, "xml")
	assert.Error(t, configureLog(cfg))
}
