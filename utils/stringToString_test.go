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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringToStringSingle(t *testing.T) {
	t.Parallel()
	value, err := ParseStringToString("NODE_ENV=dev")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"NODE_ENV": "dev"}, value)
}

func TestParseStringToStringSeveral(t *testing.T) {
	t.Parallel()
	value, err := ParseStringToString(" NODE_ENV = dev , API=http://x?a=b ,EMPTY=,")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"NODE_ENV": "dev",
		"API":      "http://x?a=b",
		"EMPTY":    "",
	}, value)
}

func TestParseStringToStringLastWins(t *testing.T) {
	t.Parallel()
	value, err := ParseStringToString("key=val,key=noval")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"key": "noval"}, value)
}

func TestParseStringToStringInvalid(t *testing.T) {
	t.Parallel()
	_, err := ParseStringToString("NODE_ENV")
	assert.Error(t, err)

	_, err = ParseStringToString("=dev")
	assert.Error(t, err)
}

func TestFormatStringToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", FormatStringToString(nil))
	assert.Equal(t, "a=1,b=,c=3", FormatStringToString(map[string]string{"c": "3", "a": "1", "b": ""}))
}
