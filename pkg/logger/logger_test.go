/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer

	l, err := newWithWriter(&Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("field", "state").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "state", entry["field"])
}

func TestDebugOverridesLevel(t *testing.T) {
	l, err := newWithWriter(&Config{Level: "error", Debug: true}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.logger.GetLevel())

	l.SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, l.logger.GetLevel())
}

func TestInvalidLevel(t *testing.T) {
	_, err := newWithWriter(&Config{Level: "chatty"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	l, err := newWithWriter(&Config{Level: "info"}, &buf)
	require.NoError(t, err)

	c := l.WithComponent("collector")
	c.Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"component":"collector"`)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_OUTPUT", "")
	t.Setenv("DEBUG", "yes")

	config := DefaultConfig()

	assert.Equal(t, "info", config.Level)
	assert.Equal(t, OutputStderr, config.Output)
	assert.True(t, config.Debug)
}

func TestNewTestLoggerDiscards(t *testing.T) {
	t.Parallel()

	l := NewTestLogger()
	l.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, l.With().Logger().GetLevel())
}
