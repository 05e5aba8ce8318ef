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

package nm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/nmstatus/pkg/logger"
)

func TestConfigNormalizeDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}

	timeout, err := cfg.Normalize()
	require.NoError(t, err)
	assert.Equal(t, defaultCallTimeout, timeout)
	assert.Equal(t, FormatJSON, cfg.Format)
	require.NotNil(t, cfg.InterfaceStats)
	assert.True(t, *cfg.InterfaceStats)
	assert.NotNil(t, cfg.Logging)
}

func TestConfigNormalizeTimeouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "250ms", want: 250 * time.Millisecond},
		{in: "0", want: 0},
		{in: "10m", want: maxCallTimeout},
		{in: "-1s", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{CallTimeout: tt.in}

			got, err := cfg.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigNormalizeKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	disabled := false
	logging := &logger.Config{Level: "warn"}
	cfg := &Config{Format: FormatText, InterfaceStats: &disabled, Logging: logging}

	_, err := cfg.Normalize()
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, *cfg.InterfaceStats)
	assert.Same(t, logging, cfg.Logging)
}

func TestNewCollectorFromConfigRejectsBadTimeout(t *testing.T) {
	t.Parallel()

	_, err := NewCollectorFromConfig(logger.NewTestLogger(), &Config{CallTimeout: "-5s"})
	require.ErrorIs(t, err, errNegativeTimeout)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&Config{}).Validate())
	require.NoError(t, (&Config{Format: FormatText, CallTimeout: "2s"}).Validate())
	require.ErrorIs(t, (&Config{Format: "yaml"}).Validate(), ErrUnknownFormat)
	require.ErrorIs(t, (&Config{CallTimeout: "-1s"}).Validate(), errNegativeTimeout)

	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Format)
}

func TestDefaultConfigSeedsLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_CONSOLE", "true")

	cfg := DefaultConfig()
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)

	_, err := cfg.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
