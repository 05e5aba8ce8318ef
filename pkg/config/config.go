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

// Package config loads JSON configuration files with an environment overlay.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/carverauto/nmstatus/pkg/logger"
)

// DefaultEnvPrefix is the environment prefix for overlay variables.
const DefaultEnvPrefix = "NMSTATUS_"

// Config holds the configuration loading dependencies.
type Config struct {
	fileLoader ConfigLoader
	envLoader  ConfigLoader
	logger     logger.Logger
}

// NewConfig returns a loader reading JSON files and NMSTATUS_ variables.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Config{
		fileLoader: &FileConfigLoader{logger: log},
		envLoader:  NewEnvConfigLoader(log, DefaultEnvPrefix),
		logger:     log,
	}
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate reads path when it is set, overlays the environment, and
// validates the result. A missing file is not an error; defaults and the
// environment apply.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	if path != "" {
		err := c.fileLoader.Load(ctx, path, cfg)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			c.logger.Debug().Str("path", path).Msg("Configuration file not found, using defaults")
		case err != nil:
			return err
		}
	}

	if err := c.envLoader.Load(ctx, "", cfg); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return ValidateConfig(cfg)
}
