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
	"fmt"
	"time"

	"github.com/carverauto/nmstatus/pkg/logger"
)

const (
	defaultCallTimeout = 5 * time.Second
	maxCallTimeout     = time.Minute

	FormatJSON = "json"
	FormatText = "text"
)

// Config controls the status collector and its CLI.
type Config struct {
	// BusAddress overrides the system bus address; empty uses the default.
	BusAddress string `json:"bus_address,omitempty"`
	// CallTimeout bounds each property read; "0" disables it.
	CallTimeout    string         `json:"call_timeout,omitempty"`
	InterfaceStats *bool          `json:"interface_stats,omitempty"`
	Format         string         `json:"format,omitempty"`
	Logging        *logger.Config `json:"logging,omitempty"`
}

// DefaultConfig returns a Config whose logging section already carries the
// environment defaults, so loaders overlay onto them instead of onto zero
// values.
func DefaultConfig() *Config {
	return &Config{Logging: logger.DefaultConfig()}
}

// Normalize ensures defaults are populated and returns the per-call timeout.
func (c *Config) Normalize() (time.Duration, error) {
	if c.Format == "" {
		c.Format = FormatJSON
	}

	if c.InterfaceStats == nil {
		enabled := true
		c.InterfaceStats = &enabled
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	if c.CallTimeout == "" {
		return defaultCallTimeout, nil
	}

	d, err := time.ParseDuration(c.CallTimeout)
	if err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, errNegativeTimeout
	}

	if d > maxCallTimeout {
		d = maxCallTimeout
	}

	return d, nil
}

// Validate checks the output format and the call timeout without applying
// defaults.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	probe := *c
	if _, err := probe.Normalize(); err != nil {
		return fmt.Errorf("invalid call_timeout: %w", err)
	}

	return nil
}
