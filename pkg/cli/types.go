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

package cli

import (
	"context"

	"github.com/carverauto/nmstatus/pkg/report"
)

// CmdConfig holds the parsed command line.
type CmdConfig struct {
	Help       bool
	SubCmd     string
	ConfigFile string
	Format     string
	Debug      bool
	Color      bool
	Args       []string
}

// StatusSource produces the reports printed by the status and version
// commands; *nm.Collector satisfies it.
type StatusSource interface {
	Status(ctx context.Context) (report.Value, error)
	Version(ctx context.Context) (string, error)
}
