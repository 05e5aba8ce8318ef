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
	"fmt"
	"io"

	"github.com/carverauto/nmstatus/pkg/version"
)

// ShowHelp writes the usage message.
func ShowHelp(w io.Writer) {
	fmt.Fprintf(w, `%s: NetworkManager status over D-Bus
Usage:
  nmstatus [options] version
  nmstatus [options] status [-format json|text] [-color]

Commands:
  version    Print the running NetworkManager version
  status     Print manager, active connection and device state

Options:
  -config string   path to nmstatus.json (default "%s")
  -format string   output format: json or text (default "json")
  -debug           log collection progress to stderr
  -help            show this help message

Environment:
  NMSTATUS_BUS_ADDRESS, NMSTATUS_CALL_TIMEOUT, NMSTATUS_INTERFACE_STATS,
  NMSTATUS_FORMAT and NMSTATUS_LOGGING_* override the config file.

Examples:
  nmstatus version
  nmstatus status -format text
  NMSTATUS_CALL_TIMEOUT=1s nmstatus -debug status
`, version.GetFullVersion(), DefaultConfigPath)
}
