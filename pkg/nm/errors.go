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
	"errors"
)

var (
	// ErrBusUnavailable is the only error that aborts a collection pass.
	ErrBusUnavailable = errors.New("system bus unavailable")
	// ErrVersionUnavailable is returned by Version when the bus is reachable
	// but the manager did not report a version.
	ErrVersionUnavailable = errors.New("NetworkManager version unavailable")
	// ErrAbsent marks a property that was read successfully but carries no
	// value, such as the null object path.
	ErrAbsent = errors.New("property absent")
	// ErrUnknownFormat is returned for an output format other than json or text.
	ErrUnknownFormat = errors.New("unknown output format")

	errInvalidObjectPath = errors.New("invalid object path")
	errTypeMismatch      = errors.New("unexpected property type")
	errNegativeTimeout   = errors.New("call_timeout must not be negative")
)
