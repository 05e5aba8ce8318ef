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

//go:generate mockgen -destination=mock_nm.go -package=nm github.com/carverauto/nmstatus/pkg/nm Dialer,Bus,Object

package nm

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Dialer opens one bus session per collection pass.
type Dialer interface {
	Dial(ctx context.Context) (Bus, error)
}

// Bus is an open session on the system message bus. Concurrent Object and
// Property calls on one Bus must be safe.
type Bus interface {
	// Object resolves a remote object by path. An error means the proxy
	// could not be constructed.
	Object(path dbus.ObjectPath) (Object, error)
	Close() error
}

// Object reads properties of one remote object.
type Object interface {
	Property(ctx context.Context, iface, name string) (dbus.Variant, error)
}
