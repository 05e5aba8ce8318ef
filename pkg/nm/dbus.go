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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	propertiesGet = "org.freedesktop.DBus.Properties.Get"

	// Raised for properties an older daemon does not export.
	errNameInvalidArgs      = "org.freedesktop.DBus.Error.InvalidArgs"
	errNameUnknownProperty  = "org.freedesktop.DBus.Error.UnknownProperty"
	errNameUnknownInterface = "org.freedesktop.DBus.Error.UnknownInterface"
)

// SystemBusDialer opens a private connection to the system bus.
type SystemBusDialer struct {
	// Address overrides the bus address, e.g. "unix:path=/run/dbus/system_bus_socket".
	Address     string
	CallTimeout time.Duration
}

// Dial authenticates and says Hello; the returned Bus must be closed.
func (d *SystemBusDialer) Dial(ctx context.Context) (Bus, error) {
	var (
		conn *dbus.Conn
		err  error
	)

	if d.Address != "" {
		conn, err = dbus.Connect(d.Address, dbus.WithContext(ctx))
	} else {
		conn, err = dbus.ConnectSystemBus(dbus.WithContext(ctx))
	}

	if err != nil {
		return nil, err
	}

	return &dbusBus{conn: conn, callTimeout: d.CallTimeout}, nil
}

type dbusBus struct {
	conn        *dbus.Conn
	callTimeout time.Duration
}

func (b *dbusBus) Object(path dbus.ObjectPath) (Object, error) {
	if !path.IsValid() || path == nullPath {
		return nil, fmt.Errorf("%w: %q", errInvalidObjectPath, path)
	}

	return &dbusObject{obj: b.conn.Object(busName, path), callTimeout: b.callTimeout}, nil
}

func (b *dbusBus) Close() error {
	return b.conn.Close()
}

type dbusObject struct {
	obj         dbus.BusObject
	callTimeout time.Duration
}

func (o *dbusObject) Property(ctx context.Context, iface, name string) (dbus.Variant, error) {
	if o.callTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
	}

	var v dbus.Variant

	err := o.obj.CallWithContext(ctx, propertiesGet, 0, iface, name).Store(&v)
	if err != nil {
		return dbus.Variant{}, classifyCallError(err)
	}

	return v, nil
}

// classifyCallError maps "no such property" replies to ErrAbsent; anything
// else stays a failure.
func classifyCallError(err error) error {
	switch callErrorName(err) {
	case errNameInvalidArgs, errNameUnknownProperty, errNameUnknownInterface:
		return fmt.Errorf("%w: %w", ErrAbsent, err)
	default:
		return err
	}
}

// callErrorName returns the D-Bus error name carried by err, or "".
func callErrorName(err error) string {
	var byValue dbus.Error
	if errors.As(err, &byValue) {
		return byValue.Name
	}

	var byPointer *dbus.Error
	if errors.As(err, &byPointer) && byPointer != nil {
		return byPointer.Name
	}

	return ""
}
