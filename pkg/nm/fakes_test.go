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
	"sync"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
)

var (
	errTestUnreachable = errors.New("object unreachable")
	errTestNoBus       = errors.New("no such socket")
	errTestTimeout     = errors.New("call timed out")
)

// fakeBus serves properties from memory. Paths without an object resolve to
// an object whose every read is absent, like an object that has vanished.
type fakeBus struct {
	mu      sync.Mutex
	objects map[dbus.ObjectPath]*fakeObject
	broken  map[dbus.ObjectPath]bool
	closed  atomic.Int32
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		objects: make(map[dbus.ObjectPath]*fakeObject),
		broken:  make(map[dbus.ObjectPath]bool),
	}
}

// object returns the object at path, creating it on first use.
func (b *fakeBus) object(path dbus.ObjectPath) *fakeObject {
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.objects[path]
	if !ok {
		o = &fakeObject{
			props:   make(map[string]dbus.Variant),
			failing: make(map[string]error),
		}
		b.objects[path] = o
	}

	return o
}

func (b *fakeBus) manager() *fakeObject {
	return b.object(managerPath)
}

// breakPath makes proxy construction for path fail.
func (b *fakeBus) breakPath(path dbus.ObjectPath) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.broken[path] = true
}

func (b *fakeBus) Object(path dbus.ObjectPath) (Object, error) {
	b.mu.Lock()
	broken := b.broken[path]
	b.mu.Unlock()

	if broken {
		return nil, fmt.Errorf("%w: %s", errTestUnreachable, path)
	}

	return b.object(path), nil
}

func (b *fakeBus) Close() error {
	b.closed.Add(1)
	return nil
}

type fakeObject struct {
	props   map[string]dbus.Variant
	failing map[string]error
}

func propKey(iface, name string) string {
	return iface + "." + name
}

func (o *fakeObject) set(iface, name string, v any) *fakeObject {
	o.props[propKey(iface, name)] = dbus.MakeVariant(v)
	return o
}

func (o *fakeObject) fail(iface, name string, err error) *fakeObject {
	o.failing[propKey(iface, name)] = err
	return o
}

// Property fails on a done context, as a real method call does.
func (o *fakeObject) Property(ctx context.Context, iface, name string) (dbus.Variant, error) {
	if err := ctx.Err(); err != nil {
		return dbus.Variant{}, err
	}

	key := propKey(iface, name)

	if err, ok := o.failing[key]; ok {
		return dbus.Variant{}, err
	}

	v, ok := o.props[key]
	if !ok {
		return dbus.Variant{}, fmt.Errorf("%w: %s", ErrAbsent, key)
	}

	return v, nil
}

type fakeDialer struct {
	bus   Bus
	err   error
	dials atomic.Int32
	// onDial runs after a successful connection is handed out.
	onDial func()
}

func (d *fakeDialer) Dial(ctx context.Context) (Bus, error) {
	d.dials.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d.onDial != nil {
		defer d.onDial()
	}

	if d.err != nil {
		return nil, d.err
	}

	return d.bus, nil
}
