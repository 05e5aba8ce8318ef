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
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCallError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		absent bool
	}{
		{"unknown property", dbus.Error{Name: errNameUnknownProperty}, true},
		{"invalid args", dbus.Error{Name: errNameInvalidArgs}, true},
		{"unknown interface", dbus.Error{Name: errNameUnknownInterface}, true},
		{"wrapped unknown property", fmt.Errorf("call: %w", dbus.Error{Name: errNameUnknownProperty}), true},
		{"access denied", dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"}, false},
		{"pointer unknown property", &dbus.Error{Name: errNameUnknownProperty}, true},
		{"transport", errTestTimeout, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyCallError(tt.err)
			require.Error(t, got)
			assert.Equal(t, tt.absent, errors.Is(got, ErrAbsent))

			var want dbus.Error
			if errors.As(tt.err, &want) {
				assert.Equal(t, want.Name, callErrorName(got))
				return
			}

			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestBusRejectsUnusableObjectPaths(t *testing.T) {
	t.Parallel()

	bus := &dbusBus{}

	for _, path := range []dbus.ObjectPath{nullPath, "", "relative/path", "/trailing/"} {
		_, err := bus.Object(path)
		require.ErrorIs(t, err, errInvalidObjectPath, "path %q", path)
	}
}
