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

	"github.com/stretchr/testify/assert"

	"github.com/carverauto/nmstatus/pkg/report"
)

func TestDecodeLabelOrRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain Domain
		raw    uint32
		want   report.Value
	}{
		{"device state", DomainDeviceState, 100, report.String("activated")},
		{"device type", DomainDeviceType, 1, report.String("ethernet")},
		{"vpn state", DomainVPNConnectionState, 4, report.String("ip_config_get")},
		{"connectivity", DomainConnectivityState, 4, report.String("full")},
		{"single flag", DomainDeviceInterfaceFlags, 0x10000, report.String("carrier")},
		{"zero flag", DomainDeviceInterfaceFlags, 0, report.String("none")},
		{"combined flags", DomainDeviceInterfaceFlags, 0x10003, report.Int(65539)},
		{"unknown enum", DomainDeviceState, 999, report.Int(999)},
		{"state reason", DomainDeviceStateReason, 0, report.String("none")},
		{"unknown domain", Domain(0), 1, report.Int(1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Decode(tt.domain, tt.raw)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	label, ok := Label(DomainMetered, 3)
	assert.True(t, ok)
	assert.Equal(t, "guess_yes", label)

	_, ok = Label(DomainMetered, 42)
	assert.False(t, ok)
}

func TestDecodeListKeepsOrder(t *testing.T) {
	t.Parallel()

	got := DecodeList(DomainCapability, []uint32{1, 9, 2})

	want := report.List(report.String("team"), report.Int(9), report.String("ovs"))
	assert.True(t, want.Equal(got))

	empty := DecodeList(DomainCapability, nil)
	assert.Equal(t, report.KindList, empty.Kind())
	assert.Equal(t, 0, empty.Len())
}

func TestDecodeIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  uint32
		want string
	}{
		{0xC0A80001, "192.168.0.1"},
		{0x0A000002, "10.0.0.2"},
		{0, "0.0.0.0"},
	}

	for _, tt := range tests {
		s, ok := DecodeIPv4(tt.raw).AsString()
		assert.True(t, ok)
		assert.Equal(t, tt.want, s)
	}
}
