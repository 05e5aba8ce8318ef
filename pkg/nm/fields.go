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
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/nmstatus/pkg/report"
)

// field is one row of a proxy's attribute table: where the value lands in
// the object's record and how to read it.
type field[P any] struct {
	key  string
	path []string
	read func(ctx context.Context, proxy P) (report.Value, unavailable)
}

// unavailable describes a read that produced no value; Outcome satisfies it.
type unavailable interface {
	Cause() error
	Absent() bool
}

// attr builds a field from a typed accessor and a converter. key is a dotted
// path into nested sub-records, e.g. "driver.version".
func attr[P, T any](key string, get func(P, context.Context) (T, error), convert func(T) report.Value) field[P] {
	return field[P]{
		key:  key,
		path: strings.Split(key, "."),
		read: func(ctx context.Context, proxy P) (report.Value, unavailable) {
			o := Fetch(ctx, func(ctx context.Context) (T, error) { return get(proxy, ctx) })

			return Convert(o, convert), o
		},
	}
}

func uintValue(u uint32) report.Value { return report.Int(int64(u)) }

func decoded(domain Domain) func(uint32) report.Value {
	return func(raw uint32) report.Value { return Decode(domain, raw) }
}

func decodedList(domain Domain) func([]uint32) report.Value {
	return func(raws []uint32) report.Value { return DecodeList(domain, raws) }
}

func pathValue(p dbus.ObjectPath) report.Value { return report.String(string(p)) }

func pathList(paths []dbus.ObjectPath) report.Value {
	items := make([]report.Value, len(paths))
	for i, p := range paths {
		items[i] = pathValue(p)
	}

	return report.List(items...)
}

var managerFields = []field[*Manager]{
	attr("version", (*Manager).Version, report.String),
	attr("state", (*Manager).State, decoded(DomainState)),
	attr("startup", (*Manager).Startup, report.Bool),
	attr("networking_enabled", (*Manager).NetworkingEnabled, report.Bool),
	attr("connectivity", (*Manager).Connectivity, decoded(DomainConnectivityState)),
	attr("connectivity_check.available", (*Manager).ConnectivityCheckAvailable, report.Bool),
	attr("connectivity_check.enabled", (*Manager).ConnectivityCheckEnabled, report.Bool),
	attr("connectivity_check.uri", (*Manager).ConnectivityCheckURI, report.String),
	attr("metered", (*Manager).Metered, decoded(DomainMetered)),
	attr("capabilities", (*Manager).Capabilities, decodedList(DomainCapability)),
	attr("radio_flags", (*Manager).RadioFlags, decoded(DomainRadioFlags)),
	attr("wireless.enabled", (*Manager).WirelessEnabled, report.Bool),
	attr("wireless.hardware_enabled", (*Manager).WirelessHardwareEnabled, report.Bool),
	attr("wwan.enabled", (*Manager).WwanEnabled, report.Bool),
	attr("wwan.hardware_enabled", (*Manager).WwanHardwareEnabled, report.Bool),
	attr("wimax.enabled", (*Manager).WimaxEnabled, report.Bool),
	attr("wimax.hardware_enabled", (*Manager).WimaxHardwareEnabled, report.Bool),
	attr("primary_connection", (*Manager).PrimaryConnection, pathValue),
	attr("primary_connection_type", (*Manager).PrimaryConnectionType, report.String),
	attr("activating_connection", (*Manager).ActivatingConnection, pathValue),
}

var deviceFields = []field[*Device]{
	attr("path", (*Device).Path, pathValue),
	attr("udi", (*Device).Udi, report.String),
	attr("device_type", (*Device).DeviceType, decoded(DomainDeviceType)),
	attr("interface.name", (*Device).Interface, report.String),
	attr("interface.flags", (*Device).InterfaceFlags, decoded(DomainDeviceInterfaceFlags)),
	attr("ip_interface", (*Device).IPInterface, report.String),
	attr("driver.name", (*Device).Driver, report.String),
	attr("driver.version", (*Device).DriverVersion, report.String),
	attr("firmware.missing", (*Device).FirmwareMissing, report.Bool),
	attr("firmware.version", (*Device).FirmwareVersion, report.String),
	attr("capabilities", (*Device).Capabilities, decoded(DomainDeviceCapabilities)),
	attr("state", (*Device).State, decoded(DomainDeviceState)),
	attr("state_reason", (*Device).StateReason, decoded(DomainDeviceStateReason)),
	attr("managed", (*Device).Managed, report.Bool),
	attr("autoconnect", (*Device).Autoconnect, report.Bool),
	attr("real", (*Device).Real, report.Bool),
	attr("nm_plugin_missing", (*Device).NmPluginMissing, report.Bool),
	attr("mtu", (*Device).Mtu, uintValue),
	attr("hw_address", (*Device).HwAddress, report.String),
	attr("metered", (*Device).Metered, decoded(DomainMetered)),
	attr("ip4.address", (*Device).IP4Address, DecodeIPv4),
	attr("ip4.connectivity", (*Device).IP4Connectivity, decoded(DomainConnectivityState)),
	attr("ip6.connectivity", (*Device).IP6Connectivity, decoded(DomainConnectivityState)),
}

var activeConnectionFields = []field[*ActiveConnection]{
	attr("path", (*ActiveConnection).Path, pathValue),
	attr("id", (*ActiveConnection).ID, report.String),
	attr("uuid", (*ActiveConnection).UUID, report.String),
	attr("type", (*ActiveConnection).Type, report.String),
	attr("state", (*ActiveConnection).State, decoded(DomainActiveConnectionState)),
	attr("state_flags", (*ActiveConnection).StateFlags, decoded(DomainActivationStateFlags)),
	attr("default", (*ActiveConnection).Default, report.Bool),
	attr("default6", (*ActiveConnection).Default6, report.Bool),
	attr("connection", (*ActiveConnection).Connection, pathValue),
	attr("specific_object", (*ActiveConnection).SpecificObject, pathValue),
	attr("devices", (*ActiveConnection).Devices, pathList),
}

var vpnConnectionFields = []field[*VPNConnection]{
	attr("banner", (*VPNConnection).Banner, report.String),
	attr("vpn_state", (*VPNConnection).VpnState, decoded(DomainVPNConnectionState)),
}

// foldFields reads every field of one object concurrently and assembles the
// record in table order. Unreadable fields become Absent.
func foldFields[P any](ctx context.Context, log zerolog.Logger, proxy P, fields []field[P]) *report.Record {
	values := make([]report.Value, len(fields))
	outcomes := make([]unavailable, len(fields))

	var g errgroup.Group

	for i, f := range fields {
		i, f := i, f
		g.Go(func() error {
			values[i], outcomes[i] = f.read(ctx, proxy)
			return nil
		})
	}

	_ = g.Wait()

	rec := report.NewRecord()

	for i, f := range fields {
		rec.SetPath(f.path, values[i])

		if o := outcomes[i]; o != nil && o.Cause() != nil {
			logDegraded(log, f.key, o)
		}
	}

	return rec
}

// absentRecord lays out a table's keys with every value Absent, for objects
// whose proxy could not be built.
func absentRecord[P any](fields []field[P]) *report.Record {
	rec := report.NewRecord()
	for _, f := range fields {
		rec.SetPath(f.path, report.Absent())
	}

	return rec
}

func logDegraded(log zerolog.Logger, key string, o unavailable) {
	reason := "failed"
	if o.Absent() {
		reason = "absent"
	}

	log.Debug().Str("field", key).Str("reason", reason).Err(o.Cause()).Msg("Field unavailable")
}
