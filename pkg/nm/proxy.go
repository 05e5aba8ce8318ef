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
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName = "org.freedesktop.NetworkManager"

	managerPath dbus.ObjectPath = "/org/freedesktop/NetworkManager"
	nullPath    dbus.ObjectPath = "/"

	managerInterface          = "org.freedesktop.NetworkManager"
	deviceInterface           = "org.freedesktop.NetworkManager.Device"
	activeConnectionInterface = "org.freedesktop.NetworkManager.Connection.Active"
	vpnConnectionInterface    = "org.freedesktop.NetworkManager.VPN.Connection"
)

// property reads one property and asserts its Go type.
func property[T any](ctx context.Context, obj Object, iface, name string) (T, error) {
	var zero T

	v, err := obj.Property(ctx, iface, name)
	if err != nil {
		return zero, err
	}

	val, ok := v.Value().(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s.%s has signature %q", errTypeMismatch, iface, name, v.Signature().String())
	}

	return val, nil
}

// objectPath reads an object-path property; the null path "/" is absence.
func objectPath(ctx context.Context, obj Object, iface, name string) (dbus.ObjectPath, error) {
	p, err := property[dbus.ObjectPath](ctx, obj, iface, name)
	if err != nil {
		return "", err
	}

	if p == nullPath || p == "" {
		return "", ErrAbsent
	}

	return p, nil
}

// Manager is the root NetworkManager object.
type Manager struct {
	obj Object
}

func NewManager(bus Bus) (*Manager, error) {
	obj, err := bus.Object(managerPath)
	if err != nil {
		return nil, err
	}

	return &Manager{obj: obj}, nil
}

func (m *Manager) Version(ctx context.Context) (string, error) {
	return property[string](ctx, m.obj, managerInterface, "Version")
}

func (m *Manager) State(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, m.obj, managerInterface, "State")
}

func (m *Manager) Startup(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "Startup")
}

func (m *Manager) NetworkingEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "NetworkingEnabled")
}

func (m *Manager) Connectivity(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, m.obj, managerInterface, "Connectivity")
}

func (m *Manager) ConnectivityCheckAvailable(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "ConnectivityCheckAvailable")
}

func (m *Manager) ConnectivityCheckEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "ConnectivityCheckEnabled")
}

func (m *Manager) ConnectivityCheckURI(ctx context.Context) (string, error) {
	return property[string](ctx, m.obj, managerInterface, "ConnectivityCheckUri")
}

func (m *Manager) Metered(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, m.obj, managerInterface, "Metered")
}

func (m *Manager) Capabilities(ctx context.Context) ([]uint32, error) {
	return property[[]uint32](ctx, m.obj, managerInterface, "Capabilities")
}

func (m *Manager) RadioFlags(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, m.obj, managerInterface, "RadioFlags")
}

func (m *Manager) WirelessEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WirelessEnabled")
}

func (m *Manager) WirelessHardwareEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WirelessHardwareEnabled")
}

func (m *Manager) WwanEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WwanEnabled")
}

func (m *Manager) WwanHardwareEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WwanHardwareEnabled")
}

func (m *Manager) WimaxEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WimaxEnabled")
}

func (m *Manager) WimaxHardwareEnabled(ctx context.Context) (bool, error) {
	return property[bool](ctx, m.obj, managerInterface, "WimaxHardwareEnabled")
}

func (m *Manager) PrimaryConnection(ctx context.Context) (dbus.ObjectPath, error) {
	return objectPath(ctx, m.obj, managerInterface, "PrimaryConnection")
}

func (m *Manager) PrimaryConnectionType(ctx context.Context) (string, error) {
	return property[string](ctx, m.obj, managerInterface, "PrimaryConnectionType")
}

func (m *Manager) ActivatingConnection(ctx context.Context) (dbus.ObjectPath, error) {
	return objectPath(ctx, m.obj, managerInterface, "ActivatingConnection")
}

func (m *Manager) ActiveConnections(ctx context.Context) ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](ctx, m.obj, managerInterface, "ActiveConnections")
}

func (m *Manager) AllDevices(ctx context.Context) ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](ctx, m.obj, managerInterface, "AllDevices")
}

func (m *Manager) Devices(ctx context.Context) ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](ctx, m.obj, managerInterface, "Devices")
}

// Device is one network device.
type Device struct {
	obj  Object
	path dbus.ObjectPath
}

func NewDevice(bus Bus, path dbus.ObjectPath) (*Device, error) {
	obj, err := bus.Object(path)
	if err != nil {
		return nil, err
	}

	return &Device{obj: obj, path: path}, nil
}

func (d *Device) Path(context.Context) (dbus.ObjectPath, error) {
	return d.path, nil
}

func (d *Device) Udi(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "Udi")
}

func (d *Device) DeviceType(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "DeviceType")
}

func (d *Device) Interface(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "Interface")
}

func (d *Device) InterfaceFlags(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "InterfaceFlags")
}

func (d *Device) IPInterface(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "IpInterface")
}

func (d *Device) Driver(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "Driver")
}

func (d *Device) DriverVersion(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "DriverVersion")
}

func (d *Device) FirmwareMissing(ctx context.Context) (bool, error) {
	return property[bool](ctx, d.obj, deviceInterface, "FirmwareMissing")
}

func (d *Device) FirmwareVersion(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "FirmwareVersion")
}

func (d *Device) Capabilities(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Capabilities")
}

func (d *Device) State(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "State")
}

// StateReason returns the reason half of the (state, reason) pair.
func (d *Device) StateReason(ctx context.Context) (uint32, error) {
	pair, err := property[[]interface{}](ctx, d.obj, deviceInterface, "StateReason")
	if err != nil {
		return 0, err
	}

	if len(pair) != 2 {
		return 0, fmt.Errorf("%w: StateReason has %d members", errTypeMismatch, len(pair))
	}

	reason, ok := pair[1].(uint32)
	if !ok {
		return 0, fmt.Errorf("%w: StateReason reason is %T", errTypeMismatch, pair[1])
	}

	return reason, nil
}

func (d *Device) Managed(ctx context.Context) (bool, error) {
	return property[bool](ctx, d.obj, deviceInterface, "Managed")
}

func (d *Device) Autoconnect(ctx context.Context) (bool, error) {
	return property[bool](ctx, d.obj, deviceInterface, "Autoconnect")
}

func (d *Device) Real(ctx context.Context) (bool, error) {
	return property[bool](ctx, d.obj, deviceInterface, "Real")
}

func (d *Device) NmPluginMissing(ctx context.Context) (bool, error) {
	return property[bool](ctx, d.obj, deviceInterface, "NmPluginMissing")
}

func (d *Device) Mtu(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Mtu")
}

func (d *Device) HwAddress(ctx context.Context) (string, error) {
	return property[string](ctx, d.obj, deviceInterface, "HwAddress")
}

func (d *Device) Metered(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Metered")
}

func (d *Device) IP4Address(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Ip4Address")
}

func (d *Device) IP4Connectivity(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Ip4Connectivity")
}

func (d *Device) IP6Connectivity(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, d.obj, deviceInterface, "Ip6Connectivity")
}

// ActiveConnection is an active (or activating) connection.
type ActiveConnection struct {
	obj  Object
	path dbus.ObjectPath
}

func NewActiveConnection(bus Bus, path dbus.ObjectPath) (*ActiveConnection, error) {
	obj, err := bus.Object(path)
	if err != nil {
		return nil, err
	}

	return &ActiveConnection{obj: obj, path: path}, nil
}

func (a *ActiveConnection) Path(context.Context) (dbus.ObjectPath, error) {
	return a.path, nil
}

func (a *ActiveConnection) ID(ctx context.Context) (string, error) {
	return property[string](ctx, a.obj, activeConnectionInterface, "Id")
}

func (a *ActiveConnection) UUID(ctx context.Context) (string, error) {
	return property[string](ctx, a.obj, activeConnectionInterface, "Uuid")
}

func (a *ActiveConnection) Type(ctx context.Context) (string, error) {
	return property[string](ctx, a.obj, activeConnectionInterface, "Type")
}

func (a *ActiveConnection) State(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, a.obj, activeConnectionInterface, "State")
}

func (a *ActiveConnection) StateFlags(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, a.obj, activeConnectionInterface, "StateFlags")
}

func (a *ActiveConnection) Default(ctx context.Context) (bool, error) {
	return property[bool](ctx, a.obj, activeConnectionInterface, "Default")
}

func (a *ActiveConnection) Default6(ctx context.Context) (bool, error) {
	return property[bool](ctx, a.obj, activeConnectionInterface, "Default6")
}

func (a *ActiveConnection) Connection(ctx context.Context) (dbus.ObjectPath, error) {
	return objectPath(ctx, a.obj, activeConnectionInterface, "Connection")
}

func (a *ActiveConnection) SpecificObject(ctx context.Context) (dbus.ObjectPath, error) {
	return objectPath(ctx, a.obj, activeConnectionInterface, "SpecificObject")
}

func (a *ActiveConnection) Devices(ctx context.Context) ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](ctx, a.obj, activeConnectionInterface, "Devices")
}

func (a *ActiveConnection) Vpn(ctx context.Context) (bool, error) {
	return property[bool](ctx, a.obj, activeConnectionInterface, "Vpn")
}

// VPNConnection is the VPN view of an active connection, sharing its path.
type VPNConnection struct {
	obj Object
}

func NewVPNConnection(bus Bus, path dbus.ObjectPath) (*VPNConnection, error) {
	obj, err := bus.Object(path)
	if err != nil {
		return nil, err
	}

	return &VPNConnection{obj: obj}, nil
}

func (v *VPNConnection) Banner(ctx context.Context) (string, error) {
	return property[string](ctx, v.obj, vpnConnectionInterface, "Banner")
}

func (v *VPNConnection) VpnState(ctx context.Context) (uint32, error) {
	return property[uint32](ctx, v.obj, vpnConnectionInterface, "VpnState")
}
