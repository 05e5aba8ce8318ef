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
	"net"

	"github.com/carverauto/nmstatus/pkg/report"
)

// Domain selects the label table used to decode an integer code.
type Domain uint8

const (
	DomainActivationStateFlags Domain = iota + 1
	DomainActiveConnectionState
	DomainConnectivityState
	DomainDeviceCapabilities
	DomainDeviceInterfaceFlags
	DomainDeviceState
	DomainDeviceStateReason
	DomainMetered
	DomainCapability
	DomainState
	DomainRadioFlags
	DomainDeviceType
	DomainVPNConnectionState
)

// Bitmask domains are matched exactly like enumerations: a value carrying
// several bits at once has no label and passes through as the raw integer.
var domainLabels = map[Domain]map[uint32]string{
	DomainActivationStateFlags: {
		0x00: "none",
		0x01: "is_controller",
		0x02: "is_port",
		0x04: "layer2_ready",
		0x08: "ip4_ready",
		0x10: "ip6_ready",
		0x20: "controller_has_ports",
		0x40: "lifetime_bound_to_profile_visibility",
		0x80: "external",
	},
	DomainActiveConnectionState: {
		0: "unknown",
		1: "activating",
		2: "activated",
		3: "deactivating",
		4: "deactivated",
	},
	DomainConnectivityState: {
		0: "unknown",
		1: "none",
		2: "portal",
		3: "limited",
		4: "full",
	},
	DomainDeviceCapabilities: {
		0x00: "none",
		0x01: "nm_supported",
		0x02: "carrier_detect",
		0x04: "is_software",
		0x08: "sriov",
	},
	DomainDeviceInterfaceFlags: {
		0x00000: "none",
		0x00001: "up",
		0x00002: "lower_up",
		0x00004: "promisc",
		0x10000: "carrier",
		0x20000: "lldp_client_enabled",
	},
	DomainDeviceState: {
		0:   "unknown",
		10:  "unmanaged",
		20:  "unavailable",
		30:  "disconnected",
		40:  "prepare",
		50:  "config",
		60:  "need_auth",
		70:  "ip_config",
		80:  "ip_check",
		90:  "secondaries",
		100: "activated",
		110: "deactivating",
		120: "failed",
	},
	DomainDeviceStateReason: deviceStateReasons,
	DomainMetered: {
		0: "unknown",
		1: "yes",
		2: "no",
		3: "guess_yes",
		4: "guess_no",
	},
	DomainCapability: {
		1: "team",
		2: "ovs",
	},
	DomainState: {
		0:  "unknown",
		10: "asleep",
		20: "disconnected",
		30: "disconnecting",
		40: "connecting",
		50: "connected_local",
		60: "connected_site",
		70: "connected_global",
	},
	DomainRadioFlags: {
		0x0: "none",
		0x1: "wlan_available",
		0x2: "wwan_available",
	},
	DomainDeviceType: {
		0:  "unknown",
		1:  "ethernet",
		2:  "wifi",
		3:  "unused1",
		4:  "unused2",
		5:  "bt",
		6:  "olpc_mesh",
		7:  "wimax",
		8:  "modem",
		9:  "infiniband",
		10: "bond",
		11: "vlan",
		12: "adsl",
		13: "bridge",
		14: "generic",
		15: "team",
		16: "tun",
		17: "ip_tunnel",
		18: "macvlan",
		19: "vxlan",
		20: "veth",
		21: "macsec",
		22: "dummy",
		23: "ppp",
		24: "ovs_interface",
		25: "ovs_port",
		26: "ovs_bridge",
		27: "wpan",
		28: "6lowpan",
		29: "wireguard",
		30: "wifi_p2p",
		31: "vrf",
		32: "loopback",
		33: "hsr",
		34: "ipvlan",
	},
	DomainVPNConnectionState: {
		0: "unknown",
		1: "prepare",
		2: "need_auth",
		3: "connect",
		4: "ip_config_get",
		5: "activated",
		6: "failed",
		7: "disconnected",
	},
}

var deviceStateReasons = map[uint32]string{
	0:  "none",
	1:  "unknown",
	2:  "now_managed",
	3:  "now_unmanaged",
	4:  "config_failed",
	5:  "ip_config_unavailable",
	6:  "ip_config_expired",
	7:  "no_secrets",
	8:  "supplicant_disconnect",
	9:  "supplicant_config_failed",
	10: "supplicant_failed",
	11: "supplicant_timeout",
	12: "ppp_start_failed",
	13: "ppp_disconnect",
	14: "ppp_failed",
	15: "dhcp_start_failed",
	16: "dhcp_error",
	17: "dhcp_failed",
	18: "shared_start_failed",
	19: "shared_failed",
	20: "autoip_start_failed",
	21: "autoip_error",
	22: "autoip_failed",
	23: "modem_busy",
	24: "modem_no_dial_tone",
	25: "modem_no_carrier",
	26: "modem_dial_timeout",
	27: "modem_dial_failed",
	28: "modem_init_failed",
	29: "gsm_apn_failed",
	30: "gsm_registration_not_searching",
	31: "gsm_registration_denied",
	32: "gsm_registration_timeout",
	33: "gsm_registration_failed",
	34: "gsm_pin_check_failed",
	35: "firmware_missing",
	36: "removed",
	37: "sleeping",
	38: "connection_removed",
	39: "user_requested",
	40: "carrier",
	41: "connection_assumed",
	42: "supplicant_available",
	43: "modem_not_found",
	44: "bt_failed",
	45: "gsm_sim_not_inserted",
	46: "gsm_sim_pin_required",
	47: "gsm_sim_puk_required",
	48: "gsm_sim_wrong",
	49: "infiniband_mode",
	50: "dependency_failed",
	51: "br2684_failed",
	52: "modem_manager_unavailable",
	53: "ssid_not_found",
	54: "secondary_connection_failed",
	55: "dcb_fcoe_failed",
	56: "teamd_control_failed",
	57: "modem_failed",
	58: "modem_available",
	59: "sim_pin_incorrect",
	60: "new_activation",
	61: "parent_changed",
	62: "parent_managed_changed",
	63: "ovsdb_failed",
	64: "ip_address_duplicate",
	65: "ip_method_unsupported",
	66: "sriov_configuration_failed",
	67: "peer_not_found",
	68: "device_handler_failed",
}

// Label returns the label for raw in domain, if any.
func Label(domain Domain, raw uint32) (string, bool) {
	label, ok := domainLabels[domain][raw]

	return label, ok
}

// Decode maps raw to its label, or to the raw integer when no label applies.
// It never fails.
func Decode(domain Domain, raw uint32) report.Value {
	if label, ok := Label(domain, raw); ok {
		return report.String(label)
	}

	return report.Int(int64(raw))
}

// DecodeList decodes each element in order.
func DecodeList(domain Domain, raws []uint32) report.Value {
	items := make([]report.Value, len(raws))
	for i, raw := range raws {
		items[i] = Decode(domain, raw)
	}

	return report.List(items...)
}

// DecodeIPv4 renders a host-order address, most significant byte first.
func DecodeIPv4(raw uint32) report.Value {
	ip := net.IPv4(byte(raw>>24), byte(raw>>16), byte(raw>>8), byte(raw))

	return report.String(ip.String())
}
