package models

import (
	"sort"
)

type DeviceType string

const (
	DeviceTypeAccessPoint DeviceType = "Access Point"
	DeviceTypeSwitch      DeviceType = "Switch"
	DeviceTypeGateway     DeviceType = "Gateway"
)

var deviceTypePriority = map[DeviceType]int{
	DeviceTypeAccessPoint: 1,
	DeviceTypeSwitch:      2,
	DeviceTypeGateway:     3,
}

func (t DeviceType) String() string {
	return string(t)
}

// Valid returns true if t is one of the supported device types. Comparison is case-sensitive.
func (t DeviceType) Valid() bool {
	_, ok := deviceTypePriority[t]
	return ok
}

// Priority returns the sort priority of the device type, or 0 if the type is not valid.
// Access points sort first and gateways last.
func (t DeviceType) Priority() int {
	return deviceTypePriority[t]
}

// Device is a piece of network equipment identified by its MAC address. A device optionally
// names the device it is uplinked to; an empty UplinkMACAddress means the device has no uplink.
type Device struct {
	MACAddress       string     `json:"macAddress" db:"device_mac_address"`
	DeviceType       DeviceType `json:"deviceType" db:"device_type"`
	UplinkMACAddress string     `json:"uplinkMacAddress" db:"device_uplink_mac_address"`
	CreatedAt        Time       `json:"-" db:"device_created_at"`
}

func NewDevice(mac string, deviceType DeviceType, uplinkMAC string) *Device {
	return &Device{
		MACAddress:       mac,
		DeviceType:       deviceType,
		UplinkMACAddress: uplinkMAC,
	}
}

// HasUplink returns true if the device names an uplink device.
func (d *Device) HasUplink() bool {
	return d.UplinkMACAddress != ""
}

// CompareDevices orders devices by type priority, then by MAC address.
// Returns a negative number if a sorts before b, positive if after and 0 if equal.
func CompareDevices(a, b *Device) int {
	if diff := a.DeviceType.Priority() - b.DeviceType.Priority(); diff != 0 {
		return diff
	}
	switch {
	case a.MACAddress < b.MACAddress:
		return -1
	case a.MACAddress > b.MACAddress:
		return 1
	default:
		return 0
	}
}

// SortDevices sorts devices in place using CompareDevices.
func SortDevices(devices []*Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		return CompareDevices(devices[i], devices[j]) < 0
	})
}
