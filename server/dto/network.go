package dto

import (
	"sort"

	"github.com/gwhitehawk/device-net/common/models"
)

// NetworkNode is a device together with the devices uplinked to it.
type NetworkNode struct {
	Device   *models.Device
	Children []*NetworkNode
	// HasParent is true if the device's uplink is present in the network.
	HasParent bool
}

// DevicesByMAC indexes devices by MAC address.
func DevicesByMAC(devices []*models.Device) map[string]*models.Device {
	byMAC := make(map[string]*models.Device, len(devices))
	for _, device := range devices {
		byMAC[device.MACAddress] = device
	}
	return byMAC
}

// FindChildren returns every device whose uplink is mac, ordered by MAC address.
func FindChildren(devices map[string]*models.Device, mac string) []*models.Device {
	var children []*models.Device
	for _, device := range devices {
		if device.UplinkMACAddress == mac && device.MACAddress != mac {
			children = append(children, device)
		}
	}
	sortByMAC(children)
	return children
}

// BuildTree builds the subtree rooted at root from the supplied devices.
// The devices must not contain a cycle reachable from root.
func BuildTree(devices map[string]*models.Device, root *models.Device) *NetworkNode {
	node := &NetworkNode{
		Device:    root,
		Children:  []*NetworkNode{},
		HasParent: hasParent(devices, root),
	}
	for _, child := range FindChildren(devices, root.MACAddress) {
		node.Children = append(node.Children, BuildTree(devices, child))
	}
	return node
}

// BuildForest builds one tree per root device. A root is a device with no uplink, or whose
// uplink is not present in devices. Roots are ordered by MAC address.
func BuildForest(devices map[string]*models.Device) []*NetworkNode {
	var roots []*models.Device
	for _, device := range devices {
		if !hasParent(devices, device) {
			roots = append(roots, device)
		}
	}
	sortByMAC(roots)
	forest := make([]*NetworkNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, BuildTree(devices, root))
	}
	return forest
}

// WouldCreateCycle returns true if adding candidate to devices would make candidate its own ancestor.
// Walks uplinks upward from candidate until an uplink is missing or candidate is reached.
func WouldCreateCycle(devices map[string]*models.Device, candidate *models.Device) bool {
	current := candidate
	for steps := 0; steps <= len(devices); steps++ {
		if !current.HasUplink() {
			return false
		}
		if current.UplinkMACAddress == candidate.MACAddress {
			return true
		}
		parent, ok := devices[current.UplinkMACAddress]
		if !ok {
			return false
		}
		current = parent
	}
	// Walked further than there are devices, so the existing devices already loop.
	return true
}

func hasParent(devices map[string]*models.Device, device *models.Device) bool {
	if !device.HasUplink() {
		return false
	}
	_, ok := devices[device.UplinkMACAddress]
	return ok
}

func sortByMAC(devices []*models.Device) {
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].MACAddress < devices[j].MACAddress
	})
}
