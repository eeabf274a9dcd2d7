package dto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/models"
)

func TestFindChildren(t *testing.T) {
	root := models.NewDevice("root", models.DeviceTypeGateway, "")
	child1 := models.NewDevice("child1", models.DeviceTypeSwitch, "root")
	child2 := models.NewDevice("child2", models.DeviceTypeAccessPoint, "root")
	unrelated := models.NewDevice("other", models.DeviceTypeSwitch, "none")
	devices := DevicesByMAC([]*models.Device{root, child1, child2, unrelated})

	children := FindChildren(devices, "root")
	require.Len(t, children, 2)
	require.Equal(t, []*models.Device{child1, child2}, children)
	require.Empty(t, FindChildren(devices, "child1"))
}

func TestBuildTree(t *testing.T) {
	root := models.NewDevice("root", models.DeviceTypeGateway, "")
	child1 := models.NewDevice("child1", models.DeviceTypeSwitch, "root")
	child2 := models.NewDevice("child2", models.DeviceTypeAccessPoint, "root")
	grandchild := models.NewDevice("grandchild", models.DeviceTypeAccessPoint, "child1")
	devices := DevicesByMAC([]*models.Device{root, child1, child2, grandchild})

	tree := BuildTree(devices, root)
	require.Equal(t, root, tree.Device)
	require.False(t, tree.HasParent)
	require.Len(t, tree.Children, 2)

	child1Node := tree.Children[0]
	require.Equal(t, child1, child1Node.Device)
	require.True(t, child1Node.HasParent)
	require.Len(t, child1Node.Children, 1)
	require.Equal(t, grandchild, child1Node.Children[0].Device)
	require.Empty(t, tree.Children[1].Children)
}

func TestBuildForest(t *testing.T) {
	gateway1 := models.NewDevice("AA:BB:CC:DD:EE:FF", models.DeviceTypeGateway, "")
	gateway2 := models.NewDevice("11:22:33:44:55:66", models.DeviceTypeGateway, "")
	sw := models.NewDevice("BB:CC:DD:EE:FF:AA", models.DeviceTypeSwitch, "AA:BB:CC:DD:EE:FF")
	orphan := models.NewDevice("FF:FF:FF:FF:FF:FF", models.DeviceTypeAccessPoint, "00:00:00:00:00:00")

	forest := BuildForest(DevicesByMAC([]*models.Device{gateway1, gateway2, sw, orphan}))
	require.Len(t, forest, 3)
	require.Equal(t, gateway2, forest[0].Device)
	require.Equal(t, gateway1, forest[1].Device)
	require.Len(t, forest[1].Children, 1)
	require.Equal(t, orphan, forest[2].Device)
	require.False(t, forest[2].HasParent)
}

func TestBuildForestEmpty(t *testing.T) {
	forest := BuildForest(map[string]*models.Device{})
	require.NotNil(t, forest)
	require.Empty(t, forest)
}

func TestWouldCreateCycle(t *testing.T) {
	gateway := models.NewDevice("AA:BB:CC:DD:EE:FF", models.DeviceTypeGateway, "")
	sw := models.NewDevice("BB:CC:DD:EE:FF:AA", models.DeviceTypeSwitch, "CC:DD:EE:FF:AA:BB")
	devices := DevicesByMAC([]*models.Device{gateway, sw})

	ap := models.NewDevice("CC:DD:EE:FF:AA:BB", models.DeviceTypeAccessPoint, "BB:CC:DD:EE:FF:AA")
	require.True(t, WouldCreateCycle(devices, ap))

	underGateway := models.NewDevice("CC:DD:EE:FF:AA:BB", models.DeviceTypeAccessPoint, "AA:BB:CC:DD:EE:FF")
	require.False(t, WouldCreateCycle(devices, underGateway))

	missingUplink := models.NewDevice("DD:DD:DD:DD:DD:DD", models.DeviceTypeAccessPoint, "EE:EE:EE:EE:EE:EE")
	require.False(t, WouldCreateCycle(devices, missingUplink))

	self := models.NewDevice("11:11:11:11:11:11", models.DeviceTypeGateway, "11:11:11:11:11:11")
	require.True(t, WouldCreateCycle(devices, self))
}
