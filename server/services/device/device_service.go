package device

import (
	"context"
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/dto"
	"github.com/gwhitehawk/device-net/server/metrics"
	"github.com/gwhitehawk/device-net/server/store"
)

const (
	msgMACRequired      = "MAC address is required"
	msgAlreadyExists    = "Device with this MAC address already exists"
	msgTypeRequired     = "Device type is required"
	msgInvalidType      = "Invalid device type"
	msgSelfUplink       = "Device cannot be its own uplink"
	msgCycleDetected    = "Cycle detected: cannot link node as it would create a cycle."
	msgDeviceNotFound   = "Device not found"
	detailMACAddress    = "mac_address"
	detailUplinkAddress = "uplink_mac_address"
)

type DeviceService struct {
	db          *store.DB
	deviceStore store.DeviceStore
	metrics     *metrics.Metrics
	clock       clock.Clock
	// addMu serializes additions so that two concurrent adds cannot jointly form a cycle.
	addMu sync.Mutex
	logger.Log
}

func NewDeviceService(
	db *store.DB,
	deviceStore store.DeviceStore,
	metrics *metrics.Metrics,
	clk clock.Clock,
	logFactory logger.LogFactory,
) *DeviceService {
	return &DeviceService{
		db:          db,
		deviceStore: deviceStore,
		metrics:     metrics,
		clock:       clk,
		Log:         logFactory("DeviceService"),
	}
}

// Add validates and stores a new device, linking it into the network.
// Returns gerror.ErrValidationFailed if a required field is missing or invalid, gerror.ErrAlreadyExists if a
// device with the same MAC address already exists and gerror.ErrCycleDetected if the device's uplink chain
// would lead back to the device itself. Nothing is stored if an error is returned.
func (s *DeviceService) Add(ctx context.Context, txOrNil *store.Tx, device *models.Device) (*models.Device, error) {
	s.addMu.Lock()
	defer s.addMu.Unlock()

	added := &models.Device{
		MACAddress:       device.MACAddress,
		DeviceType:       device.DeviceType,
		UplinkMACAddress: device.UplinkMACAddress,
		CreatedAt:        models.NewTime(s.clock.Now()),
	}
	err := s.db.WithTx(ctx, txOrNil, func(tx *store.Tx) error {
		if added.MACAddress == "" {
			return gerror.NewErrValidationFailed(msgMACRequired)
		}
		_, err := s.deviceStore.Read(ctx, tx, added.MACAddress)
		if err == nil {
			return gerror.NewErrAlreadyExists(msgAlreadyExists).EDetail(detailMACAddress, added.MACAddress)
		}
		if !gerror.IsNotFound(err) {
			return fmt.Errorf("error checking for existing device: %w", err)
		}
		err = validateDevice(added)
		if err != nil {
			return err
		}
		err = s.deviceStore.Create(ctx, tx, added)
		if err != nil {
			if gerror.IsAlreadyExists(err) {
				return gerror.NewErrAlreadyExists(msgAlreadyExists).EDetail(detailMACAddress, added.MACAddress).Wrap(err)
			}
			return fmt.Errorf("error creating device: %w", err)
		}
		return s.checkForCycle(ctx, tx, added)
	})
	if err != nil {
		s.recordRejection(added, err)
		return nil, err
	}
	s.metrics.DeviceAdded(added.DeviceType.String())
	s.WithFields(logger.Fields{
		detailMACAddress:    added.MACAddress,
		"device_type":       added.DeviceType,
		detailUplinkAddress: added.UplinkMACAddress,
	}).Info("Device added")
	return added, nil
}

// validateDevice checks the fields of a device that can be validated without looking at other devices.
func validateDevice(device *models.Device) error {
	if device.DeviceType == "" {
		return gerror.NewErrValidationFailed(msgTypeRequired)
	}
	if !device.DeviceType.Valid() {
		return gerror.NewErrValidationFailed(msgInvalidType).EDetail("device_type", device.DeviceType)
	}
	if device.UplinkMACAddress == device.MACAddress {
		return gerror.NewErrValidationFailed(msgSelfUplink)
	}
	return nil
}

// checkForCycle walks the uplink chain of a newly created device. Only devices that are already stored
// can form a cycle, and the walk ends at the first uplink that is not stored.
func (s *DeviceService) checkForCycle(ctx context.Context, tx *store.Tx, device *models.Device) error {
	if !device.HasUplink() {
		return nil
	}
	devices, err := s.deviceStore.ListAll(ctx, tx)
	if err != nil {
		return fmt.Errorf("error listing devices for cycle check: %w", err)
	}
	if dto.WouldCreateCycle(dto.DevicesByMAC(devices), device) {
		return gerror.NewErrCycleDetected(msgCycleDetected).
			EDetail(detailMACAddress, device.MACAddress).
			EDetail(detailUplinkAddress, device.UplinkMACAddress)
	}
	return nil
}

func (s *DeviceService) recordRejection(device *models.Device, err error) {
	code := gerror.ErrCodeInternal
	if gErr, ok := gerror.As(err); ok {
		code = gErr.Code()
	}
	s.metrics.DeviceRejected(string(code))
	if code == gerror.ErrCodeInternal {
		s.Errorf("Error adding device %q: %v", device.MACAddress, err)
	} else {
		s.Debugf("Rejected device %q: %v", device.MACAddress, err)
	}
}

// Read an existing device, looking it up by MAC address.
// Returns gerror.ErrNotFound if the device does not exist.
func (s *DeviceService) Read(ctx context.Context, txOrNil *store.Tx, mac string) (*models.Device, error) {
	device, err := s.deviceStore.Read(ctx, txOrNil, mac)
	if err != nil {
		if gerror.IsNotFound(err) {
			return nil, gerror.NewErrNotFound(msgDeviceNotFound).EDetail(detailMACAddress, mac)
		}
		return nil, fmt.Errorf("error reading device: %w", err)
	}
	return device, nil
}

// List returns every device, access points first and gateways last.
func (s *DeviceService) List(ctx context.Context, txOrNil *store.Tx) ([]*models.Device, error) {
	devices, err := s.deviceStore.ListAll(ctx, txOrNil)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	models.SortDevices(devices)
	return devices, nil
}

// GetNetwork returns the network subtree rooted at the specified device.
// Returns gerror.ErrNotFound if the device does not exist.
func (s *DeviceService) GetNetwork(ctx context.Context, txOrNil *store.Tx, mac string) (*dto.NetworkNode, error) {
	var root *dto.NetworkNode
	err := s.db.WithTx(ctx, txOrNil, func(tx *store.Tx) error {
		device, err := s.Read(ctx, tx, mac)
		if err != nil {
			return err
		}
		hasParent := false
		if device.HasUplink() {
			_, err := s.deviceStore.Read(ctx, tx, device.UplinkMACAddress)
			if err != nil && !gerror.IsNotFound(err) {
				return fmt.Errorf("error reading uplink device: %w", err)
			}
			hasParent = err == nil
		}
		root = &dto.NetworkNode{Device: device, Children: []*dto.NetworkNode{}, HasParent: hasParent}
		return s.addChildren(ctx, tx, root, map[string]bool{device.MACAddress: true})
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

// addChildren fills in the subtree below node, one level of uplinks at a time.
func (s *DeviceService) addChildren(ctx context.Context, tx *store.Tx, node *dto.NetworkNode, visited map[string]bool) error {
	children, err := s.deviceStore.ListByUplink(ctx, tx, node.Device.MACAddress)
	if err != nil {
		return fmt.Errorf("error listing devices uplinked to %q: %w", node.Device.MACAddress, err)
	}
	for _, child := range children {
		if visited[child.MACAddress] {
			continue
		}
		visited[child.MACAddress] = true
		childNode := &dto.NetworkNode{Device: child, Children: []*dto.NetworkNode{}, HasParent: true}
		node.Children = append(node.Children, childNode)
		err = s.addChildren(ctx, tx, childNode, visited)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetFullNetwork returns one tree for every device that has no parent in the network.
func (s *DeviceService) GetFullNetwork(ctx context.Context, txOrNil *store.Tx) ([]*dto.NetworkNode, error) {
	devices, err := s.deviceStore.ListAll(ctx, txOrNil)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	return dto.BuildForest(dto.DevicesByMAC(devices)), nil
}
