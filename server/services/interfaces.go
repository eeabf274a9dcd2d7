package services

import (
	"context"

	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/dto"
	"github.com/gwhitehawk/device-net/server/store"
)

type DeviceService interface {
	// Add validates and stores a new device, linking it into the network.
	// Returns gerror.ErrValidationFailed if a required field is missing or invalid, gerror.ErrAlreadyExists if a
	// device with the same MAC address already exists and gerror.ErrCycleDetected if the device's uplink chain
	// would lead back to the device itself. Nothing is stored if an error is returned.
	Add(ctx context.Context, txOrNil *store.Tx, device *models.Device) (*models.Device, error)
	// Read an existing device, looking it up by MAC address.
	// Returns gerror.ErrNotFound if the device does not exist.
	Read(ctx context.Context, txOrNil *store.Tx, mac string) (*models.Device, error)
	// List returns every device, access points first and gateways last.
	List(ctx context.Context, txOrNil *store.Tx) ([]*models.Device, error)
	// GetNetwork returns the network subtree rooted at the specified device.
	// Returns gerror.ErrNotFound if the device does not exist.
	GetNetwork(ctx context.Context, txOrNil *store.Tx, mac string) (*dto.NetworkNode, error)
	// GetFullNetwork returns one tree for every device that has no parent in the network.
	GetFullNetwork(ctx context.Context, txOrNil *store.Tx) ([]*dto.NetworkNode, error)
}
