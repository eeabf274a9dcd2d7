package store

import (
	"context"

	"github.com/gwhitehawk/device-net/common/models"
)

type DeviceStore interface {
	// Create a new device.
	// Returns gerror.ErrAlreadyExists if a device with the same MAC address already exists.
	Create(ctx context.Context, txOrNil *Tx, device *models.Device) error
	// Read an existing device, looking it up by MAC address.
	// Returns gerror.ErrNotFound if the device does not exist.
	Read(ctx context.Context, txOrNil *Tx, mac string) (*models.Device, error)
	// ListAll lists every device, ordered by MAC address.
	ListAll(ctx context.Context, txOrNil *Tx) ([]*models.Device, error)
	// ListByUplink lists the devices whose uplink is the specified MAC address, ordered by MAC address.
	ListByUplink(ctx context.Context, txOrNil *Tx, uplinkMAC string) ([]*models.Device, error)
	// Count returns the number of stored devices.
	Count(ctx context.Context, txOrNil *Tx) (int64, error)
	// Delete permanently and idempotently deletes a device.
	Delete(ctx context.Context, txOrNil *Tx, mac string) error
}
