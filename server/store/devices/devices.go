package devices

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/store"
)

const (
	macColName    = "device_mac_address"
	uplinkColName = "device_uplink_mac_address"
)

func init() {
	store.MustDBModel(&models.Device{})
}

type DeviceStore struct {
	table *store.Table
}

func NewStore(db *store.DB, logFactory logger.LogFactory) *DeviceStore {
	return &DeviceStore{
		table: store.NewTable(db, logFactory, &models.Device{}),
	}
}

// Create a new device.
// Returns gerror.ErrAlreadyExists if a device with the same MAC address already exists.
func (d *DeviceStore) Create(ctx context.Context, txOrNil *store.Tx, device *models.Device) error {
	return d.table.Create(ctx, txOrNil, device)
}

// Read an existing device, looking it up by MAC address.
// Returns gerror.ErrNotFound if the device does not exist.
func (d *DeviceStore) Read(ctx context.Context, txOrNil *store.Tx, mac string) (*models.Device, error) {
	device := &models.Device{}
	err := d.table.ReadWhere(ctx, txOrNil, device, goqu.Ex{macColName: mac})
	if err != nil {
		return nil, err
	}
	return device, nil
}

// ListAll lists every device, ordered by MAC address.
func (d *DeviceStore) ListAll(ctx context.Context, txOrNil *store.Tx) ([]*models.Device, error) {
	devices := []*models.Device{}
	err := d.table.ListWhere(ctx, txOrNil, &devices, []exp.OrderedExpression{goqu.C(macColName).Asc()})
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// ListByUplink lists the devices whose uplink is the specified MAC address, ordered by MAC address.
func (d *DeviceStore) ListByUplink(ctx context.Context, txOrNil *store.Tx, uplinkMAC string) ([]*models.Device, error) {
	devices := []*models.Device{}
	err := d.table.ListWhere(ctx, txOrNil, &devices,
		[]exp.OrderedExpression{goqu.C(macColName).Asc()},
		goqu.Ex{uplinkColName: uplinkMAC})
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// Count returns the number of stored devices.
func (d *DeviceStore) Count(ctx context.Context, txOrNil *store.Tx) (int64, error) {
	return d.table.CountWhere(ctx, txOrNil)
}

// Delete permanently and idempotently deletes a device.
func (d *DeviceStore) Delete(ctx context.Context, txOrNil *store.Tx, mac string) error {
	return d.table.DeleteWhere(ctx, txOrNil, goqu.Ex{macColName: mac})
}
