package devices_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/common/models"
	"github.com/gwhitehawk/device-net/server/store"
	"github.com/gwhitehawk/device-net/server/store/devices"
	"github.com/gwhitehawk/device-net/server/store/store_test"
)

func newDevice(mac string, deviceType models.DeviceType, uplink string) *models.Device {
	device := models.NewDevice(mac, deviceType, uplink)
	device.CreatedAt = models.NewTime(time.Now())
	return device
}

func TestDeviceStore(t *testing.T) {
	ctx := context.Background()
	db, cleanup, err := store_test.Connect(logger.NoOpLogFactory)
	require.NoError(t, err)
	defer cleanup()

	deviceStore := devices.NewStore(db, logger.NoOpLogFactory)

	count, err := deviceStore.Count(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	gateway := newDevice("AA:BB:CC:DD:EE:FF", models.DeviceTypeGateway, "")
	sw := newDevice("BB:CC:DD:EE:FF:AA", models.DeviceTypeSwitch, "AA:BB:CC:DD:EE:FF")
	ap := newDevice("00:11:22:33:44:55", models.DeviceTypeAccessPoint, "AA:BB:CC:DD:EE:FF")
	for _, device := range []*models.Device{gateway, sw, ap} {
		require.NoError(t, deviceStore.Create(ctx, nil, device))
	}

	t.Run("Read", func(t *testing.T) {
		read, err := deviceStore.Read(ctx, nil, sw.MACAddress)
		require.NoError(t, err)
		require.Equal(t, sw.MACAddress, read.MACAddress)
		require.Equal(t, sw.DeviceType, read.DeviceType)
		require.Equal(t, sw.UplinkMACAddress, read.UplinkMACAddress)
		require.True(t, sw.CreatedAt.Equal(read.CreatedAt.Time))

		_, err = deviceStore.Read(ctx, nil, "missing")
		require.True(t, gerror.IsNotFound(err))
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := deviceStore.Create(ctx, nil, newDevice(gateway.MACAddress, models.DeviceTypeSwitch, ""))
		require.True(t, gerror.IsAlreadyExists(err), "unexpected error: %v", err)
	})

	t.Run("List", func(t *testing.T) {
		all, err := deviceStore.ListAll(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, ap.MACAddress, all[0].MACAddress)
		require.Equal(t, gateway.MACAddress, all[1].MACAddress)
		require.Equal(t, sw.MACAddress, all[2].MACAddress)

		children, err := deviceStore.ListByUplink(ctx, nil, gateway.MACAddress)
		require.NoError(t, err)
		require.Len(t, children, 2)
		require.Equal(t, ap.MACAddress, children[0].MACAddress)

		none, err := deviceStore.ListByUplink(ctx, nil, ap.MACAddress)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("TransactionRollback", func(t *testing.T) {
		extra := newDevice("FF:EE:DD:CC:BB:AA", models.DeviceTypeSwitch, "")
		err := db.WithTx(ctx, nil, func(tx *store.Tx) error {
			require.NoError(t, deviceStore.Create(ctx, tx, extra))
			return gerror.NewErrCycleDetected("abort")
		})
		require.True(t, gerror.IsCycleDetected(err))
		_, err = deviceStore.Read(ctx, nil, extra.MACAddress)
		require.True(t, gerror.IsNotFound(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, deviceStore.Delete(ctx, nil, ap.MACAddress))
		require.NoError(t, deviceStore.Delete(ctx, nil, ap.MACAddress))
		count, err := deviceStore.Count(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, int64(2), count)
	})
}
