package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// DeviceUsecase defines the device operations shared by the bot and the portal.
type DeviceUsecase interface {
	// GetDevice loads the raw device document.
	GetDevice(ctx context.Context, deviceID string) (*entity.Device, error)

	// Snapshot reads the dashboard view of one device.
	Snapshot(ctx context.Context, deviceID string) (*entity.DeviceSnapshot, error)

	// ListDevices returns every device known to the ACS.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// ListSnapshots returns the dashboard view of every device.
	ListSnapshots(ctx context.Context) ([]entity.DeviceSnapshot, error)

	// ConnectedHosts lists the LAN clients of a device.
	ConnectedHosts(ctx context.Context, deviceID string) ([]entity.ConnectedHost, error)

	// SetSSID renames one radio and refreshes the WLAN subtree.
	SetSSID(ctx context.Context, deviceID string, band entity.WiFiBand, ssid string) error

	// SetPassword changes one radio's passphrase and refreshes the WLAN subtree.
	SetPassword(ctx context.Context, deviceID string, band entity.WiFiBand, password string) error

	// UpdateWiFi applies every supplied field in one task and returns the
	// confirmation text for that combination of fields.
	UpdateWiFi(ctx context.Context, deviceID string, update entity.WiFiUpdate) (string, error)

	// WiFiQRCode renders a join code for the current SSID of a band.
	WiFiQRCode(ctx context.Context, deviceID string, band entity.WiFiBand, password string) ([]byte, error)

	// Reboot queues a restart.
	Reboot(ctx context.Context, deviceID string) error

	// Refresh re-reads every parameter with a connection request.
	Refresh(ctx context.Context, deviceID string) error

	// RefreshAll enables periodic inform on every device and tallies the outcome.
	RefreshAll(ctx context.Context) (entity.RefreshTally, error)

	// SetCustomerNumber replaces the numeric tags with number.
	SetCustomerNumber(ctx context.Context, deviceID, number string) error

	// SetCustomerName replaces the customerName tag.
	SetCustomerName(ctx context.Context, deviceID, name string) error
}
