// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device access.
var (
	// ErrDeviceNotFound is returned when the ACS has no device with the given id.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository is the ACS northbound API as the rest of the system sees it.
type DeviceRepository interface {
	// ListDevices returns every device known to the ACS.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// FindDeviceByID returns one device or ErrDeviceNotFound.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// PushTask queues a task. With connectionRequest the ACS asks the CPE to
	// connect immediately instead of waiting for its next periodic inform.
	PushTask(ctx context.Context, id string, task entity.Task, connectionRequest bool) error

	// AddTag attaches a tag to a device.
	AddTag(ctx context.Context, id, tag string) error

	// RemoveTag detaches a tag from a device.
	RemoveTag(ctx context.Context, id, tag string) error
}
