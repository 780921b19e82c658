package usecase

import "context"

// DirectoryUsecase maps chat senders to ACS devices and privilege.
type DirectoryUsecase interface {
	// FindDeviceIDByPhone returns the id of the first device tagged with the
	// number. Lookup failures are reported as not found.
	FindDeviceIDByPhone(ctx context.Context, phone string) (string, bool)

	// IsAdmin reports whether the number is the configured administrator.
	IsAdmin(phone string) bool
}
