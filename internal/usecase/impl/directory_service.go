package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/phone"
	"portal/internal/domain/repository"
	"portal/internal/usecase"
)

type directoryService struct {
	deviceRepo  repository.DeviceRepository
	adminNumber string
	logger      *slog.Logger
}

// NewDirectoryService creates the sender directory backed by the ACS device list.
func NewDirectoryService(deviceRepo repository.DeviceRepository, adminNumber string, logger *slog.Logger) usecase.DirectoryUsecase {
	return &directoryService{
		deviceRepo:  deviceRepo,
		adminNumber: adminNumber,
		logger:      logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindDeviceIDByPhone tries every stored form of the number against the
// device tags, exact matches first, then suffix matches.
func (srv *directoryService) FindDeviceIDByPhone(ctx context.Context, number string) (string, bool) {
	candidates := phone.Variants(number)
	if len(candidates) == 0 {
		return "", false
	}

	devices, err := srv.deviceRepo.ListDevices(ctx)
	if err != nil {
		srv.log(ctx).Warn("Device lookup failed", slog.String("phone", number), slog.Any("error", err))
		return "", false
	}

	if id, ok := firstMatch(devices, candidates, entity.Tags.MatchesExact); ok {
		return id, true
	}

	if id, ok := firstMatch(devices, candidates, entity.Tags.MatchesPartial); ok {
		srv.log(ctx).Debug("Device matched by number suffix", slog.String("phone", number), slog.String("deviceID", id))
		return id, true
	}

	return "", false
}

func firstMatch(devices []*entity.Device, candidates []string, match func(entity.Tags, string) bool) (string, bool) {
	for _, candidate := range candidates {
		for _, d := range devices {
			if d != nil && match(d.Tags, candidate) {
				return d.ID, true
			}
		}
	}

	return "", false
}

// IsAdmin compares normalized numbers. An unset admin number matches nobody.
func (srv *directoryService) IsAdmin(number string) bool {
	return phone.Equal(number, srv.adminNumber)
}
