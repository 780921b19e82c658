package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/message"
	"portal/internal/domain/phone"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/infra/metrics"
	"portal/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const systemACS = "ACS"

type deviceService struct {
	deviceRepo  repository.DeviceRepository
	qrService   service.QRCodeService
	clock       service.Clock
	concurrency int
	logger      *slog.Logger
}

// NewDeviceService creates the device service. concurrency bounds the
// fan-out of RefreshAll.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	qrService service.QRCodeService,
	clock service.Clock,
	concurrency int,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &deviceService{
		deviceRepo:  deviceRepo,
		qrService:   qrService,
		clock:       clock,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// upstream converts repository failures: a missing device keeps its own
// error, anything else is reported as an ACS failure.
func upstream(err error, action string) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}

	return domainerrors.NewUpstreamError(systemACS, errors.Wrap(err, action), "")
}

func (srv *deviceService) GetDevice(ctx context.Context, deviceID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, upstream(err, "find device")
	}

	return device, nil
}

func (srv *deviceService) Snapshot(ctx context.Context, deviceID string) (*entity.DeviceSnapshot, error) {
	device, err := srv.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	snap := entity.NewDeviceSnapshot(device, srv.clock())

	return &snap, nil
}

func (srv *deviceService) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, upstream(err, "list devices")
	}

	return devices, nil
}

func (srv *deviceService) ListSnapshots(ctx context.Context) ([]entity.DeviceSnapshot, error) {
	devices, err := srv.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.clock()
	snaps := make([]entity.DeviceSnapshot, 0, len(devices))
	for _, d := range devices {
		snaps = append(snaps, entity.NewDeviceSnapshot(d, now))
	}

	return snaps, nil
}

func (srv *deviceService) ConnectedHosts(ctx context.Context, deviceID string) ([]entity.ConnectedHost, error) {
	device, err := srv.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return device.ConnectedHosts(), nil
}

// pushTask records the task outcome and wraps failures.
func (srv *deviceService) pushTask(ctx context.Context, deviceID string, task entity.Task, connectionRequest bool) error {
	err := srv.deviceRepo.PushTask(ctx, deviceID, task, connectionRequest)
	metrics.RecordACSTask(string(task.Name), err)
	if err != nil {
		srv.log(ctx).Error("ACS task failed", slog.String("deviceID", deviceID), slog.String("task", string(task.Name)), slog.Any("error", err))
		return upstream(err, "push "+string(task.Name))
	}

	return nil
}

// writeWiFi queues the parameter writes and then re-reads the WLAN subtree so
// the dashboard picks the change up.
func (srv *deviceService) writeWiFi(ctx context.Context, deviceID string, values []entity.ParameterValue) error {
	if err := srv.pushTask(ctx, deviceID, entity.NewSetParameterValuesTask(values...), false); err != nil {
		return err
	}

	return srv.pushTask(ctx, deviceID, entity.NewRefreshObjectTask(entity.WLANConfigurationRoot), false)
}

func ssidValue(band entity.WiFiBand, ssid string) entity.ParameterValue {
	return entity.ParameterValue{Path: entity.SSIDPath(band), Value: ssid, Type: entity.XSDString}
}

func passwordValues(band entity.WiFiBand, password string) []entity.ParameterValue {
	paths := entity.PassphrasePaths(band)
	values := make([]entity.ParameterValue, 0, len(paths))
	for _, p := range paths {
		values = append(values, entity.ParameterValue{Path: p, Value: password, Type: entity.XSDString})
	}

	return values
}

func (srv *deviceService) SetSSID(ctx context.Context, deviceID string, band entity.WiFiBand, ssid string) error {
	return srv.writeWiFi(ctx, deviceID, []entity.ParameterValue{ssidValue(band, ssid)})
}

func (srv *deviceService) SetPassword(ctx context.Context, deviceID string, band entity.WiFiBand, password string) error {
	return srv.writeWiFi(ctx, deviceID, passwordValues(band, password))
}

func (srv *deviceService) UpdateWiFi(ctx context.Context, deviceID string, update entity.WiFiUpdate) (string, error) {
	if update.IsEmpty() {
		return "", domainerrors.ErrNoWiFiChanges
	}

	var values []entity.ParameterValue
	if update.SSID2G != "" {
		values = append(values, ssidValue(entity.Band2G, update.SSID2G))
	}
	if update.SSID5G != "" {
		values = append(values, ssidValue(entity.Band5G, update.SSID5G))
	}
	if update.Password2G != "" {
		values = append(values, passwordValues(entity.Band2G, update.Password2G)...)
	}
	if update.Password5G != "" {
		values = append(values, passwordValues(entity.Band5G, update.Password5G)...)
	}

	if err := srv.writeWiFi(ctx, deviceID, values); err != nil {
		return "", err
	}

	srv.log(ctx).Info("WiFi settings updated", slog.String("deviceID", deviceID), slog.Int("parameters", len(values)))

	return message.WiFiUpdateResult(update), nil
}

func (srv *deviceService) WiFiQRCode(ctx context.Context, deviceID string, band entity.WiFiBand, password string) ([]byte, error) {
	device, err := srv.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	param := entity.ParamSSID2G
	if band == entity.Band5G {
		param = entity.ParamSSID5G
	}
	ssid := device.FieldOr(param, "")
	if ssid == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("SSID " + string(band) + " belum tersedia")
	}

	png, err := srv.qrService.GenerateWiFiQR(ssid, password)
	if err != nil {
		return nil, errors.Wrap(err, "generate wifi qr")
	}

	return png, nil
}

func (srv *deviceService) Reboot(ctx context.Context, deviceID string) error {
	if err := srv.pushTask(ctx, deviceID, entity.NewRebootTask(), true); err != nil {
		return err
	}

	srv.log(ctx).Info("Reboot queued", slog.String("deviceID", deviceID))

	return nil
}

func (srv *deviceService) Refresh(ctx context.Context, deviceID string) error {
	return srv.pushTask(ctx, deviceID, entity.NewRefreshObjectTask(""), true)
}

// RefreshAll enables periodic inform on every device. Individual failures are
// counted, not returned.
func (srv *deviceService) RefreshAll(ctx context.Context) (entity.RefreshTally, error) {
	devices, err := srv.ListDevices(ctx)
	if err != nil {
		return entity.RefreshTally{}, err
	}

	task := entity.NewSetParameterValuesTask(entity.ParameterValue{
		Path:  entity.PeriodicInformEnable,
		Value: "1",
		Type:  entity.XSDBoolean,
	})

	var ok, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(srv.concurrency)
	for _, d := range devices {
		if d == nil || d.ID == "" {
			continue
		}
		g.Go(func() error {
			if err := srv.pushTask(gctx, d.ID, task, false); err != nil {
				failed.Add(1)
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	tally := entity.RefreshTally{Successful: int(ok.Load()), Failed: int(failed.Load())}
	srv.log(ctx).Info("Refresh completed", slog.Int("successful", tally.Successful), slog.Int("failed", tally.Failed))

	return tally, nil
}

func (srv *deviceService) SetCustomerNumber(ctx context.Context, deviceID, number string) error {
	number = strings.TrimSpace(number)
	if !phone.IsDigits(number) {
		return domainerrors.ErrInvalidCustomerNumber
	}

	device, err := srv.GetDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	for _, tag := range device.Tags.Values() {
		if !phone.IsDigits(tag) {
			continue
		}
		if err := srv.deviceRepo.RemoveTag(ctx, deviceID, tag); err != nil {
			return upstream(err, "remove tag")
		}
	}

	if err := srv.deviceRepo.AddTag(ctx, deviceID, number); err != nil {
		return upstream(err, "add tag")
	}

	srv.log(ctx).Info("Customer number updated", slog.String("deviceID", deviceID))

	return nil
}

func (srv *deviceService) SetCustomerName(ctx context.Context, deviceID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customerName wajib diisi")
	}

	device, err := srv.GetDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	for _, tag := range device.Tags.CustomerNameTags() {
		if err := srv.deviceRepo.RemoveTag(ctx, deviceID, tag); err != nil {
			return upstream(err, "remove tag")
		}
	}

	if err := srv.deviceRepo.AddTag(ctx, deviceID, entity.CustomerNameTag(name)); err != nil {
		return upstream(err, "add tag")
	}

	return nil
}
