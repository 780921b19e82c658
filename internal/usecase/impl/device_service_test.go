package impl

import (
	"context"
	"log/slog"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	qrService  *mockSvc.MockQRCodeService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo, qrService, testClock, 2, slog.Default()),
		deviceRepo: deviceRepo,
		qrService:  qrService,
	}
}

func wlanDevice(id, ssid2G string, tags entity.Tags) *entity.Device {
	return &entity.Device{
		ID:         id,
		Tags:       tags,
		LastInform: testNow,
		Params: map[string]any{
			"InternetGatewayDevice": map[string]any{
				"LANDevice": map[string]any{
					"1": map[string]any{
						"WLANConfiguration": map[string]any{
							"1": map[string]any{"SSID": map[string]any{"_value": ssid2G}},
						},
					},
				},
			},
		},
	}
}

func isTask(name entity.TaskName) any {
	return mock.MatchedBy(func(task entity.Task) bool { return task.Name == name })
}

func TestDeviceService_Snapshot(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").
		Return(wlanDevice("dev-1", "Rumah Budi", entity.NewTags("081234567890")), nil)

	snap, err := fx.service.Snapshot(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "Rumah Budi", snap.SSID2G)
	assert.Equal(t, "081234567890", snap.CustomerNumber)
	assert.True(t, snap.Online)
}

func TestDeviceService_GetDevice_Errors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode error
	}{
		{name: "missing device", repoErr: repository.ErrDeviceNotFound, wantCode: domainerrors.ErrDeviceNotFound},
		{name: "transport failure", repoErr: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(nil, tt.repoErr)

			_, err := fx.service.GetDevice(ctx, "dev-1")
			require.Error(t, err)
			if tt.wantCode != nil {
				assert.ErrorIs(t, err, tt.wantCode)
				return
			}
			var upstreamErr *domainerrors.UpstreamError
			assert.ErrorAs(t, err, &upstreamErr)
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestDeviceService_SetSSID_RefreshesWLAN(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", mock.MatchedBy(func(task entity.Task) bool {
		return task.Name == entity.TaskSetParameterValues &&
			len(task.ParameterValues) == 1 &&
			task.ParameterValues[0].Path == entity.SSIDPath(entity.Band5G) &&
			task.ParameterValues[0].Value == "Rumah-5G" &&
			task.ParameterValues[0].Type == entity.XSDString
	}), false).Return(nil).Once()
	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", mock.MatchedBy(func(task entity.Task) bool {
		return task.Name == entity.TaskRefreshObject && *task.ObjectName == entity.WLANConfigurationRoot
	}), false).Return(nil).Once()

	require.NoError(t, fx.service.SetSSID(ctx, "dev-1", entity.Band5G, "Rumah-5G"))
}

func TestDeviceService_SetPassword_WritesEveryPassphrasePath(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	var written []entity.ParameterValue
	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskSetParameterValues), false).
		Run(func(_ context.Context, _ string, task entity.Task, _ bool) { written = task.ParameterValues }).
		Return(nil).Once()
	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskRefreshObject), false).Return(nil).Once()

	require.NoError(t, fx.service.SetPassword(ctx, "dev-1", entity.Band2G, "rahasia123"))

	paths := entity.PassphrasePaths(entity.Band2G)
	require.Len(t, written, len(paths))
	for i, p := range paths {
		assert.Equal(t, p, written[i].Path)
		assert.Equal(t, "rahasia123", written[i].Value)
	}
}

func TestDeviceService_SetSSID_TaskFailureSkipsRefresh(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskSetParameterValues), false).
		Return(errors.New("status 500")).Once()

	err := fx.service.SetSSID(ctx, "dev-1", entity.Band2G, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestDeviceService_UpdateWiFi(t *testing.T) {
	t.Run("nothing to change", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.UpdateWiFi(context.Background(), "dev-1", entity.WiFiUpdate{})
		assert.ErrorIs(t, err, domainerrors.ErrNoWiFiChanges)
	})

	t.Run("single task with every field", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		var written []entity.ParameterValue
		fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskSetParameterValues), false).
			Run(func(_ context.Context, _ string, task entity.Task, _ bool) { written = task.ParameterValues }).
			Return(nil).Once()
		fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskRefreshObject), false).Return(nil).Once()

		got, err := fx.service.UpdateWiFi(ctx, "dev-1", entity.WiFiUpdate{SSID2G: "A", SSID5G: "B"})
		require.NoError(t, err)
		assert.Equal(t, "SSID 2.4G dan 5G berhasil diperbarui", got)
		require.Len(t, written, 2)
		assert.Equal(t, entity.SSIDPath(entity.Band2G), written[0].Path)
		assert.Equal(t, entity.SSIDPath(entity.Band5G), written[1].Path)
	})
}

func TestDeviceService_WiFiQRCode(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").Return(wlanDevice("dev-1", "Rumah Budi", entity.Tags{}), nil).Twice()
	fx.qrService.EXPECT().GenerateWiFiQR("Rumah Budi", "rahasia123").Return([]byte("png"), nil).Once()

	png, err := fx.service.WiFiQRCode(ctx, "dev-1", entity.Band2G, "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.WiFiQRCode(ctx, "dev-1", entity.Band5G, "rahasia123")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDeviceService_RebootAndRefresh_UseConnectionRequest(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", isTask(entity.TaskReboot), true).Return(nil).Once()
	fx.deviceRepo.EXPECT().PushTask(ctx, "dev-1", mock.MatchedBy(func(task entity.Task) bool {
		return task.Name == entity.TaskRefreshObject && *task.ObjectName == ""
	}), true).Return(nil).Once()

	require.NoError(t, fx.service.Reboot(ctx, "dev-1"))
	require.NoError(t, fx.service.Refresh(ctx, "dev-1"))
}

func TestDeviceService_RefreshAll_TalliesFailures(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().ListDevices(ctx).Return([]*entity.Device{
		{ID: "dev-1"}, {ID: "dev-2"}, {ID: "dev-3"}, {ID: ""},
	}, nil)
	periodicInform := mock.MatchedBy(func(task entity.Task) bool {
		return task.Name == entity.TaskSetParameterValues &&
			task.ParameterValues[0].Path == entity.PeriodicInformEnable &&
			task.ParameterValues[0].Type == entity.XSDBoolean
	})
	fx.deviceRepo.EXPECT().PushTask(mock.Anything, "dev-1", periodicInform, false).Return(nil)
	fx.deviceRepo.EXPECT().PushTask(mock.Anything, "dev-2", periodicInform, false).Return(errors.New("timeout"))
	fx.deviceRepo.EXPECT().PushTask(mock.Anything, "dev-3", periodicInform, false).Return(nil)

	tally, err := fx.service.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RefreshTally{Successful: 2, Failed: 1}, tally)
}

func TestDeviceService_RefreshAll_ListFailure(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().ListDevices(ctx).Return(nil, errors.New("unreachable"))

	_, err := fx.service.RefreshAll(ctx)
	assert.Error(t, err)
}

func TestDeviceService_SetCustomerNumber(t *testing.T) {
	t.Run("rejects non-digits", func(t *testing.T) {
		fx := createTestDeviceService(t)

		err := fx.service.SetCustomerNumber(context.Background(), "dev-1", "0812-abc")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomerNumber)
	})

	t.Run("replaces numeric tags only", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").
			Return(&entity.Device{ID: "dev-1", Tags: entity.NewTags("081111111111", "customerName:Budi", "42")}, nil)
		fx.deviceRepo.EXPECT().RemoveTag(ctx, "dev-1", "081111111111").Return(nil).Once()
		fx.deviceRepo.EXPECT().RemoveTag(ctx, "dev-1", "42").Return(nil).Once()
		fx.deviceRepo.EXPECT().AddTag(ctx, "dev-1", "082222222222").Return(nil).Once()

		require.NoError(t, fx.service.SetCustomerNumber(ctx, "dev-1", " 082222222222 "))
	})
}

func TestDeviceService_SetCustomerName(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "dev-1").
		Return(&entity.Device{ID: "dev-1", Tags: entity.NewTags("081111111111", "customerName:Budi")}, nil)
	fx.deviceRepo.EXPECT().RemoveTag(ctx, "dev-1", "customerName:Budi").Return(nil).Once()
	fx.deviceRepo.EXPECT().AddTag(ctx, "dev-1", "customerName:Budi Santoso").Return(nil).Once()

	require.NoError(t, fx.service.SetCustomerName(ctx, "dev-1", "Budi Santoso"))

	assert.ErrorIs(t, fx.service.SetCustomerName(ctx, "dev-1", "  "), domainerrors.ErrValidationFailed)
}
