package impl

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	mockUC "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	directory    *mockUC.MockDirectoryUsecase
	notifier     *mockUC.MockNotificationUsecase
	otpRepo      *mockRepo.MockOTPRepository
	tokenService *mockSvc.MockTokenService
}

func testSessionConfig(otpEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.OTP = config.OTPConfig{
		Enabled: otpEnabled,
		Length:  6,
		Expiry:  5 * time.Minute,
		Message: "Kode OTP Anda untuk login NetKita: {{otp}}. Kode ini berlaku selama {{expiry}} menit.",
	}
	cfg.Admin = config.AdminConfig{
		Username:           "admin",
		Password:           "s3cret",
		TechnicianUsername: "teknisi",
		TechnicianPassword: "lapangan",
	}

	return cfg
}

func createTestSessionService(t *testing.T, otpEnabled bool) sessionServiceFixtures {
	fx := sessionServiceFixtures{
		directory:    mockUC.NewMockDirectoryUsecase(t),
		notifier:     mockUC.NewMockNotificationUsecase(t),
		otpRepo:      mockRepo.NewMockOTPRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewSessionService(fx.directory, fx.notifier, fx.otpRepo, fx.tokenService,
		testSessionConfig(otpEnabled), testClock, slog.Default())

	return fx
}

func TestSessionService_Login_WithoutOTP(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()

	fx.directory.EXPECT().FindDeviceIDByPhone(ctx, "081234567890").Return("dev-1", true)
	fx.tokenService.EXPECT().GenerateToken("081234567890", "dev-1", []string{"customer"}).Return("jwt-token", nil)

	out, err := fx.service.Login(ctx, " 081234567890 ")
	require.NoError(t, err)
	assert.False(t, out.OTPRequired)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "dev-1", out.DeviceID)
}

func TestSessionService_Login_UnknownCustomer(t *testing.T) {
	fx := createTestSessionService(t, true)
	ctx := context.Background()

	fx.directory.EXPECT().FindDeviceIDByPhone(ctx, "089999999999").Return("", false)

	_, err := fx.service.Login(ctx, "089999999999")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestSessionService_Login_SendsAndStoresOTP(t *testing.T) {
	fx := createTestSessionService(t, true)
	ctx := context.Background()

	var sent string
	var saved entity.OTPEntry
	fx.directory.EXPECT().FindDeviceIDByPhone(ctx, "081234567890").Return("dev-1", true)
	fx.notifier.EXPECT().Send(ctx, "081234567890", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, text string) { sent = text }).
		Return(nil)
	fx.otpRepo.EXPECT().Save(ctx, "081234567890", mock.AnythingOfType("entity.OTPEntry")).
		Run(func(_ context.Context, _ string, entry entity.OTPEntry) { saved = entry }).
		Return(nil)

	out, err := fx.service.Login(ctx, "081234567890")
	require.NoError(t, err)
	assert.True(t, out.OTPRequired)
	assert.Empty(t, out.Token)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), saved.Code)
	assert.Equal(t, testNow.Add(5*time.Minute), saved.ExpiresAt)
	assert.Equal(t, "Kode OTP Anda untuk login NetKita: "+saved.Code+". Kode ini berlaku selama 5 menit.", sent)
}

func TestSessionService_Login_OTPDeliveryFailure(t *testing.T) {
	fx := createTestSessionService(t, true)
	ctx := context.Background()

	fx.directory.EXPECT().FindDeviceIDByPhone(ctx, "081234567890").Return("dev-1", true)
	fx.notifier.EXPECT().Send(ctx, "081234567890", mock.Anything).Return(errors.New("gateway down"))

	_, err := fx.service.Login(ctx, "081234567890")
	assert.ErrorIs(t, err, domainerrors.ErrOTPDeliveryFailed)
}

func TestSessionService_VerifyOTP(t *testing.T) {
	tests := []struct {
		name    string
		entry   *entity.OTPEntry
		findErr error
		code    string
		wantErr error
	}{
		{
			name:  "valid code",
			entry: &entity.OTPEntry{Code: "123456", ExpiresAt: testNow.Add(time.Minute)},
			code:  "123456",
		},
		{
			name:    "wrong code",
			entry:   &entity.OTPEntry{Code: "123456", ExpiresAt: testNow.Add(time.Minute)},
			code:    "654321",
			wantErr: domainerrors.ErrInvalidOTP,
		},
		{
			name:    "expired code",
			entry:   &entity.OTPEntry{Code: "123456", ExpiresAt: testNow},
			code:    "123456",
			wantErr: domainerrors.ErrInvalidOTP,
		},
		{
			name:    "no pending code",
			findErr: repository.ErrOTPNotFound,
			code:    "123456",
			wantErr: domainerrors.ErrInvalidOTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t, true)
			ctx := context.Background()

			fx.otpRepo.EXPECT().Find(ctx, "081234567890").Return(tt.entry, tt.findErr)
			if tt.entry != nil && (tt.wantErr == nil || tt.entry.Expired(testNow)) {
				fx.otpRepo.EXPECT().Delete(ctx, "081234567890").Return(nil).Once()
			}
			if tt.wantErr == nil {
				fx.directory.EXPECT().FindDeviceIDByPhone(ctx, "081234567890").Return("dev-1", true)
				fx.tokenService.EXPECT().GenerateToken("081234567890", "dev-1", []string{"customer"}).Return("jwt-token", nil)
			}

			out, err := fx.service.VerifyOTP(ctx, "081234567890", tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt-token", out.Token)
			assert.Equal(t, entity.RoleCustomer, out.Role)
		})
	}
}

func TestSessionService_AdminLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantRole entity.Role
	}{
		{name: "administrator", username: "admin", password: "s3cret", wantRole: entity.RoleAdmin},
		{name: "technician", username: "teknisi", password: "lapangan", wantRole: entity.RoleTechnician},
		{name: "wrong password", username: "admin", password: "lapangan"},
		{name: "empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t, false)
			ctx := context.Background()

			if tt.wantRole != "" {
				fx.tokenService.EXPECT().GenerateToken(tt.username, "", []string{tt.wantRole.String()}).Return("staff-token", nil)
			}

			out, err := fx.service.AdminLogin(ctx, tt.username, tt.password)
			if tt.wantRole == "" {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, out.Role)
			assert.Equal(t, "staff-token", out.Token)
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		code, err := generateOTP(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		assert.Regexp(t, `^\d+$`, code)
	}
}
