package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"
)

type sessionService struct {
	directory    usecase.DirectoryUsecase
	notifier     usecase.NotificationUsecase
	otpRepo      repository.OTPRepository
	tokenService service.TokenService
	otp          config.OTPConfig
	admin        config.AdminConfig
	clock        service.Clock
	logger       *slog.Logger
}

// NewSessionService creates the portal login service.
func NewSessionService(
	directory usecase.DirectoryUsecase,
	notifier usecase.NotificationUsecase,
	otpRepo repository.OTPRepository,
	tokenService service.TokenService,
	cfg *config.Config,
	clock service.Clock,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		directory:    directory,
		notifier:     notifier,
		otpRepo:      otpRepo,
		tokenService: tokenService,
		otp:          cfg.OTP,
		admin:        cfg.Admin,
		clock:        clock,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, customerNumber string) (*usecase.LoginOutput, error) {
	customerNumber = strings.TrimSpace(customerNumber)
	if customerNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nomor pelanggan wajib diisi")
	}

	deviceID, ok := srv.directory.FindDeviceIDByPhone(ctx, customerNumber)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	if !srv.otp.Enabled {
		token, err := srv.issueCustomerToken(customerNumber, deviceID)
		if err != nil {
			return nil, err
		}

		return &usecase.LoginOutput{Token: token, DeviceID: deviceID}, nil
	}

	code, err := generateOTP(srv.otp.Length)
	if err != nil {
		return nil, errors.Wrap(err, "generate otp")
	}

	if err := srv.notifier.Send(ctx, customerNumber, srv.otpText(code)); err != nil {
		srv.log(ctx).Warn("OTP delivery failed", slog.Any("error", err))
		return nil, domainerrors.ErrOTPDeliveryFailed
	}

	entry := entity.OTPEntry{Code: code, ExpiresAt: srv.clock().Add(srv.otp.Expiry)}
	if err := srv.otpRepo.Save(ctx, customerNumber, entry); err != nil {
		return nil, errors.Wrap(err, "save otp")
	}

	return &usecase.LoginOutput{OTPRequired: true, DeviceID: deviceID}, nil
}

func (srv *sessionService) VerifyOTP(ctx context.Context, customerNumber, code string) (*usecase.SessionOutput, error) {
	customerNumber = strings.TrimSpace(customerNumber)

	entry, err := srv.otpRepo.Find(ctx, customerNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return nil, domainerrors.ErrInvalidOTP
		}

		return nil, errors.Wrap(err, "find otp")
	}

	if entry.Expired(srv.clock()) {
		_ = srv.otpRepo.Delete(ctx, customerNumber)
		return nil, domainerrors.ErrInvalidOTP.WithDetails("kode OTP sudah kedaluwarsa")
	}
	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(strings.TrimSpace(code))) != 1 {
		return nil, domainerrors.ErrInvalidOTP
	}

	if err := srv.otpRepo.Delete(ctx, customerNumber); err != nil {
		srv.log(ctx).Warn("Failed to delete used OTP", slog.Any("error", err))
	}

	deviceID, ok := srv.directory.FindDeviceIDByPhone(ctx, customerNumber)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	token, err := srv.issueCustomerToken(customerNumber, deviceID)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Token: token, Role: entity.RoleCustomer}, nil
}

func (srv *sessionService) AdminLogin(ctx context.Context, username, password string) (*usecase.SessionOutput, error) {
	role, ok := srv.staffRole(username, password)
	if !ok {
		srv.log(ctx).Warn("Rejected staff login", slog.String("username", username))
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(username, "", entity.Roles{role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "generate token")
	}

	srv.log(ctx).Info("Staff signed in", slog.String("username", username), slog.String("role", role.String()))

	return &usecase.SessionOutput{Token: token, Role: role}, nil
}

// staffRole compares both credential pairs in constant time. A pair with an
// empty username is never matched.
func (srv *sessionService) staffRole(username, password string) (entity.Role, bool) {
	if credentialsMatch(srv.admin.Username, srv.admin.Password, username, password) {
		return entity.RoleAdmin, true
	}
	if credentialsMatch(srv.admin.TechnicianUsername, srv.admin.TechnicianPassword, username, password) {
		return entity.RoleTechnician, true
	}

	return "", false
}

func credentialsMatch(wantUser, wantPass, user, pass string) bool {
	if wantUser == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(wantUser), []byte(user))
	passOK := subtle.ConstantTimeCompare([]byte(wantPass), []byte(pass))

	return userOK&passOK == 1
}

func (srv *sessionService) issueCustomerToken(customerNumber, deviceID string) (string, error) {
	token, err := srv.tokenService.GenerateToken(customerNumber, deviceID, entity.Roles{entity.RoleCustomer}.ToStrings())
	if err != nil {
		return "", errors.Wrap(err, "generate token")
	}

	return token, nil
}

func (srv *sessionService) otpText(code string) string {
	minutes := int(srv.otp.Expiry.Minutes())

	return strings.NewReplacer(
		"{{otp}}", code,
		"{{expiry}}", strconv.Itoa(minutes),
	).Replace(srv.otp.Message)
}

// generateOTP returns a zero-padded numeric code of the given length.
func generateOTP(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
