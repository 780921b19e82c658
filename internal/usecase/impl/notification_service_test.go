package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/message"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 3, 5, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func newTestFormatter() *message.Formatter {
	return message.NewFormatter(message.Branding{ISPName: "NetKita", SupportContact: "081100000000"}, testClock)
}

type notificationServiceFixtures struct {
	service usecase.NotificationUsecase
	sender  *mockSvc.MockMessageSender
}

func createTestNotificationService(t *testing.T, admin, group string) notificationServiceFixtures {
	sender := mockSvc.NewMockMessageSender(t)
	sender.EXPECT().Name().Return("mpwa").Maybe()

	return notificationServiceFixtures{
		service: NewNotificationService(sender, newTestFormatter(), admin, group, testClock, slog.Default()),
		sender:  sender,
	}
}

func TestNotificationService_Send_NormalizesRecipient(t *testing.T) {
	fx := createTestNotificationService(t, "", "")
	ctx := context.Background()

	fx.sender.EXPECT().Send(ctx, "6281234567890", "hai").Return(nil)
	fx.sender.EXPECT().Send(ctx, "120363000000@g.us", "hai grup").Return(nil)

	require.NoError(t, fx.service.Send(ctx, "0812-3456-7890", "hai"))
	require.NoError(t, fx.service.Send(ctx, "120363000000@g.us", "hai grup"))
}

func TestNotificationService_Send_InvalidRecipient(t *testing.T) {
	fx := createTestNotificationService(t, "", "")

	err := fx.service.Send(context.Background(), "n/a", "hai")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_Notify_WrapsBody(t *testing.T) {
	fx := createTestNotificationService(t, "", "")
	ctx := context.Background()

	fx.sender.EXPECT().
		Send(ctx, "6281234567890", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "*Perubahan Pengaturan WiFi*") &&
				strings.Contains(text, "SSID baru") &&
				strings.Contains(text, "NetKita")
		})).
		Return(nil)

	require.NoError(t, fx.service.Notify(ctx, "081234567890", "Perubahan Pengaturan WiFi", "SSID baru"))
}

func TestNotificationService_ReportTrouble(t *testing.T) {
	report := entity.TroubleReport{CustomerNumber: "081234567890", Category: "LOS merah"}

	tests := []struct {
		name      string
		admin     string
		group     string
		setup     func(fx notificationServiceFixtures)
		want      usecase.TroubleReportResult
		wantErrIs error
		wantErr   bool
	}{
		{
			name:      "admin not configured",
			wantErrIs: domainerrors.ErrAdminNotConfigured,
			wantErr:   true,
		},
		{
			name:  "admin only",
			admin: "081100000000",
			setup: func(fx notificationServiceFixtures) {
				fx.sender.EXPECT().Send(mock.Anything, "6281100000000", mock.Anything).Return(nil).Once()
			},
			want: usecase.TroubleReportResult{AdminSent: true},
		},
		{
			name:  "admin and group",
			admin: "081100000000",
			group: "120363000000@g.us",
			setup: func(fx notificationServiceFixtures) {
				fx.sender.EXPECT().Send(mock.Anything, "6281100000000", mock.Anything).Return(nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, "120363000000@g.us", mock.Anything).Return(nil).Once()
			},
			want: usecase.TroubleReportResult{AdminSent: true, GroupSent: true},
		},
		{
			name:  "group leg fails",
			admin: "081100000000",
			group: "120363000000@g.us",
			setup: func(fx notificationServiceFixtures) {
				fx.sender.EXPECT().Send(mock.Anything, "6281100000000", mock.Anything).Return(nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, "120363000000@g.us", mock.Anything).Return(errors.New("rejected")).Once()
			},
			want:    usecase.TroubleReportResult{AdminSent: true},
			wantErr: true,
		},
		{
			name:  "admin leg fails",
			admin: "081100000000",
			group: "120363000000@g.us",
			setup: func(fx notificationServiceFixtures) {
				fx.sender.EXPECT().Send(mock.Anything, "6281100000000", mock.Anything).Return(errors.New("rejected")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t, tt.admin, tt.group)
			if tt.setup != nil {
				tt.setup(fx)
			}

			got, err := fx.service.ReportTrouble(context.Background(), report)
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
		})
	}
}

func TestNotificationService_ReportTrouble_StampsTime(t *testing.T) {
	fx := createTestNotificationService(t, "081100000000", "")
	ctx := context.Background()

	fx.sender.EXPECT().
		Send(ctx, "6281100000000", mock.MatchedBy(func(text string) bool {
			return strings.HasSuffix(text, "Waktu: 16/10/2026 10:05:00")
		})).
		Return(nil)

	_, err := fx.service.ReportTrouble(ctx, entity.TroubleReport{})
	require.NoError(t, err)
}

func TestNotificationService_TestGatewayAndGroup(t *testing.T) {
	ctx := context.Background()

	unconfigured := createTestNotificationService(t, "", "")
	assert.ErrorIs(t, unconfigured.service.TestGateway(ctx), domainerrors.ErrAdminNotConfigured)
	assert.ErrorIs(t, unconfigured.service.TestGroup(ctx), domainerrors.ErrGroupNotConfigured)

	fx := createTestNotificationService(t, "081100000000", "120363000000@g.us")
	fx.sender.EXPECT().Send(ctx, "6281100000000", message.GatewayTestText("NetKita")).Return(nil)
	fx.sender.EXPECT().Send(ctx, "120363000000@g.us", message.GroupTestText("NetKita")).Return(nil)

	require.NoError(t, fx.service.TestGateway(ctx))
	require.NoError(t, fx.service.TestGroup(ctx))
}
