package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/command"
	"portal/internal/domain/entity"
	"portal/internal/domain/message"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/infra/metrics"
	"portal/internal/usecase"
)

// botRequest is one recognized command together with who sent it and what
// it targets.
type botRequest struct {
	msg     entity.InboundMessage
	parsed  command.Parsed
	spec    *command.Spec
	isAdmin bool
	// customer is the number an admin named, empty for the sender's own device.
	customer string
	// value is the argument left once the customer is split off.
	value string
	// deviceID is the resolved target device. Empty for OnBehalfNone commands.
	deviceID string
}

// A commandHandler always returns a reply. A non-nil error only marks the
// reply as a failure for logging and metrics.
type commandHandler func(ctx context.Context, req *botRequest) (string, error)

type botService struct {
	directory  usecase.DirectoryUsecase
	devices    usecase.DeviceUsecase
	router     usecase.RouterUsecase
	notifier   usecase.NotificationUsecase
	formatter  *message.Formatter
	loopFilter *message.LoopFilter
	botSenders map[string]string
	clock      service.Clock
	logger     *slog.Logger

	handlers map[command.ID]commandHandler
}

// BotParams groups the collaborators of the chat bot.
type BotParams struct {
	Directory  usecase.DirectoryUsecase
	Devices    usecase.DeviceUsecase
	Router     usecase.RouterUsecase
	Notifier   usecase.NotificationUsecase
	Formatter  *message.Formatter
	LoopFilter *message.LoopFilter
	// BotSenders maps a gateway name to the number that gateway sends from.
	BotSenders map[string]string
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewBotService creates the chat command dispatcher.
func NewBotService(params BotParams) usecase.BotUsecase {
	srv := &botService{
		directory:  params.Directory,
		devices:    params.Devices,
		router:     params.Router,
		notifier:   params.Notifier,
		formatter:  params.Formatter,
		loopFilter: params.LoopFilter,
		botSenders: params.BotSenders,
		clock:      params.Clock,
		logger:     params.Logger,
	}

	srv.handlers = map[command.ID]commandHandler{
		command.Help:            srv.handleHelp,
		command.Status:          srv.handleStatus,
		command.ConnectedHosts:  srv.handleConnectedHosts,
		command.SetSSID2G:       srv.handleWiFi,
		command.SetSSID5G:       srv.handleWiFi,
		command.SetPassword2G:   srv.handleWiFi,
		command.SetPassword5G:   srv.handleWiFi,
		command.ListDevices:     srv.handleListDevices,
		command.Reboot:          srv.handleReboot,
		command.UserInfo:        srv.handleUserInfo,
		command.AddHotspotUser:  srv.handleAddHotspotUser,
		command.DelHotspotUser:  srv.handleDelHotspotUser,
		command.AddPPPoESecret:  srv.handleAddPPPoESecret,
		command.DelPPPoESecret:  srv.handleDelPPPoESecret,
		command.SetPPPoEProfile: srv.handleSetPPPoEProfile,
		command.PPPoEProfiles:   srv.handlePPPoEProfiles,
		command.HotspotActive:   srv.handleHotspotActive,
		command.PPPoESecrets:    srv.handlePPPoESecrets,
		command.PPPoEOffline:    srv.handlePPPoEOffline,
		command.RouterResource:  srv.handleRouterResource,
		command.Bandwidth:       srv.handleBandwidth,
	}

	return srv
}

func (srv *botService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleMessage classifies the sender on every message; nothing is remembered
// between messages.
func (srv *botService) HandleMessage(ctx context.Context, msg entity.InboundMessage) (string, bool) {
	if srv.loopFilter.ShouldIgnore(msg.Sender, msg.Text, srv.botSenders[strings.ToLower(msg.Gateway)]) {
		srv.log(ctx).Debug("Ignoring looped message", slog.String("sender", msg.Sender))
		return "", false
	}

	parsed, ok := command.Parse(msg.Text)
	if !ok {
		return "", false
	}

	deviceID, registered := srv.directory.FindDeviceIDByPhone(ctx, msg.Sender)
	isAdmin := srv.directory.IsAdmin(msg.Sender)
	if !registered && !isAdmin {
		return srv.formatter.NotRegistered(), true
	}

	spec, ok := command.Lookup(parsed.Keyword)
	if !ok {
		metrics.RecordBotCommand("unknown", metrics.ResultIgnored)
		return "", false
	}

	if spec.AdminOnly && !isAdmin {
		metrics.RecordBotCommand(string(spec.ID), metrics.ResultIgnored)
		return srv.formatter.AdminOnly(), true
	}

	if len(parsed.Tokens()) < spec.MinArgs {
		return srv.formatter.Info(spec.Usage), true
	}

	customer, value := spec.Target(parsed.Args, isAdmin)
	req := &botRequest{
		msg:      msg,
		parsed:   parsed,
		spec:     spec,
		isAdmin:  isAdmin,
		customer: customer,
		value:    value,
	}

	reply, err := srv.run(ctx, req, deviceID)
	if err != nil {
		srv.log(ctx).Warn("Command failed",
			slog.String("command", string(spec.ID)),
			slog.String("sender", msg.Sender),
			slog.Any("error", err))
		metrics.RecordBotCommand(string(spec.ID), metrics.ResultError)
	} else {
		metrics.RecordBotCommand(string(spec.ID), metrics.ResultSuccess)
	}

	return reply, true
}

// errStop marks a reply that ended the command before it reached the ACS or
// the router, such as an unknown customer.
var errStop = errors.New("command stopped")

// run resolves the target device for commands that act on one, then calls
// the command's handler.
func (srv *botService) run(ctx context.Context, req *botRequest, ownDeviceID string) (string, error) {
	if req.spec.OnBehalf != command.OnBehalfNone {
		deviceID, reply, err := srv.target(ctx, req.customer, ownDeviceID)
		if err != nil {
			return reply, err
		}
		req.deviceID = deviceID
	}

	return srv.handlers[req.spec.ID](ctx, req)
}

// target resolves the device a command acts on. An empty customer means the
// sender's own device.
func (srv *botService) target(ctx context.Context, customer, ownDeviceID string) (string, string, error) {
	if customer == "" {
		if ownDeviceID == "" {
			return "", srv.formatter.NotRegistered(), errStop
		}

		return ownDeviceID, "", nil
	}

	deviceID, ok := srv.directory.FindDeviceIDByPhone(ctx, customer)
	if !ok {
		return "", srv.formatter.CustomerNotFound(customer), errStop
	}

	return deviceID, "", nil
}

func (srv *botService) handleHelp(_ context.Context, req *botRequest) (string, error) {
	return srv.formatter.Help(req.isAdmin), nil
}

func (srv *botService) handleStatus(ctx context.Context, req *botRequest) (string, error) {
	snap, err := srv.devices.Snapshot(ctx, req.deviceID)
	if err != nil {
		return srv.formatter.Error(err.Error()), err
	}

	return srv.formatter.Format(message.TitleDeviceStatus, message.StatusBody(*snap)), nil
}

func (srv *botService) handleConnectedHosts(ctx context.Context, req *botRequest) (string, error) {
	hosts, err := srv.devices.ConnectedHosts(ctx, req.deviceID)
	if err != nil {
		return srv.formatter.Error(err.Error()), err
	}

	return srv.formatter.Format(message.TitleConnectedHosts, message.ConnectedHostsBody(hosts)), nil
}

type wifiSetting struct {
	band     entity.WiFiBand
	password bool
	label    string
}

var wifiSettings = map[command.ID]wifiSetting{
	command.SetSSID2G:     {band: entity.Band2G, label: "SSID 2.4G"},
	command.SetSSID5G:     {band: entity.Band5G, label: "SSID 5G"},
	command.SetPassword2G: {band: entity.Band2G, password: true, label: "Password WiFi 2.4G"},
	command.SetPassword5G: {band: entity.Band5G, password: true, label: "Password WiFi 5G"},
}

// handleWiFi writes an SSID or passphrase. When an admin acted for a
// customer, that customer is told about the change.
func (srv *botService) handleWiFi(ctx context.Context, req *botRequest) (string, error) {
	setting := wifiSettings[req.spec.ID]
	value := req.value

	var err error
	if setting.password {
		err = srv.devices.SetPassword(ctx, req.deviceID, setting.band, value)
	} else {
		err = srv.devices.SetSSID(ctx, req.deviceID, setting.band, value)
	}
	if err != nil {
		return srv.formatter.Error(err.Error()), err
	}

	if req.customer != "" {
		notice := message.WiFiChangedNotice(setting.label, value)
		if err := srv.notifier.Notify(ctx, req.customer, message.TitleWiFiChanged, notice); err != nil {
			srv.log(ctx).Warn("Customer notification failed", slog.String("customer", req.customer), slog.Any("error", err))
		}
	}

	return srv.formatter.Success(setting.label, value), nil
}

func (srv *botService) handleListDevices(ctx context.Context, _ *botRequest) (string, error) {
	snaps, err := srv.devices.ListSnapshots(ctx)
	if err != nil {
		return srv.formatter.Error(err.Error()), err
	}

	entries := make([]message.DeviceListEntry, 0, len(snaps))
	for _, s := range snaps {
		entries = append(entries, message.DeviceListEntry{
			CustomerNumber: s.CustomerNumber,
			PPPUsername:    s.PPPUsername,
			PPPoEIP:        s.PPPoEIP,
		})
	}

	return srv.formatter.Format(message.TitleDeviceList, message.DeviceListBody(entries)), nil
}

func (srv *botService) handleReboot(ctx context.Context, req *botRequest) (string, error) {
	if err := srv.devices.Reboot(ctx, req.deviceID); err != nil {
		return srv.formatter.RebootFailed(err.Error()), err
	}

	return srv.formatter.RebootSuccess(), nil
}

func (srv *botService) handleUserInfo(ctx context.Context, req *botRequest) (string, error) {
	device, err := srv.devices.GetDevice(ctx, req.deviceID)
	if err != nil {
		return srv.formatter.Error(err.Error()), err
	}

	snap := entity.NewDeviceSnapshot(device, srv.clock())

	return srv.formatter.Format("", message.UserInfoBody(snap, device.ConnectedHosts())), nil
}

func routerFailure(action string, err error) string {
	return "Gagal " + action + ": " + err.Error()
}

func (srv *botService) handleAddHotspotUser(ctx context.Context, req *botRequest) (string, error) {
	username, password, profile := accountArgs(req.parsed.Tokens())

	if err := srv.router.AddHotspotUser(ctx, username, password, profile); err != nil {
		return srv.formatter.Outcome(false, routerFailure("menambahkan user hotspot", err)), err
	}

	return srv.formatter.Outcome(true, message.AccountCreatedBody(username, password, profile)), nil
}

func (srv *botService) handleDelHotspotUser(ctx context.Context, req *botRequest) (string, error) {
	username := req.value

	err := srv.router.RemoveHotspotUser(ctx, username)
	switch {
	case errors.Is(err, ErrHotspotUserNotFound):
		return srv.formatter.Outcome(false, "User hotspot "+username+" tidak ditemukan"), err
	case err != nil:
		return srv.formatter.Outcome(false, routerFailure("menghapus user hotspot", err)), err
	}

	return srv.formatter.Outcome(true, "User hotspot "+username+" berhasil dihapus"), nil
}

func (srv *botService) handleAddPPPoESecret(ctx context.Context, req *botRequest) (string, error) {
	username, password, profile := accountArgs(req.parsed.Tokens())

	if err := srv.router.AddPPPoESecret(ctx, username, password, profile); err != nil {
		return srv.formatter.Outcome(false, routerFailure("menambahkan secret PPPoE", err)), err
	}

	return srv.formatter.Outcome(true, message.AccountCreatedBody(username, password, profile)), nil
}

func (srv *botService) handleDelPPPoESecret(ctx context.Context, req *botRequest) (string, error) {
	username := req.value

	err := srv.router.RemovePPPoESecret(ctx, username)
	switch {
	case errors.Is(err, ErrPPPoESecretNotFound):
		return srv.formatter.Outcome(false, "Secret PPPoE "+username+" tidak ditemukan"), err
	case err != nil:
		return srv.formatter.Outcome(false, routerFailure("menghapus secret PPPoE", err)), err
	}

	return srv.formatter.Outcome(true, "Secret PPPoE "+username+" berhasil dihapus"), nil
}

func (srv *botService) handleSetPPPoEProfile(ctx context.Context, req *botRequest) (string, error) {
	tokens := req.parsed.Tokens()
	username, profile := tokens[0], tokens[1]

	dropped, err := srv.router.SetPPPoEProfile(ctx, username, profile)
	switch {
	case errors.Is(err, ErrPPPoESecretNotFound):
		return srv.formatter.Outcome(false, "Secret PPPoE "+username+" tidak ditemukan"), err
	case err != nil:
		return srv.formatter.Outcome(false, routerFailure("mengubah profile PPPoE", err)), err
	}

	return srv.formatter.Outcome(true, message.ProfileChangedBody(username, profile, dropped)), nil
}

func (srv *botService) handlePPPoEProfiles(ctx context.Context, _ *botRequest) (string, error) {
	profiles, err := srv.router.PPPoEProfiles(ctx)
	if err != nil {
		return srv.formatter.Outcome(false, routerFailure("mendapatkan daftar profile PPPoE", err)), err
	}

	return srv.formatter.Format(message.TitlePPPoEProfiles, message.PPPoEProfilesBody(profiles)), nil
}

func (srv *botService) handleHotspotActive(ctx context.Context, _ *botRequest) (string, error) {
	sessions, err := srv.router.ActiveHotspotSessions(ctx)
	if err != nil {
		return srv.formatter.Outcome(false, routerFailure("mendapatkan daftar user hotspot aktif", err)), err
	}

	return srv.formatter.Format(message.TitleHotspotUsers, message.HotspotSessionsBody(sessions)), nil
}

func (srv *botService) handlePPPoESecrets(ctx context.Context, _ *botRequest) (string, error) {
	secrets, err := srv.router.PPPoESecrets(ctx)
	if err != nil {
		return srv.formatter.Outcome(false, routerFailure("mendapatkan daftar secret PPPoE", err)), err
	}

	return srv.formatter.Format(message.TitlePPPoESecrets, message.PPPoESecretsBody(secrets)), nil
}

func (srv *botService) handlePPPoEOffline(ctx context.Context, _ *botRequest) (string, error) {
	secrets, err := srv.router.OfflinePPPoEUsers(ctx)
	if err != nil {
		return srv.formatter.Outcome(false, routerFailure("mendapatkan daftar user PPPoE offline", err)), err
	}

	return srv.formatter.Format(message.TitlePPPoEOffline, message.OfflinePPPoEBody(secrets)), nil
}

func (srv *botService) handleRouterResource(ctx context.Context, _ *botRequest) (string, error) {
	resource, err := srv.router.Resource(ctx)
	switch {
	case errors.Is(err, ErrRouterNoData):
		return srv.formatter.Outcome(false, "Tidak dapat mendapatkan informasi resource router"), err
	case err != nil:
		return srv.formatter.Outcome(false, routerFailure("mendapatkan informasi resource router", err)), err
	}

	return srv.formatter.Format(message.TitleRouterResource, message.ResourceBody(*resource)), nil
}

func (srv *botService) handleBandwidth(ctx context.Context, _ *botRequest) (string, error) {
	samples, err := srv.router.Bandwidth(ctx)
	switch {
	case errors.Is(err, ErrRouterNoData):
		return srv.formatter.Outcome(false, "Tidak dapat mendapatkan daftar interface router"), err
	case err != nil:
		return srv.formatter.Outcome(false, routerFailure("mendapatkan informasi bandwidth router", err)), err
	}

	return srv.formatter.Format(message.TitleRouterBandwidth, message.BandwidthBody(samples)), nil
}

// accountArgs reads "username password [profile]".
func accountArgs(tokens []string) (username, password, profile string) {
	profile = defaultRouterProfile
	if len(tokens) > 2 {
		profile = tokens[2]
	}

	return tokens[0], tokens[1], profile
}
