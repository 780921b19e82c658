package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"
)

const (
	defaultRouterProfile = "default"
	maxSampledIfaces     = 5
	serviceFieldPPPoE    = "pppoe"
)

var (
	// ErrHotspotUserNotFound is returned when no hotspot user has the given name.
	ErrHotspotUserNotFound = errors.New("hotspot user not found")
	// ErrPPPoESecretNotFound is returned when no PPPoE secret has the given name.
	ErrPPPoESecretNotFound = errors.New("pppoe secret not found")
	// ErrRouterNoData is returned when the router answers a print with no rows.
	ErrRouterNoData = errors.New("router returned no data")
)

type routerService struct {
	client service.RouterClient
	logger *slog.Logger
}

// NewRouterService creates the RouterOS account manager.
func NewRouterService(client service.RouterClient, logger *slog.Logger) usecase.RouterUsecase {
	return &routerService{
		client: client,
		logger: logger,
	}
}

func (srv *routerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func profileOrDefault(profile string) string {
	if strings.TrimSpace(profile) == "" {
		return defaultRouterProfile
	}

	return profile
}

func (srv *routerService) AddHotspotUser(ctx context.Context, username, password, profile string) error {
	_, err := srv.client.Write(ctx, "/ip/hotspot/user/add", []string{
		"=name=" + username,
		"=password=" + password,
		"=profile=" + profileOrDefault(profile),
	})
	if err != nil {
		return errors.Wrap(err, "add hotspot user")
	}

	srv.log(ctx).Info("Hotspot user added", slog.String("username", username))

	return nil
}

func (srv *routerService) RemoveHotspotUser(ctx context.Context, username string) error {
	removed, err := srv.removeByName(ctx, "/ip/hotspot/user", username)
	if err != nil {
		return errors.Wrap(err, "remove hotspot user")
	}
	if !removed {
		return ErrHotspotUserNotFound
	}

	srv.log(ctx).Info("Hotspot user removed", slog.String("username", username))

	return nil
}

// removeByName looks the row up by name and removes it by its .id.
func (srv *routerService) removeByName(ctx context.Context, menu, name string) (bool, error) {
	rows, err := srv.client.Write(ctx, menu+"/print", []string{"?name=" + name})
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	if _, err := srv.client.Write(ctx, menu+"/remove", []string{"=.id=" + rows[0][".id"]}); err != nil {
		return false, err
	}

	return true, nil
}

func (srv *routerService) ActiveHotspotSessions(ctx context.Context) ([]entity.HotspotSession, error) {
	rows, err := srv.client.Write(ctx, "/ip/hotspot/active/print", nil)
	if err != nil {
		return nil, errors.Wrap(err, "list active hotspot users")
	}

	sessions := make([]entity.HotspotSession, 0, len(rows))
	for _, row := range rows {
		user := row["user"]
		if user == "" {
			user = row["name"]
		}
		uptime := row["uptime"]
		if uptime == "" {
			uptime = "0s"
		}
		sessions = append(sessions, entity.HotspotSession{
			User:    user,
			Address: row["address"],
			Uptime:  uptime,
			MAC:     row["mac-address"],
			LoginBy: row["login-by"],
			Comment: row["comment"],
		})
	}

	return sessions, nil
}

func (srv *routerService) AddPPPoESecret(ctx context.Context, username, password, profile string) error {
	_, err := srv.client.Write(ctx, "/ppp/secret/add", []string{
		"=name=" + username,
		"=password=" + password,
		"=profile=" + profileOrDefault(profile),
		"=service=" + serviceFieldPPPoE,
	})
	if err != nil {
		return errors.Wrap(err, "add pppoe secret")
	}

	srv.log(ctx).Info("PPPoE secret added", slog.String("username", username))

	return nil
}

func (srv *routerService) RemovePPPoESecret(ctx context.Context, username string) error {
	removed, err := srv.removeByName(ctx, "/ppp/secret", username)
	if err != nil {
		return errors.Wrap(err, "remove pppoe secret")
	}
	if !removed {
		return ErrPPPoESecretNotFound
	}

	srv.log(ctx).Info("PPPoE secret removed", slog.String("username", username))

	return nil
}

func secretFromRow(row map[string]string) entity.PPPSecret {
	return entity.PPPSecret{
		Name:          row["name"],
		Profile:       row["profile"],
		Service:       row["service"],
		Disabled:      row["disabled"] == "true",
		Comment:       row["comment"],
		LastLoggedOut: row["last-logged-out"],
	}
}

func (srv *routerService) PPPoESecrets(ctx context.Context) ([]entity.PPPSecret, error) {
	rows, err := srv.client.Write(ctx, "/ppp/secret/print", nil)
	if err != nil {
		return nil, errors.Wrap(err, "list pppoe secrets")
	}

	secrets := make([]entity.PPPSecret, 0, len(rows))
	for _, row := range rows {
		secrets = append(secrets, secretFromRow(row))
	}

	return secrets, nil
}

// SetPPPoEProfile drops active sessions after the change so the client
// reconnects under the new profile. Failing to drop them is logged only.
func (srv *routerService) SetPPPoEProfile(ctx context.Context, username, profile string) (int, error) {
	rows, err := srv.client.Write(ctx, "/ppp/secret/print", []string{"?name=" + username})
	if err != nil {
		return 0, errors.Wrap(err, "find pppoe secret")
	}
	if len(rows) == 0 {
		return 0, ErrPPPoESecretNotFound
	}

	if _, err := srv.client.Write(ctx, "/ppp/secret/set", []string{
		"=.id=" + rows[0][".id"],
		"=profile=" + profile,
	}); err != nil {
		return 0, errors.Wrap(err, "set pppoe profile")
	}

	dropped, err := srv.dropActiveSessions(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Failed to drop active PPPoE sessions", slog.String("username", username), slog.Any("error", err))
	}

	srv.log(ctx).Info("PPPoE profile changed", slog.String("username", username), slog.String("profile", profile), slog.Int("droppedSessions", dropped))

	return dropped, nil
}

func (srv *routerService) dropActiveSessions(ctx context.Context, username string) (int, error) {
	active, err := srv.client.Write(ctx, "/ppp/active/print", []string{"?name=" + username})
	if err != nil {
		return 0, err
	}

	dropped := 0
	for _, session := range active {
		if _, err := srv.client.Write(ctx, "/ppp/active/remove", []string{"=.id=" + session[".id"]}); err != nil {
			return dropped, err
		}
		dropped++
	}

	return dropped, nil
}

func (srv *routerService) PPPoEProfiles(ctx context.Context) ([]entity.PPPProfile, error) {
	rows, err := srv.client.Write(ctx, "/ppp/profile/print", nil)
	if err != nil {
		return nil, errors.Wrap(err, "list pppoe profiles")
	}

	profiles := make([]entity.PPPProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, entity.PPPProfile{
			Name:          row["name"],
			RateLimit:     row["rate-limit"],
			LocalAddress:  row["local-address"],
			RemoteAddress: row["remote-address"],
		})
	}

	return profiles, nil
}

func (srv *routerService) OfflinePPPoEUsers(ctx context.Context) ([]entity.PPPSecret, error) {
	secrets, err := srv.client.Write(ctx, "/ppp/secret/print", []string{"?service=" + serviceFieldPPPoE})
	if err != nil {
		return nil, errors.Wrap(err, "list pppoe secrets")
	}

	active, err := srv.client.Write(ctx, "/ppp/active/print", []string{"?service=" + serviceFieldPPPoE})
	if err != nil {
		return nil, errors.Wrap(err, "list active pppoe sessions")
	}

	online := make(map[string]struct{}, len(active))
	for _, row := range active {
		online[row["name"]] = struct{}{}
	}

	var offline []entity.PPPSecret
	for _, row := range secrets {
		secret := secretFromRow(row)
		if _, ok := online[secret.Name]; ok || secret.Disabled {
			continue
		}
		offline = append(offline, secret)
	}

	return offline, nil
}

func (srv *routerService) Resource(ctx context.Context) (*entity.RouterResource, error) {
	resource, err := srv.client.Write(ctx, "/system/resource/print", nil)
	if err != nil {
		return nil, errors.Wrap(err, "read system resource")
	}
	if len(resource) == 0 {
		return nil, ErrRouterNoData
	}

	// Health and identity are optional on some boards.
	health, err := srv.client.Write(ctx, "/system/health/print", nil)
	if err != nil {
		srv.log(ctx).Debug("System health unavailable", slog.Any("error", err))
	}
	identity, err := srv.client.Write(ctx, "/system/identity/print", nil)
	if err != nil {
		srv.log(ctx).Debug("System identity unavailable", slog.Any("error", err))
	}
	ifaces, err := srv.client.Write(ctx, "/interface/print", []string{"?running=true"})
	if err != nil {
		return nil, errors.Wrap(err, "list running interfaces")
	}

	res := resource[0]
	out := &entity.RouterResource{
		BoardName:   res["board-name"],
		Version:     res["version"],
		Uptime:      res["uptime"],
		CPULoad:     res["cpu-load"],
		FreeMemory:  parseInt64(res["free-memory"]),
		TotalMemory: parseInt64(res["total-memory"]),
		FreeHDD:     parseInt64(res["free-hdd-space"]),
		TotalHDD:    parseInt64(res["total-hdd-space"]),
	}
	if len(identity) > 0 {
		out.Identity = identity[0]["name"]
	}
	if len(health) > 0 {
		out.Temperature = health[0]["temperature"]
		out.Voltage = health[0]["voltage"]
		out.CPUTemperature = health[0]["cpu-temperature"]
	}
	for _, row := range ifaces {
		out.RunningIfaces = append(out.RunningIfaces, interfaceFromRow(row))
	}

	return out, nil
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

func interfaceFromRow(row map[string]string) entity.RouterInterface {
	return entity.RouterInterface{
		ID:      row[".id"],
		Name:    row["name"],
		Type:    row["type"],
		Comment: row["comment"],
		Running: row["running"] == "true",
	}
}

// Bandwidth samples each selected interface once. Interfaces whose sample
// fails are left out of the result.
func (srv *routerService) Bandwidth(ctx context.Context) ([]entity.InterfaceTraffic, error) {
	rows, err := srv.client.Write(ctx, "/interface/print", nil)
	if err != nil {
		return nil, errors.Wrap(err, "list interfaces")
	}
	if len(rows) == 0 {
		return nil, ErrRouterNoData
	}

	ifaces := make([]entity.RouterInterface, 0, len(rows))
	for _, row := range rows {
		ifaces = append(ifaces, interfaceFromRow(row))
	}

	selected := SelectMonitoredInterfaces(ifaces)
	samples := make([]entity.InterfaceTraffic, 0, len(selected))
	for _, iface := range selected {
		stats, err := srv.client.Write(ctx, "/interface/monitor-traffic", []string{
			"=interface=" + iface.ID,
			"=once=",
		})
		if err != nil || len(stats) == 0 {
			srv.log(ctx).Debug("Traffic sample failed", slog.String("interface", iface.Name), slog.Any("error", err))
			continue
		}

		samples = append(samples, entity.InterfaceTraffic{
			Interface: iface,
			RxBPS:     float64(parseInt64(stats[0]["rx-bits-per-second"])),
			TxBPS:     float64(parseInt64(stats[0]["tx-bits-per-second"])),
		})
	}

	return samples, nil
}

// SelectMonitoredInterfaces picks at most five interfaces in priority order:
// the WAN port, one wireless, one pppoe-out client, other ethernet ports,
// bridges, then anything else that is running.
func SelectMonitoredInterfaces(ifaces []entity.RouterInterface) []entity.RouterInterface {
	var picked []entity.RouterInterface
	taken := func(iface entity.RouterInterface) bool {
		return slices.ContainsFunc(picked, func(p entity.RouterInterface) bool { return p.Name == iface.Name })
	}
	take := func(limit int, match func(entity.RouterInterface) bool) {
		for _, iface := range ifaces {
			if limit == 0 || len(picked) >= maxSampledIfaces {
				return
			}
			if !taken(iface) && match(iface) {
				picked = append(picked, iface)
				limit--
			}
		}
	}

	take(1, func(i entity.RouterInterface) bool {
		return i.Name == "ether1" || strings.Contains(strings.ToLower(i.Comment), "wan")
	})
	take(1, func(i entity.RouterInterface) bool {
		return i.Type == "wlan" || strings.HasPrefix(i.Name, "wlan")
	})
	take(1, func(i entity.RouterInterface) bool {
		return strings.HasPrefix(i.Name, "pppoe-out")
	})
	take(-1, func(i entity.RouterInterface) bool {
		return i.Type == "ether" && i.Name != "ether1"
	})
	take(-1, func(i entity.RouterInterface) bool {
		return i.Type == "bridge"
	})
	take(-1, func(i entity.RouterInterface) bool {
		return i.Running
	})

	return picked
}
