package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// RouterUsecase manages hotspot and PPPoE accounts on the RouterOS gateway.
type RouterUsecase interface {
	AddHotspotUser(ctx context.Context, username, password, profile string) error
	RemoveHotspotUser(ctx context.Context, username string) error
	ActiveHotspotSessions(ctx context.Context) ([]entity.HotspotSession, error)

	AddPPPoESecret(ctx context.Context, username, password, profile string) error
	RemovePPPoESecret(ctx context.Context, username string) error
	PPPoESecrets(ctx context.Context) ([]entity.PPPSecret, error)
	// SetPPPoEProfile changes the profile and drops the user's active sessions,
	// returning how many were dropped.
	SetPPPoEProfile(ctx context.Context, username, profile string) (int, error)
	PPPoEProfiles(ctx context.Context) ([]entity.PPPProfile, error)
	OfflinePPPoEUsers(ctx context.Context) ([]entity.PPPSecret, error)

	Resource(ctx context.Context) (*entity.RouterResource, error)
	// Bandwidth samples the traffic of up to five notable interfaces.
	Bandwidth(ctx context.Context) ([]entity.InterfaceTraffic, error)
}
