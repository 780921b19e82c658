package service

import (
	"context"
)

// RouterClient issues RouterOS API sentences. params are API words such as
// "=name=alice" or "?name=alice"; each reply row is returned as a map.
type RouterClient interface {
	Write(ctx context.Context, path string, params []string) ([]map[string]string, error)
}
