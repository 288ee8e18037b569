package core

import "context"

//go:generate mockgen -source=property.go -destination=mocks/property.go -package=mocks

type PropertyStore interface {
	// Get leaves value untouched if key is missing
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}
