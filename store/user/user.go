package user

import (
	"context"
	"log/slog"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
)

func New(properties core.PropertyStore, logger *slog.Logger) core.UserStore {
	return &userStore{
		properties: properties,
		logger:     logger.With("store", "user"),
	}
}

type userStore struct {
	properties core.PropertyStore
	logger     *slog.Logger
}

func (s *userStore) Find(ctx context.Context) (*core.User, error) {
	var user core.User
	if err := s.properties.Get(ctx, store.KeyUser, &user); err != nil {
		if !store.IsErrCorrupted(err) {
			return nil, err
		}

		// unreadable records fall back to the logged out user
		s.logger.Error("properties.Get", "key", store.KeyUser, "err", err)
		return &core.User{}, nil
	}

	return &user, nil
}

func (s *userStore) Save(ctx context.Context, user *core.User) error {
	return s.properties.Set(ctx, store.KeyUser, user)
}

func (s *userStore) Reset(ctx context.Context) error {
	return s.properties.Remove(ctx, store.KeyUser)
}
