package memory

import (
	"context"
	"fmt"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type UserStore struct {
	mu     sync.Mutex
	users  []*entity.User
	nextID int64
	log    *zap.Logger
}

var _ repository.UserRepository = (*UserStore)(nil)

func NewUserStore(log *zap.Logger) *UserStore {
	return &UserStore{
		nextID: 1,
		log:    log.With(zap.String("repository", "user_memory")),
	}
}

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("username already exists: %s", user.Username)
		}
	}

	user.ID = s.nextID
	s.nextID++

	stored := *user
	s.users = append(s.users, &stored)

	return nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}

	return nil, nil
}
