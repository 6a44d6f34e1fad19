package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicate    = errors.New("user with this email or username already exists")
)

type UserStore interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByLogin matches identifier against email or username.
	FindByLogin(ctx context.Context, identifier string) (*User, error)
	Exists(ctx context.Context, email, username string) (bool, error)
	Save(ctx context.Context, u *User) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func (s *GormUserStore) Create(ctx context.Context, u *User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *GormUserStore) FindByLogin(ctx context.Context, identifier string) (*User, error) {
	return s.first(ctx, "email = ? OR username = ?", identifier, identifier)
}

func (s *GormUserStore) Exists(ctx context.Context, email, username string) (bool, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormUserStore) Save(ctx context.Context, u *User) error {
	res := s.DB.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(u)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormUserStore) first(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// MemoryUserStore backs DB_DRIVER=memory and tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[string]User{}}
}

func (s *MemoryUserStore) Create(ctx context.Context, u *User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taken(u.Email, u.Username, "") {
		return ErrDuplicate
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) FindByLogin(ctx context.Context, identifier string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == identifier || u.Username == identifier {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) Exists(ctx context.Context, email, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taken(email, username, ""), nil
}

func (s *MemoryUserStore) Save(ctx context.Context, u *User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.users[u.ID]
	if !ok {
		return ErrUserNotFound
	}
	if s.taken(u.Email, u.Username, u.ID) {
		return ErrDuplicate
	}
	next := *u
	next.CreatedAt = prev.CreatedAt
	s.users[u.ID] = next
	return nil
}

func (s *MemoryUserStore) taken(email, username, except string) bool {
	for id, u := range s.users {
		if id == except {
			continue
		}
		if strings.EqualFold(u.Email, email) || strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}
