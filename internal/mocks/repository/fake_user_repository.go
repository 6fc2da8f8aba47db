package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"zeneasy/internal/domain/entity"
	"zeneasy/internal/domain/repository"

	"github.com/google/uuid"
)

// FakeUserRepository is an in-memory UserRepository with the same OTP
// semantics as the database implementation. It is meant for flow tests where
// call-by-call expectations would obscure the behaviour under test.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

var _ repository.UserRepository = (*FakeUserRepository)(nil)

// NewFakeUserRepository creates an empty fake.
func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (f *FakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (f *FakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var oldest *entity.User
	for _, user := range f.users {
		if user.Email != email {
			continue
		}
		if oldest == nil || user.CreatedAt.Before(oldest.CreatedAt) {
			oldest = user
		}
	}

	if oldest == nil {
		return nil, repository.ErrUserNotFound
	}

	clone := *oldest

	return &clone, nil
}

func (f *FakeUserRepository) List(_ context.Context, offset, limit int) ([]*entity.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		clone := *user
		all = append(all, &clone)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.User{}, total, nil
	}

	return all[offset:min(offset+limit, len(all))], total, nil
}

func (f *FakeUserRepository) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if user.Status == "" {
		user.Status = entity.StatusActive
	}
	user.RentPosts = []uuid.UUID{}
	user.ProfessionalProfiles = []uuid.UUID{}

	clone := *user
	f.users[id] = &clone

	return nil
}

func (f *FakeUserRepository) UpdateDetails(_ context.Context, id uuid.UUID, details *entity.UserDetails) error {
	return f.update(id, func(user *entity.User) {
		if details.Name != nil {
			user.Name = *details.Name
		}
		if details.PhoneNumber != nil {
			user.PhoneNumber = *details.PhoneNumber
		}
		if details.Address != nil {
			user.Address = *details.Address
		}
	})
}

func (f *FakeUserRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return f.update(id, func(user *entity.User) { user.Status = status })
}

func (f *FakeUserRepository) SetOTP(_ context.Context, id uuid.UUID, code string, issuedAt time.Time) error {
	return f.update(id, func(user *entity.User) {
		user.OTP = code
		user.OTPIssuedAt = &issuedAt
	})
}

func (f *FakeUserRepository) ConsumeOTP(_ context.Context, id uuid.UUID, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok || user.OTP == "" || user.OTP != code {
		return repository.ErrOTPMismatch
	}

	user.OTP = ""
	user.IsVerified = true

	return nil
}

func (f *FakeUserRepository) ClearExpiredOTPs(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var cleared int64
	for _, user := range f.users {
		if user.OTP != "" && user.OTPIssuedAt != nil && user.OTPIssuedAt.Before(cutoff) {
			user.OTP = ""
			cleared++
		}
	}

	return cleared, nil
}

func (f *FakeUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)

	return nil
}

// StoredOTP exposes the persisted code for assertions.
func (f *FakeUserRepository) StoredOTP(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[id]; ok {
		return user.OTP
	}

	return ""
}

func (f *FakeUserRepository) update(id uuid.UUID, apply func(*entity.User)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	apply(user)
	user.UpdatedAt = time.Now()

	return nil
}
