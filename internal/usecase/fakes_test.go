package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinerank-auth/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

// memOTPRepo mimics the otps table, including the conditional consume.
type memOTPRepo struct {
	mu         sync.Mutex
	rows       []entity.OTP
	nextID     int64
	replaceErr error
}

func (m *memOTPRepo) Replace(_ context.Context, otp *entity.OTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.replaceErr != nil {
		return m.replaceErr
	}

	kept := m.rows[:0]
	for _, row := range m.rows {
		if row.Target != otp.Target || row.Consumed {
			kept = append(kept, row)
		}
	}
	m.rows = kept

	m.nextID++
	otp.ID = m.nextID
	otp.CreatedAt = time.Now()
	otp.Consumed = false
	m.rows = append(m.rows, *otp)
	return nil
}

func (m *memOTPRepo) FindLatest(_ context.Context, target string) (*entity.OTP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *entity.OTP
	for i := range m.rows {
		if m.rows[i].Target == target && (latest == nil || m.rows[i].ID > latest.ID) {
			row := m.rows[i]
			latest = &row
		}
	}
	return latest, nil
}

func (m *memOTPRepo) Consume(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].ID == id {
			if m.rows[i].Consumed {
				return false, nil
			}
			m.rows[i].Consumed = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memOTPRepo) count(target string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, row := range m.rows {
		if row.Target == target {
			n++
		}
	}
	return n
}

// memUserRepo mimics the users table with its unique email and username.
// Every write stamps updated_at one second after the previous write.
type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]entity.User
	writes int
	err    error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (m *memUserRepo) Upsert(_ context.Context, user *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	for id, other := range m.users {
		if id == user.ID {
			continue
		}
		if sameValue(other.Email, user.Email) {
			return nil, fmt.Errorf("upsert user %s: email already in use: %w", user.ID, entity.ErrConflict)
		}
		if sameValue(other.Username, user.Username) {
			return nil, fmt.Errorf("upsert user %s: username already in use: %w", user.ID, entity.ErrConflict)
		}
	}

	m.writes++
	stored := *user
	stored.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.writes) * time.Second)
	m.users[user.ID] = stored
	return &stored, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	return m.find(func(u entity.User) bool { return u.ID == id })
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.find(func(u entity.User) bool { return u.Email != nil && *u.Email == email })
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return m.find(func(u entity.User) bool { return u.Username != nil && *u.Username == username })
}

func (m *memUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func sameValue(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendCode(ctx context.Context, target, code string, validity time.Duration) error {
	args := m.Called(target, code, validity)
	return args.Error(0)
}

var errDatabaseDown = errors.New("database down")
