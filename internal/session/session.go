package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

// DefaultTTL matches the fixed 24-hour window the backend issues
// tokens for.
const DefaultTTL = 24 * time.Hour

// Record is the single persisted session document: the bearer token,
// its absolute expiry and the role it was issued for.
type Record struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Role      entities.Role `json:"role"`
}

// Storage persists the serialized record under one fixed key. Load
// reports a miss with ok=false rather than an error.
type Storage interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Store(ctx context.Context, data []byte, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// Manager is the single source of truth for "is a user authenticated,
// and as what role". Expiry is enforced lazily on read; there is no
// background timer.
type Manager struct {
	logger  *slog.Logger
	storage Storage
	ttl     time.Duration
	now     func() time.Time
}

func NewManager(logger *slog.Logger, storage Storage, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		logger:  logger.With(slog.String("component", "session")),
		storage: storage,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetToken persists the credential with an absolute expiry computed
// from the call time. A leading "Bearer " prefix is stripped so the
// stored token is always the raw credential.
func (m *Manager) SetToken(ctx context.Context, raw string, role entities.Role) error {
	rec := Record{
		Token:     strings.TrimPrefix(raw, "Bearer "),
		ExpiresAt: m.now().Add(m.ttl),
		Role:      role,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return m.storage.Store(ctx, data, m.ttl)
}

// Token returns the stored credential, clearing the record and
// reporting entities.ErrAuthRequired when it is absent, expired or
// malformed.
func (m *Manager) Token(ctx context.Context) (string, error) {
	rec, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	return rec.Token, nil
}

// Role returns the stored role under the same expiry enforcement as
// Token, so a role can never be read from an already-expired record.
func (m *Manager) Role(ctx context.Context) (entities.Role, error) {
	rec, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	return rec.Role, nil
}

// Clear removes the persisted record unconditionally.
func (m *Manager) Clear(ctx context.Context) error {
	return m.storage.Delete(ctx)
}

func (m *Manager) load(ctx context.Context) (Record, error) {
	data, ok, err := m.storage.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, entities.ErrAuthRequired
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Malformed state is treated as absent, never surfaced.
		m.logger.Warn("clearing malformed session record", slog.Any("error", err))
		m.storage.Delete(ctx)
		return Record{}, entities.ErrAuthRequired
	}

	if m.now().After(rec.ExpiresAt) {
		m.logger.Debug("session expired", slog.Time("expiresAt", rec.ExpiresAt))
		if err := m.storage.Delete(ctx); err != nil {
			return Record{}, err
		}
		return Record{}, entities.ErrAuthRequired
	}
	return rec, nil
}
