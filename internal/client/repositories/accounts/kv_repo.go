package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/google/uuid"
)

// StorageKey is the storage key holding the JSON array of accounts.
const StorageKey = "@mock_users"

// KVRepository keeps the whole account collection under StorageKey.
//
// The collection is read in full on first use and cached for the lifetime of
// the repository. Every Create rewrites the full collection. A stored value
// that does not decode is logged and treated as an empty collection; a
// storage read error is returned and nothing is cached.
type KVRepository struct {
	store storage.Repository
	log   logging.Logger
	newID func() string

	mu       sync.Mutex
	loaded   bool
	accounts []models.Account
}

type Option func(*KVRepository)

// WithIDGenerator replaces the uuid generator used for new accounts.
func WithIDGenerator(fn func() string) Option {
	return func(r *KVRepository) { r.newID = fn }
}

func NewKVRepository(store storage.Repository, log logging.Logger, opts ...Option) *KVRepository {
	r := &KVRepository{
		store: store,
		log:   log.With("component", "accounts"),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// load fills the cache on first use. Callers must hold r.mu.
func (r *KVRepository) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	data, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read accounts: %w", err)
	}

	var list []models.Account
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			r.log.Warn(ctx, "stored accounts are malformed, starting empty", "key", StorageKey, "error", err)
			list = nil
		}
	}

	r.accounts = list
	r.loaded = true
	return nil
}

func (r *KVRepository) find(email string) (models.Account, bool) {
	normalized := models.NormalizeEmail(email)
	for _, a := range r.accounts {
		if models.NormalizeEmail(a.Email) == normalized {
			return a, true
		}
	}
	return models.Account{}, false
}

func (r *KVRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return nil, err
	}

	a, found := r.find(email)
	if !found {
		return nil, nil
	}
	return &a, nil
}

func (r *KVRepository) Exists(ctx context.Context, email string) (bool, error) {
	a, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

func (r *KVRepository) Create(ctx context.Context, name, email, password string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return nil, err
	}

	account := models.Account{
		ID:       r.newID(),
		Name:     strings.TrimSpace(name),
		Email:    models.NormalizeEmail(email),
		Password: password,
	}

	next := append(slices.Clip(r.accounts), account)

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, data); err != nil {
		return nil, fmt.Errorf("failed to write accounts: %w", err)
	}

	r.accounts = next
	r.log.Debug(ctx, "account created", "id", account.ID)
	return &account, nil
}

// List returns a copy of the collection in creation order.
func (r *KVRepository) List(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.accounts), nil
}
