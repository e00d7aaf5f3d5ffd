package bucket

import (
	"context"
	"fmt"
	"sync"

	"cos-manager/core/storage"
)

// Factory builds a provider client from a region-scoped configuration.
type Factory func(storage.Config) (storage.Client, error)

// Identity is a connection identity: fixed credentials bound to exactly one
// region. An Identity never changes region in place; retargeting produces a
// new Identity via WithRegion, so handles opened earlier keep the binding
// they were resolved against.
type Identity struct {
	cfg     storage.Config
	client  storage.Client
	factory Factory

	mu        sync.Mutex
	accountID string
}

// NewIdentity connects one region using the default provider client.
func NewIdentity(cfg storage.Config) (*Identity, error) {
	return NewIdentityWith(cfg, storage.NewClient)
}

// NewIdentityWith connects one region using a custom provider factory.
func NewIdentityWith(cfg storage.Config, factory Factory) (*Identity, error) {
	client, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client for region %s: %w", cfg.Region, err)
	}
	return &Identity{cfg: cfg, client: client, factory: factory}, nil
}

// WithRegion returns a new Identity with the same credentials bound to
// another region. The receiver is left untouched.
func (i *Identity) WithRegion(region string) (*Identity, error) {
	cfg := i.cfg
	cfg.Region = region
	return NewIdentityWith(cfg, i.factory)
}

// Region returns the region this identity is bound to.
func (i *Identity) Region() string {
	return i.cfg.Region
}

// Endpoint returns the service host this identity connects to: the
// configured override when set, otherwise the region's derived host.
func (i *Identity) Endpoint() string {
	if i.cfg.Endpoint != "" {
		return i.cfg.Endpoint
	}
	return storage.EndpointForRegion(i.cfg.Region)
}

// AccountID returns the numeric account id for these credentials as seen
// from this identity's endpoint. The first successful answer is retained
// for the identity's lifetime.
func (i *Identity) AccountID(ctx context.Context) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.accountID != "" {
		return i.accountID, nil
	}
	id, err := i.client.AccountID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch account id: %w", err)
	}
	i.accountID = id
	return id, nil
}

// FullBucketName composes the fully qualified name the service addresses a
// bucket by: the short name with the account id suffix.
func (i *Identity) FullBucketName(ctx context.Context, name string) (string, error) {
	id, err := i.AccountID(ctx)
	if err != nil {
		return "", err
	}
	return name + "-" + id, nil
}
