package model

import "context"

// Storage is the object-store abstraction the services persist through.
// Keys are full object paths including the per-user prefix. Download
// returns ErrNotFound for missing keys; Delete of a missing key succeeds.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
