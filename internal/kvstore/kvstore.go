package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2025renato/agenda-pet-api/internal/config"
)

// Chaves do armazenamento, no formato herdado do app mobile.
const (
	ClientsKey      = "@Clientes"
	AppointmentsKey = "usuarios"
)

// ErrKeyNotFound indica chave ausente (nunca um erro fatal para quem lê
// listas: chave ausente vira lista vazia na camada de store).
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store é o armazenamento chave/valor por trás das listas de clientes e
// agendamentos. Cada valor é lido e regravado por inteiro.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Open escolhe o driver pelo config.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "", "file":
		return NewFileStore(cfg.DataDir)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword), nil
	case "postgres":
		return NewPostgresStore(cfg.DBUrl)
	default:
		return nil, fmt.Errorf("kvstore: unknown storage driver %q", cfg.StorageDriver)
	}
}
