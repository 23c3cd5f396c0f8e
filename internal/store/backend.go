package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// Sentinel errors of the store package
var (
	// ErrKeyNotFound возвращается backend'ом, когда ключ отсутствует
	ErrKeyNotFound = errors.New("key not found")
	// ErrPersistenceWrite - backend отклонил запись; состояние в памяти при этом не откатывается
	ErrPersistenceWrite = errors.New("persistence write failed")
	// ErrInvalidIncident - инцидент не прошел валидацию и не был добавлен
	ErrInvalidIncident = errors.New("invalid incident")
	// ErrDuplicateIncident - инцидент с таким id уже есть в коллекции
	ErrDuplicateIncident = errors.New("duplicate incident id")
)

// Backend определяет контракт key-value хранилища, в котором живет состояние сессии
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
