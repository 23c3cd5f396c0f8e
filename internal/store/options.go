package store

// DefaultKeyPrefix - пространство имен ключей по умолчанию
const DefaultKeyPrefix = "crc_"

// Option настраивает Store
type Option func(*Store)

// WithKeyPrefix задает префикс ключей коллекций в backend'е
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithObserver подключает наблюдателя за операциями хранилища (метрики)
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// Observer получает уведомления о событиях персистентности
type Observer interface {
	PersistenceReadFallback(collection string)
	PersistenceWriteFailed(collection string)
}

type nopObserver struct{}

func (nopObserver) PersistenceReadFallback(string) {}
func (nopObserver) PersistenceWriteFailed(string)  {}
