package cache

// Cache is an interface that wraps multiple key value stores
type Cache interface {
	Load(key string) ([]byte, error)
	Store(map[string][]byte) error
	Close()
}
