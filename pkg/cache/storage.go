package cache

// Storage is the operation set shared by SimpleLRU and its concurrent wrappers.
type Storage interface {
	Put(key, value []byte) bool
	PutIfAbsent(key, value []byte) bool
	Set(key, value []byte) bool
	Delete(key []byte) bool
	Get(key []byte) ([]byte, bool)
}

var (
	_ Storage = (*SimpleLRU)(nil)
	_ Storage = (*Locked)(nil)
	_ Storage = (*Sharded)(nil)
)

// Config describes a store loaded from the environment.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"1048576"`
	Shards   int `env:"CACHE_SHARDS" envDefault:"1"`
}

// NewFromConfig builds a sharded store from cfg. A single shard behaves like Locked.
func NewFromConfig(cfg Config, opts ...Option) (*Sharded, error) {
	return NewSharded(cfg.Capacity, cfg.Shards, opts...)
}
