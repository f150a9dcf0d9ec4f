package types

import "errors"

// Config holds backend selection and parameters for opening the store.
type Config struct {
	Backend    string     `json:"backend" yaml:"backend"`
	DataDir    string     `json:"data_dir" yaml:"data_dir"`
	ListenAddr string     `json:"listen_addr" yaml:"listen_addr"`
	RedisAddr  string     `json:"redis_addr" yaml:"redis_addr"`
	RedisDB    int        `json:"redis_db" yaml:"redis_db"`
	Capacities Capacities `json:"capacities" yaml:"capacities"`
}

// Capacities are the fixed per-collection ceilings. Inserts past a ceiling
// are rejected, never evicted.
type Capacities struct {
	MaxUsers       int `json:"max_users" yaml:"max_users"`
	MaxItems       int `json:"max_items" yaml:"max_items"`
	MaxConsumption int `json:"max_consumption" yaml:"max_consumption"`
	MaxPayments    int `json:"max_payments" yaml:"max_payments"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrCapacityNotPositive = errors.New("capacity ceilings must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendRedis:  true,
}

// DefaultCapacities returns the ceilings used when a config omits them.
func DefaultCapacities() Capacities {
	return Capacities{
		MaxUsers:       20,
		MaxItems:       50,
		MaxConsumption: 500,
		MaxPayments:    200,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return c.Capacities.Validate()
}

// Validate checks that every ceiling is positive.
func (c Capacities) Validate() error {
	if c.MaxUsers <= 0 || c.MaxItems <= 0 || c.MaxConsumption <= 0 || c.MaxPayments <= 0 {
		return ErrCapacityNotPositive
	}
	return nil
}
