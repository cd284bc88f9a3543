package types

import "errors"

// Config holds backend selection and parameters for Backend.Attach.
type Config struct {
	Backend  string             `json:"backend" yaml:"backend"`
	DataDir  string             `json:"data_dir" yaml:"data_dir"`
	Database string             `json:"database" yaml:"database"`
	Prices   map[string]float64 `json:"prices" yaml:"prices"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultDatabase is the database file name used when Config.Database is empty.
const DefaultDatabase = "farm.db"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrNegativePrice  = errors.New("commodity prices must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	for _, p := range c.Prices {
		if p < 0 {
			return ErrNegativePrice
		}
	}
	return nil
}

// DatabaseFile returns the configured database file name or the default.
func (c Config) DatabaseFile() string {
	if c.Database == "" {
		return DefaultDatabase
	}
	return c.Database
}
