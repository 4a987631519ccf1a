package storage

import (
	"net/url"
	"strings"
)

// Store is the durable key-value substrate every domain module persists
// through. Values are JSON-serialized collections (or scalars), one per key.
//
// There is no transaction spanning multiple keys. The relationships module
// persists people and anniversaries under independent keys, so a crash
// between the two writes can leave them inconsistent; the doctor command
// detects (and can repair) the orphaned-anniversary case that ordering makes
// the only reachable one.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key. An absent key is (nil, false, nil),
	// not an error.
	Get(key string) ([]byte, bool, error)
	// Set durably stores value under key, replacing any prior value.
	Set(key string, value []byte) error

	// Path returns the location backing this store (file path or DSN).
	Path() string
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Embedded credentials end up in shell history and process
// listings, so main refuses them and points at the keyring instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		// Unparseable strings are handled (and rejected) by the driver.
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// IsPostgres reports whether the config string selects the Postgres substrate.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// IsSQLite reports whether the config path selects the SQLite substrate.
func IsSQLite(config string) bool {
	return strings.HasSuffix(config, ".db") || strings.HasSuffix(config, ".sqlite")
}
