package hashing

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

// Manager is a thread-safe driver registry and dispatcher for password hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and then call [Manager.Make] / [Manager.Check] / [Manager.NeedsRehash]
// through the Manager for all day-to-day hashing operations.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that registers
// every built-in driver with its recommended defaults.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the md5-crypt, bcrypt,
// sha256-crypt, sha512-crypt and salted-digest drivers registered using
// their default options.  The default driver is [DriverSHA512Crypt].
//
// The legacy drivers are registered so that [Manager.CheckWithDetect] can
// verify old hashes and [Manager.NeedsRehash] can flag them for migration.
//
//	m, err := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret") // "$6$..."
func NewDefaultManager() (*Manager, error) {
	return NewManagerFromOptions(DefaultManagerOptions())
}

// ManagerOptions selects the default driver and the options of each built-in
// driver registered by [NewManagerFromOptions].
type ManagerOptions struct {
	Default      DriverName
	Bcrypt       BcryptOptions
	SHA256Crypt  CryptOptions
	SHA512Crypt  CryptOptions
	SaltedDigest SaltedDigestOptions
}

// DefaultManagerOptions returns the options [NewDefaultManager] uses.
func DefaultManagerOptions() ManagerOptions {
	return ManagerOptions{
		Default:      DriverSHA512Crypt,
		Bcrypt:       DefaultBcryptOptions(),
		SHA256Crypt:  CryptOptions{Scheme: salt.SHA256},
		SHA512Crypt:  DefaultCryptOptions(),
		SaltedDigest: DefaultSaltedDigestOptions(),
	}
}

// NewManagerFromOptions creates a Manager with every built-in driver
// registered from opts.  The Scheme fields of the crypt options are forced to
// match their driver.  Returns [ErrInvalidOption] for invalid driver options
// and [ErrDriverNotFound] when opts.Default names no built-in driver.
func NewManagerFromOptions(opts ManagerOptions) (*Manager, error) {
	md5H, err := NewCryptHasher(CryptOptions{Scheme: salt.MD5})
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create md5-crypt hasher: %w", err)
	}
	bcryptH, err := NewBcryptHasher(opts.Bcrypt)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create bcrypt hasher: %w", err)
	}
	opts.SHA256Crypt.Scheme = salt.SHA256
	sha256H, err := NewCryptHasher(opts.SHA256Crypt)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create sha256-crypt hasher: %w", err)
	}
	opts.SHA512Crypt.Scheme = salt.SHA512
	sha512H, err := NewCryptHasher(opts.SHA512Crypt)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create sha512-crypt hasher: %w", err)
	}
	digestH, err := NewSaltedDigestHasher(opts.SaltedDigest)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create salted-digest hasher: %w", err)
	}

	m := NewManager(opts.Default)
	for _, h := range []Hasher{md5H, bcryptH, sha256H, sha512H, digestH} {
		_ = m.RegisterDriver(h.Driver(), h)
	}
	if !m.HasDriver(opts.Default) {
		return nil, fmt.Errorf("%w: %q is not a built-in driver", ErrDriverNotFound, opts.Default)
	}
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager.
// It is safe to call RegisterDriver while other goroutines are using the Manager.
//
// Custom drivers must implement the [Hasher] interface:
//
//	type MyHasher struct{ ... }
//	func (h *MyHasher) Make(password string) (string, error)     { ... }
//	func (h *MyHasher) Check(password, hash string) (bool, error) { ... }
//	// ... (remaining Hasher methods)
//
//	m.RegisterDriver("my-algo", &MyHasher{})
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make], [Manager.Check],
// and [Manager.NeedsRehash].  The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password using the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default driver.
//
// To verify a hash that was produced by a specific (non-default) driver, use
// [Manager.Driver] first:
//
//	h, _ := m.Driver(hashing.DriverBcrypt)
//	ok, err := h.Check(password, hash)
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash by automatically detecting
// which driver produced the hash.  This is useful when hashes from multiple
// drivers coexist (e.g., while moving salted digests to sha512-crypt).
//
// Returns [ErrDriverNotFound] if the detected driver is not registered.
// Returns [ErrInvalidHash] if the hash format is unrecognised.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed.
//
// It returns true when:
//  1. The hash was produced by a different driver than the current default, OR
//  2. The hash was produced by the current default driver but with other
//     parameters (e.g., a different SHA-crypt rounds count).
//
// On the next successful login, callers should call [Manager.Make] and persist
// the new hash when this returns true.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// A different driver always needs a rehash.
	if detected != def {
		return true, nil
	}

	// Same driver: the hasher compares parameters.
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash using the default driver.
//
// To inspect a hash produced by a specific driver, use [Manager.Driver] first.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// InfoWithDetect extracts metadata from hash by automatically detecting
// which driver produced it.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}
