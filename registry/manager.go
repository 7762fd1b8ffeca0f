package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/keyderive"
)

// Manager is a thread-safe registry of named cipher factories.
//
// Cipher instances are single-use and not safe for concurrent use, so the
// Manager hands out a fresh instance on every [Manager.New] call.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (New, Driver, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Factory
	def     DriverName
}

// Option is a functional option for [NewDefaultManager].
type Option func(*managerOptions)

type managerOptions struct {
	kdf keyderive.Options
	def DriverName
}

// WithKeyDerivation sets the Argon2 parameters used by the
// [DriverVigenere256KDF] driver.  The default is [keyderive.DefaultOptions].
func WithKeyDerivation(opts keyderive.Options) Option {
	return func(o *managerOptions) {
		o.kdf = opts
	}
}

// WithDefaultDriver sets the driver used by [Manager.NewDefault].  The
// default is [DriverVigenere].
func WithDefaultDriver(name DriverName) Option {
	return func(o *managerOptions) {
		o.def = name
	}
}

// NewManager creates an empty Manager with the given default driver name.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Factory),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with every built-in driver
// registered.
//
//	m, err := registry.NewDefaultManager()
//	c, _ := m.New(registry.DriverPlayfair, "playfair example")
//	ct, _ := cipher.Encrypt(c, []byte("hide the gold"))
func NewDefaultManager(opts ...Option) (*Manager, error) {
	o := managerOptions{kdf: keyderive.DefaultOptions(), def: DriverVigenere}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.kdf.Validate(); err != nil {
		return nil, fmt.Errorf("registry: invalid key derivation options: %w", err)
	}

	m := NewManager(o.def)
	_ = m.RegisterDriver(DriverVigenere, newVigenere)
	_ = m.RegisterDriver(DriverVigenereAutokey, newVigenereAutokey)
	_ = m.RegisterDriver(DriverVigenere256, newVigenere256)
	_ = m.RegisterDriver(DriverVigenere256KDF, kdfFactory(o.kdf))
	_ = m.RegisterDriver(DriverPlayfair, newPlayfair)
	_ = m.RegisterDriver(DriverAffine, newAffine)
	_ = m.RegisterDriver(DriverHill, newHill)

	if !m.HasDriver(o.def) {
		return nil, fmt.Errorf("%w: default %q", ErrDriverNotFound, o.def)
	}
	return m, nil
}

// RegisterDriver adds or replaces a named factory.
func (m *Manager) RegisterDriver(name DriverName, f Factory) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if f == nil {
		return ErrNilFactory
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = f
	return nil
}

// Driver returns the [Factory] registered under name, or
// [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Factory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return f, nil
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Drivers returns the registered driver names in sorted order.
func (m *Manager) Drivers() []DriverName {
	m.mu.RLock()
	names := make([]DriverName, 0, len(m.drivers))
	for name := range m.drivers {
		names = append(names, name)
	}
	m.mu.RUnlock()
	slices.Sort(names)
	return names
}

// SetDefaultDriver changes the driver used by [Manager.NewDefault].  The
// named driver must already be registered.
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

// New builds a fresh cipher from the named driver and key text.  Key errors
// keep their cipher and keyparse sentinels.
func (m *Manager) New(name DriverName, key string) (cipher.Cipher, error) {
	f, err := m.Driver(name)
	if err != nil {
		return nil, err
	}
	c, err := f(key)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}
	return c, nil
}

// NewDefault builds a fresh cipher from the default driver.
func (m *Manager) NewDefault(key string) (cipher.Cipher, error) {
	return m.New(m.DefaultDriver(), key)
}
