// Package registry provides a global registry of window drivers.
// Drivers register themselves in init() functions, so the command can
// list and start them without hardcoded dependencies. A driver package is
// linked in with a blank import; build tags decide which ones exist.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spider-dash/internal/assets"
	"github.com/vovakirdan/spider-dash/internal/config"
)

// DefaultName is the driver used when none is requested.
const DefaultName = "ebiten"

// ErrUnknownDriver is returned by Create for a name nobody registered.
var ErrUnknownDriver = errors.New("unknown driver")

// Options is everything a driver needs to run the game.
type Options struct {
	Config config.SpiderDashConfig
	Assets *assets.Set
	Logger *log.Logger
}

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Driver opens a window and runs the game loop until the window closes.
type Driver interface {
	// Name returns the identifier used by --driver (e.g., "ebiten").
	Name() string

	// Description returns a one-line summary for the drivers command.
	Description() string

	// Run blocks until the player closes the window.
	Run(opts Options) error
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new driver instance.
type Factory func() Driver

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a driver factory to the registry.
// Panics if a driver with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for name := range factories {
		result = append(result, DriverInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
func Create(name string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownDriver, name)
	}

	return f(), nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Default creates DefaultName if it is registered, otherwise the first
// driver in name order.
func Default() (Driver, error) {
	if Exists(DefaultName) {
		return Create(DefaultName)
	}
	if drivers := List(); len(drivers) > 0 {
		return Create(drivers[0].Name)
	}
	return nil, fmt.Errorf("registry: no drivers registered: %w", ErrUnknownDriver)
}

// unregisterAll empties the registry. Tests only.
func unregisterAll() {
	mu.Lock()
	defer mu.Unlock()

	factories = make(map[string]Factory)
	descriptions = make(map[string]string)
}
