package datasource

import (
	"fmt"
	"sort"
	"sync"

	"market-charts/src/interfaces"
	"market-charts/src/logger"
)

// SourceRegistry holds the configured history sources by name.
type SourceRegistry struct {
	Sources     map[string]interfaces.IHistorySource
	DefaultName string
	Logger      *logger.Logger
	mu          sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewSourceRegistry(defaultName string, sources []interfaces.IHistorySource, log *logger.Logger) (*SourceRegistry, error) {
	r := &SourceRegistry{
		Sources:     make(map[string]interfaces.IHistorySource),
		DefaultName: defaultName,
		Logger:      log,
	}
	for _, s := range sources {
		if err := r.AddSource(s); err != nil {
			return nil, err
		}
	}
	if _, ok := r.Sources[defaultName]; !ok {
		return nil, fmt.Errorf("default source %s is not registered", defaultName)
	}
	return r, nil
}

// -----------------------------------------------------------------------------

func (r *SourceRegistry) AddSource(source interfaces.IHistorySource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := source.Name()
	if _, exists := r.Sources[name]; exists {
		return fmt.Errorf("source %s already exists", name)
	}
	r.Sources[name] = source
	if r.Logger != nil {
		r.Logger.Info("Added history source: %s", name)
	}
	return nil
}

// -----------------------------------------------------------------------------

// Get returns the named source, or the default when name is empty or unknown.
func (r *SourceRegistry) Get(name string) interfaces.IHistorySource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.Sources[name]; ok {
		return s
	}
	return r.Sources[r.DefaultName]
}

// -----------------------------------------------------------------------------

// Default returns the configured default source.
func (r *SourceRegistry) Default() interfaces.IHistorySource {
	return r.Get(r.DefaultName)
}

// -----------------------------------------------------------------------------

// Names lists registered sources in sorted order.
func (r *SourceRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.Sources))
	for name := range r.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
