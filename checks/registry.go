package checks

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry holds checks keyed by name. Build it once at startup and hand it
// to whatever evaluates the checks; reads are safe from many goroutines.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]Check)}
}

// Register builds a Definition and adds it to the registry.
func (r *Registry) Register(name string, columns []string, calc ConditionFunc, describe DescribeFunc) error {
	d, err := NewDefinition(name, columns, calc, describe)
	if err != nil {
		return err
	}
	return r.Add(d)
}

// Add stores c under c.Name(). An existing check with the same name is
// replaced (last write wins) and keeps its position in Names.
func (r *Registry) Add(c Check) error {
	if c == nil {
		return fmt.Errorf("%w: check is nil", ErrInvalidDefinition)
	}
	name := c.Name()
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidDefinition)
	}
	if len(c.Columns()) == 0 {
		return fmt.Errorf("%w: check %q has no columns", ErrInvalidDefinition, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checks[name]; exists {
		slog.Warn("Check registration replaced an existing check", "check", name)
	} else {
		r.order = append(r.order, name)
	}
	r.checks[name] = c
	return nil
}

// MustAdd is like Add but panics on error.
func (r *Registry) MustAdd(c Check) {
	if err := r.Add(c); err != nil {
		panic(err)
	}
}

// Get returns the check registered under name.
func (r *Registry) Get(name string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checks[name]
	return c, ok
}

// Names returns the registered names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Checks returns the registered checks in the same order as Names.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Check, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.checks[name])
	}
	return out
}

// Len returns the number of distinct check names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.checks)
}
