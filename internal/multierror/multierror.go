package multierror

import (
	"cmp"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Error combines multiple errors keyed by the thing that failed, for example
// a host name. Keys are reported in ascending order so that the message is
// stable between runs.
type Error[K cmp.Ordered] struct {
	mu     sync.Mutex
	errors map[K]error
}

// New creates a new Error.
func New[K cmp.Ordered]() *Error[K] {
	return &Error[K]{
		errors: make(map[K]error),
	}
}

func (m *Error[K]) sortedKeys() []K {
	keys := make([]K, 0, len(m.errors))
	for k := range m.errors {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Error returns a string representation of the error.
func (m *Error[K]) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := make([]string, 0, len(m.errors))
	for _, k := range m.sortedKeys() {
		parts = append(parts, fmt.Sprintf("%v: %s", k, m.errors[k]))
	}

	return strings.Join(parts, "; ")
}

// Unwrap returns the combined errors in key order.
func (m *Error[K]) Unwrap() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make([]error, 0, len(m.errors))
	for _, k := range m.sortedKeys() {
		errs = append(errs, m.errors[k])
	}

	return errs
}

// Len returns the number of errors.
func (m *Error[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.errors)
}

// Keys returns the keys that have an error, in ascending order.
func (m *Error[K]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sortedKeys()
}

// Add records err under key. A nil error is ignored.
func (m *Error[K]) Add(key K, err error) {
	if err == nil {
		return
	}

	m.mu.Lock()
	m.errors[key] = err
	m.mu.Unlock()
}

// Get returns an error by key.
func (m *Error[K]) Get(key K) (error, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	err, ok := m.errors[key]

	return err, ok
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[K]) Combined() error {
	if m.Len() == 0 {
		return nil
	}

	return m
}
