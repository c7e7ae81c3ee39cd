package service

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrDuplicate  = errors.New("service already registered")
	ErrUnknownDep = errors.New("unregistered dependency")
	ErrCycle      = errors.New("circular dependency")
	ErrNotFound   = errors.New("service not found")
)

// Hub owns the optional subsystems and drives them through their lifecycle
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // dependencies first, nil until resolved
	running  []string // started services, in start order
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds svc under its name
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Get returns the service registered as name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Lookup returns the service registered as name typed as T
func Lookup[T any](h *Hub, name string) (T, error) {
	var zero T
	svc, ok := h.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("service %s is %T", name, svc)
	}
	return typed, nil
}

// InitAll configures every service, dependencies first, passing args[name]
// A failure stops whatever was already configured
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.order = order
	}

	_, err := h.each("init", func(svc Service) error {
		return svc.Init(args[svc.Name()]...)
	})
	return err
}

// StartAll starts every service in dependency order
// A failure stops the services started before it
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	done, err := h.each("start", Service.Start)
	if err == nil {
		h.running = done
	}
	return err
}

// StopAll stops running services, dependents first, and joins their errors
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.unwind(h.running)
	h.running = nil
	return err
}

// Order returns the resolved lifecycle order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}

// Names returns the registered names sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.namesLocked()
}

// each applies step along the resolved order, unwinding the finished prefix on failure
func (h *Hub) each(phase string, step func(Service) error) ([]string, error) {
	done := make([]string, 0, len(h.order))
	for _, name := range h.order {
		if err := step(h.services[name]); err != nil {
			err = fmt.Errorf("service %s %s: %w", name, phase, err)
			return nil, errors.Join(err, h.unwind(done))
		}
		done = append(done, name)
	}
	return done, nil
}

// unwind stops names in reverse
func (h *Hub) unwind(names []string) error {
	var errs []error
	for _, name := range slices.Backward(names) {
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// resolve orders services so each follows its dependencies
// Services are visited by name, which keeps the order stable across runs
func (h *Hub) resolve() ([]string, error) {
	const (
		visiting = iota + 1
		placed
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case placed:
			return nil
		case visiting:
			return fmt.Errorf("%w through %s", ErrCycle, name)
		}
		state[name] = visiting
		deps := slices.Sorted(slices.Values(h.services[name].Dependencies()))
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("service %s: %w %s", name, ErrUnknownDep, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = placed
		order = append(order, name)
		return nil
	}

	for _, name := range h.namesLocked() {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (h *Hub) namesLocked() []string {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
