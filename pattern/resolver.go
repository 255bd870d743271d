/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/stepex/diagnostic"
)

var (
	registryMu sync.Mutex
	registered []Backend
)

// Register makes a back end available to [Registered], [ByName] and the
// default resolver. Back ends call it from an init function, so importing
// the back end's package is enough to install it.
func Register(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = append(registered, b)
}

// Registered returns the registered back ends in registration order.
func Registered() []Backend {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Backend, len(registered))
	copy(out, registered)
	return out
}

// ByName returns the built-in back end for "re2" or the empty string, and
// otherwise the registered back end with that name.
func ByName(name string) (Backend, error) {
	if name == "" || name == RE2Name {
		return RE2(), nil
	}
	for _, b := range Registered() {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: no back end named %q", diagnostic.ErrBackend, name)
}

// Resolver resolves a back end once, on first use. Concurrent first callers
// block until resolution completes; afterwards the result is shared.
type Resolver struct {
	mu       sync.Mutex
	done     bool
	backend  Backend
	err      error
	discover func() []Backend
}

// NewResolver returns a resolver that calls discover on first use. More than
// one discovered back end is an error; none selects RE2.
func NewResolver(discover func() []Backend) *Resolver {
	return &Resolver{discover: discover}
}

// Fixed returns a resolver that always yields b.
func Fixed(b Backend) *Resolver {
	return &Resolver{done: true, backend: b}
}

// Backend returns the resolved back end.
func (r *Resolver) Backend() (Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return r.backend, r.err
	}
	r.done = true

	var found []Backend
	if r.discover != nil {
		found = r.discover()
	}
	switch len(found) {
	case 0:
		r.backend = RE2()
	case 1:
		r.backend = found[0]
	default:
		names := make([]string, len(found))
		for i, b := range found {
			names[i] = b.Name()
		}
		r.err = fmt.Errorf("%w: found more than one back end: %s", diagnostic.ErrBackend, strings.Join(names, ", "))
	}
	return r.backend, r.err
}

var defaultResolver = NewResolver(Registered)

// Default returns the process-wide back end, resolved from [Registered] on
// first use.
func Default() (Backend, error) {
	return defaultResolver.Backend()
}
