// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package termcap supplies concrete terminal backends for richtext
// rendering. Backends self-register at init time and are picked by name;
// "auto" prefers the terminfo database and falls back to raw SGR.
package termcap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/framegrace/texeltext/richtext"
)

// Backend resolves marks to escape sequences and knows its own reset
// string, which callers pass to richtext render operations as normal.
type Backend interface {
	richtext.Terminal
	Normal() string
}

// Factory creates a Backend, consulting the environment as needed.
type Factory func() (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a backend factory under a name. Panics on duplicate
// registration.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic("termcap: duplicate registration for " + name)
	}
	registry[name] = factory
}

// Open builds the named backend.
func Open(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("termcap: unknown backend %q (have %v)", name, Backends())
	}
	return factory()
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("auto", func() (Backend, error) {
		if b, err := NewTerminfo(""); err == nil {
			return b, nil
		}
		return SGR{}, nil
	})
}
