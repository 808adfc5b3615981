// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

// Section returns the named section or nil if missing.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills missing keys in a section without overwriting
// existing ones.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section)
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// GetString retrieves a string value from the config.
func (c Config) GetString(section, key, fallback string) string {
	if v, ok := c.lookup(section, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// GetInt retrieves an integer value. JSON numbers decode as float64,
// so both forms are accepted.
func (c Config) GetInt(section, key string, fallback int) int {
	if v, ok := c.lookup(section, key); ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return fallback
}

// GetBool retrieves a boolean value from the config.
func (c Config) GetBool(section, key string, fallback bool) bool {
	if v, ok := c.lookup(section, key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

func (c Config) lookup(section, key string) (interface{}, bool) {
	s := c.Section(section)
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}
