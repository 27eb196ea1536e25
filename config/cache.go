package config

import "strings"

// Store is anything values can be looked up in and written to by key.
type Store interface {
	Lookup(key string) (any, bool)
	Set(key string, value any)
}

// Cache keeps settings that tools share across activations.
type Cache struct {
	values map[string]any
}

// NewCache creates a cache seeded with a copy of initial.
func NewCache(initial map[string]any) *Cache {
	c := &Cache{values: make(map[string]any, len(initial))}
	for k, v := range initial {
		c.values[k] = v
	}
	return c
}

func (c *Cache) Lookup(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Cache) Set(key string, value any) {
	c.values[key] = value
}

// Proxy returns a view of c whose keys are prefixed with prefix + "/".
func (c *Cache) Proxy(prefix string) *Proxy {
	return &Proxy{cache: c, prefix: strings.TrimSuffix(prefix, "/") + "/"}
}

// Proxy is a prefixed view of a Cache.
type Proxy struct {
	cache  *Cache
	prefix string
}

func (p *Proxy) Lookup(key string) (any, bool) { return p.cache.Lookup(p.prefix + key) }
func (p *Proxy) Set(key string, value any)     { p.cache.Set(p.prefix+key, value) }

// Get returns the value stored under key, or fallback when it is missing or
// cannot be represented as T. Numbers decoded from YAML are converted.
func Get[T any](s Store, key string, fallback T) T {
	raw, ok := s.Lookup(key)
	if !ok {
		return fallback
	}
	if v, ok := raw.(T); ok {
		return v
	}

	var out T
	switch p := any(&out).(type) {
	case *float32:
		f, ok := number(raw)
		if !ok {
			return fallback
		}
		*p = float32(f)
	case *float64:
		f, ok := number(raw)
		if !ok {
			return fallback
		}
		*p = f
	case *int:
		f, ok := number(raw)
		if !ok {
			return fallback
		}
		*p = int(f)
	default:
		return fallback
	}
	return out
}

func number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
