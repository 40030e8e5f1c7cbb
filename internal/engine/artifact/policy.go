package artifact

import (
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/zerr"
)

// EvictionPolicy decides what happens to an entry once no handle references it.
type EvictionPolicy uint8

const (
	// RetainForever keeps every entry for the lifetime of the cache.
	RetainForever EvictionPolicy = iota
	// RefCounted removes an entry when its last handle is released and no
	// other entry depends on it.
	RefCounted
)

// String returns the configuration name of the policy.
func (p EvictionPolicy) String() string {
	switch p {
	case RetainForever:
		return "retain"
	case RefCounted:
		return "refcount"
	default:
		return "unknown"
	}
}

// ParseEvictionPolicy parses a configuration name. The empty string selects RetainForever.
func ParseEvictionPolicy(s string) (EvictionPolicy, error) {
	switch s {
	case "", "retain":
		return RetainForever, nil
	case "refcount":
		return RefCounted, nil
	default:
		return 0, zerr.With(domain.ErrInvalidEvictionPolicy, "policy", s)
	}
}
