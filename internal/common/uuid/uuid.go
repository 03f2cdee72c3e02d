package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/dball/internal/common/uuid UUID

// UUID hands out identifiers for tickets and draws
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues random (v4) UUIDs, optionally with a fixed prefix such as "tkt_"
type DefaultUUID struct {
	prefix string
}

// New returns a generator of bare UUIDs
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewWithPrefix returns a generator whose IDs start with prefix
func NewWithPrefix(prefix string) *DefaultUUID {
	return &DefaultUUID{prefix: prefix}
}

// NewUUID returns a new identifier
func (d *DefaultUUID) NewUUID() string {
	return d.prefix + uuid.New().String()
}
