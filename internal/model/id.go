package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Public ID prefixes. These are the identifiers shown to people and used
// in URLs; database primary keys stay internal.
const (
	OrderIDPrefix    = "ORD"
	CustomerIDPrefix = "CUST"
	AdminIDPrefix    = "ADMIN"
)

// NewPublicID builds a human-readable identifier like ORD-1724800000000-3f2a1b9c.
// The timestamp keeps IDs roughly sortable; the uuid fragment makes them unique.
func NewPublicID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}
