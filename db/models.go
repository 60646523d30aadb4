package db

import (
	"time"

	"gorm.io/gorm"
)

// TrackedMod is a locally cached tracked-mod entry, refreshed from the
// API on each sync. It exists so `list --offline` works without a key.
type TrackedMod struct {
	gorm.Model
	DomainName string `gorm:"uniqueIndex:idx_domain_mod"` // Game domain slug (e.g. "skyrim")
	ModID      uint64 `gorm:"uniqueIndex:idx_domain_mod"` // Server-confirmed mod id
	LastSeen   time.Time
}

// EndorsementRecord caches one entry of the user's endorsement history.
type EndorsementRecord struct {
	gorm.Model
	DomainName string `gorm:"index"`
	ModID      uint64
	Status     string // "Endorsed" or "Undecided"
	Version    string
	EndorsedAt time.Time
}
