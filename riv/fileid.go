package riv

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// NewFileID generates a random 64-bit file_id by reading the first 8
// bytes of a random UUIDv4 as a little-endian integer. The runtime treats file_id as an opaque
// provenance tag (spec §9 Open Questions); a UUID-derived value gives
// every unpinned Compile call a collision-resistant id without the
// package inventing its own random source.
func NewFileID() uint64 {
	u := uuid.New()
	return binary.LittleEndian.Uint64(u[:8])
}

func resolveFileID(cfg Config) uint64 {
	if cfg.FileID != nil {
		return *cfg.FileID
	}
	return NewFileID()
}
