package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/djcade32/stock-pulse/internal/model"
)

// digestLen is the length of the hex digests in characters. 16 hex chars is
// 64 bits of entropy — negligible collision risk at a few thousand events.
// No collision-handling policy is defined beyond that assumption.
const digestLen = 16

// fieldSep separates fields in the canonical serialization. Unit separator
// keeps "a"+"bc" and "ab"+"c" from canonicalizing identically.
const fieldSep = "\x1f"

// IdentityKey returns the event's logical identity digest.
// Field order is fixed here; callers cannot influence it.
func IdentityKey(ev model.MacroEvent) string {
	return digest(ev.Source, ev.Title, ev.Date, ev.SpanEnd)
}

// ContentHash returns a digest of the event's displayed content.
// It deliberately excludes LastCheckedAt so that re-checking an unchanged
// event yields the same hash.
func ContentHash(ev model.MacroEvent) string {
	return digest(ev.Category, ev.Date, ev.Time, ev.Timezone, ev.SpanEnd, ev.Source)
}

// digest hashes the fields in order and truncates to digestLen hex chars.
func digest(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, fieldSep)))
	return hex.EncodeToString(sum[:])[:digestLen]
}
