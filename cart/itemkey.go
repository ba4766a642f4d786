package cart

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/models"
)

// DeriveItemKey computes the identity of a cart line from the menu item
// and its modifier set. The modifiers are canonicalized first, so the
// same selections in any order produce the same key, and the key is
// stable across processes (no salt, no counters). Name and PriceDelta
// are display data and do not participate.
func DeriveItemKey(menuItemID uuid.UUID, modifiers []models.Modifier) string {
	h := sha256.New()
	h.Write(menuItemID[:])
	for _, m := range canonicalizeModifiers(modifiers) {
		h.Write(m.GroupID[:])
		h.Write(m.OptionID[:])
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// canonicalizeModifiers returns a copy sorted by (groupID, optionID)
// with duplicate selections collapsed; the first occurrence wins.
func canonicalizeModifiers(modifiers []models.Modifier) []models.Modifier {
	sorted := make([]models.Modifier, len(modifiers))
	copy(sorted, modifiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].GroupID != sorted[j].GroupID {
			return bytes.Compare(sorted[i].GroupID[:], sorted[j].GroupID[:]) < 0
		}
		return bytes.Compare(sorted[i].OptionID[:], sorted[j].OptionID[:]) < 0
	})

	out := sorted[:0]
	for _, m := range sorted {
		if len(out) > 0 {
			last := out[len(out)-1]
			if last.GroupID == m.GroupID && last.OptionID == m.OptionID {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
