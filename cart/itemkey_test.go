package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/models"
)

func TestDeriveItemKey_OrderIndependent(t *testing.T) {
	menuItemID := uuid.New()
	size := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Large", PriceDelta: 2}
	milk := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Oat milk", PriceDelta: 0.5}
	shot := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Extra shot", PriceDelta: 1}

	a := DeriveItemKey(menuItemID, []models.Modifier{size, milk, shot})
	b := DeriveItemKey(menuItemID, []models.Modifier{shot, size, milk})
	c := DeriveItemKey(menuItemID, []models.Modifier{milk, shot, size})

	if a != b || b != c {
		t.Errorf("expected one key for all orderings, got %q, %q, %q", a, b, c)
	}
}

func TestDeriveItemKey_EmptySetDistinctFromNonEmpty(t *testing.T) {
	menuItemID := uuid.New()
	mod := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Large", PriceDelta: 2}

	plain := DeriveItemKey(menuItemID, nil)
	modified := DeriveItemKey(menuItemID, []models.Modifier{mod})

	if plain == modified {
		t.Errorf("expected distinct keys, both were %q", plain)
	}
}

func TestDeriveItemKey_DifferentSetsDistinct(t *testing.T) {
	menuItemID := uuid.New()
	groupID := uuid.New()
	small := models.Modifier{GroupID: groupID, OptionID: uuid.New(), Name: "Small"}
	large := models.Modifier{GroupID: groupID, OptionID: uuid.New(), Name: "Large", PriceDelta: 2}

	a := DeriveItemKey(menuItemID, []models.Modifier{small})
	b := DeriveItemKey(menuItemID, []models.Modifier{large})

	if a == b {
		t.Errorf("expected distinct keys for distinct options, both were %q", a)
	}
}

func TestDeriveItemKey_DifferentMenuItemsDistinct(t *testing.T) {
	mod := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Large", PriceDelta: 2}

	a := DeriveItemKey(uuid.New(), []models.Modifier{mod})
	b := DeriveItemKey(uuid.New(), []models.Modifier{mod})

	if a == b {
		t.Errorf("expected distinct keys for distinct menu items, both were %q", a)
	}
}

func TestDeriveItemKey_IgnoresDisplayFields(t *testing.T) {
	menuItemID := uuid.New()
	groupID, optionID := uuid.New(), uuid.New()

	a := DeriveItemKey(menuItemID, []models.Modifier{{GroupID: groupID, OptionID: optionID, Name: "Large", PriceDelta: 2}})
	b := DeriveItemKey(menuItemID, []models.Modifier{{GroupID: groupID, OptionID: optionID, Name: "LARGE", PriceDelta: 3}})

	if a != b {
		t.Errorf("name and priceDelta must not affect the key: %q vs %q", a, b)
	}
}

func TestDeriveItemKey_DuplicateSelectionsCollapse(t *testing.T) {
	menuItemID := uuid.New()
	mod := models.Modifier{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Large", PriceDelta: 2}

	once := DeriveItemKey(menuItemID, []models.Modifier{mod})
	twice := DeriveItemKey(menuItemID, []models.Modifier{mod, mod})

	if once != twice {
		t.Errorf("duplicate selections must collapse: %q vs %q", once, twice)
	}
}

func TestCanonicalizeModifiers_DoesNotMutateInput(t *testing.T) {
	z := models.Modifier{GroupID: uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"), OptionID: uuid.New()}
	a := models.Modifier{GroupID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), OptionID: uuid.New()}
	in := []models.Modifier{z, a}

	canonicalizeModifiers(in)

	if in[0] != z || in[1] != a {
		t.Error("input slice was reordered")
	}
}
