package cart

import (
	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/restro-cart/models"
)

// Recompute derives every aggregate field on the cart from its line
// list: per line modifiersTotalPerUnit and
// lineTotal = (unitPrice + modifiersTotalPerUnit) * quantity, then
// totalItems and totalPrice over all lines. It is the only place these
// fields are written; nothing patches them incrementally. The
// arithmetic runs in decimal so repeated mutation cannot accumulate
// float drift.
func Recompute(c *models.Cart) {
	totalPrice := decimal.Zero
	totalItems := 0

	for i := range c.Items {
		line := &c.Items[i]

		modsPerUnit := decimal.Zero
		for _, m := range line.Modifiers {
			modsPerUnit = modsPerUnit.Add(decimal.NewFromFloat(m.PriceDelta))
		}
		lineTotal := decimal.NewFromFloat(line.UnitPrice).
			Add(modsPerUnit).
			Mul(decimal.NewFromInt(int64(line.Quantity)))

		line.ModifiersTotalPerUnit, _ = modsPerUnit.Float64()
		line.LineTotal, _ = lineTotal.Float64()

		totalPrice = totalPrice.Add(lineTotal)
		totalItems += line.Quantity
	}

	c.TotalPrice, _ = totalPrice.Float64()
	c.TotalItems = totalItems
}
