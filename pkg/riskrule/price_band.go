package riskrule

import (
	"fmt"

	"github.com/roisan13/orderbook/pkg/orderbook"
)

// PriceBandRule rejects limit prices outside a static floor/ceiling.
// Market orders are exempt: their price is a normalized extreme, not a
// client price.
type PriceBandRule struct {
	floor orderbook.Price
	ceil  orderbook.Price
}

func NewPriceBandRule(floor, ceil orderbook.Price) *PriceBandRule {
	return &PriceBandRule{floor: floor, ceil: ceil}
}

func (r *PriceBandRule) Check(order *orderbook.Order) error {
	if order.Type() == orderbook.Market {
		return nil
	}
	if order.Price() < r.floor || order.Price() > r.ceil {
		return fmt.Errorf("price %d outside band [%d, %d]", order.Price(), r.floor, r.ceil)
	}
	return nil
}
