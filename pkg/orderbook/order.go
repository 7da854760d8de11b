package orderbook

import "fmt"

// Order is a single resting or aggressive order. The book owns an order
// for as long as it rests; callers observe it through the accessors and
// must not fill it from outside.
type Order struct {
	orderType OrderType
	id        OrderID
	side      Side
	price     Price
	stopPrice Price
	hasStop   bool

	initialQuantity   Quantity
	remainingQuantity Quantity
}

// NewOrder builds an order of any non-stop type. Market orders have their
// price normalized to the side's extreme so cross checks succeed against
// any opposing level; the normalized price never appears in trades, which
// always carry the maker's price.
func NewOrder(orderType OrderType, id OrderID, side Side, price Price, quantity Quantity) *Order {
	if orderType == Market {
		if side == Buy {
			price = MaxPrice
		} else {
			price = MinPrice
		}
	}
	return &Order{
		orderType:         orderType,
		id:                id,
		side:              side,
		price:             price,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

// NewStopOrder builds a dormant stop order. It waits in the pending set
// until the last trade price crosses stopPrice, then re-enters the book as
// an aggressive IOC at stopPrice.
func NewStopOrder(id OrderID, side Side, stopPrice Price, quantity Quantity) *Order {
	return &Order{
		orderType:         StopOrder,
		id:                id,
		side:              side,
		price:             stopPrice,
		stopPrice:         stopPrice,
		hasStop:           true,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

func (o *Order) ID() OrderID     { return o.id }
func (o *Order) Side() Side      { return o.side }
func (o *Order) Price() Price    { return o.price }
func (o *Order) Type() OrderType { return o.orderType }

// StopPrice reports the trigger price; ok is false for non-stop orders.
func (o *Order) StopPrice() (Price, bool) { return o.stopPrice, o.hasStop }

func (o *Order) InitialQuantity() Quantity   { return o.initialQuantity }
func (o *Order) RemainingQuantity() Quantity { return o.remainingQuantity }
func (o *Order) FilledQuantity() Quantity    { return o.initialQuantity - o.remainingQuantity }

func (o *Order) IsFilled() bool    { return o.remainingQuantity == 0 }
func (o *Order) IsStopOrder() bool { return o.hasStop }

// Fill subtracts quantity from the order's remaining quantity. An overfill
// means the matching loop computed a bad quantity and is unrecoverable.
func (o *Order) Fill(quantity Quantity) error {
	if quantity > o.remainingQuantity {
		return fmt.Errorf("order %d: %w", o.id, ErrOverfill)
	}
	o.remainingQuantity -= quantity
	return nil
}
