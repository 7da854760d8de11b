package orderbook

// TradeInfo is one leg of a fill.
type TradeInfo struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Trade pairs the bid and ask legs of one fill. Both legs carry the same
// quantity and the same price, the resting order's.
type Trade struct {
	Bid TradeInfo
	Ask TradeInfo
}
