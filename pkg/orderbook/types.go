package orderbook

import "math"

// Price is a limit price expressed in ticks.
type Price = int32

// Quantity is an order or fill quantity.
type Quantity = uint32

// OrderID identifies an order. Uniqueness is the caller's responsibility;
// the book silently rejects duplicates.
type OrderID = uint64

const (
	// MinPrice is the normalized price of a market sell, crossing every bid.
	MinPrice Price = 0
	// MaxPrice is the normalized price of a market buy, crossing every ask.
	MaxPrice Price = math.MaxInt32
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

type OrderType string

const (
	Market         OrderType = "MARKET"
	GoodTillCancel OrderType = "GTC"
	FillAndKill    OrderType = "IOC"
	FillOrKill     OrderType = "FOK"
	PostOnly       OrderType = "POST_ONLY"
	StopOrder      OrderType = "STOP"
)
