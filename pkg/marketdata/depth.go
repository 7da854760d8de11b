package marketdata

import (
	"github.com/roisan13/orderbook/pkg/orderbook"
	"github.com/shopspring/decimal"
)

// PriceLevel is one displayed depth level. Price is the tick count scaled
// by the symbol's tick size.
type PriceLevel struct {
	Price    decimal.Decimal    `json:"price"`
	Quantity orderbook.Quantity `json:"quantity"`
}

// Depth is the aggregated book snapshot published to subscribers,
// best-first on each side.
type Depth struct {
	Symbol string       `json:"symbol"`
	Bids   []PriceLevel `json:"bids"`
	Asks   []PriceLevel `json:"asks"`
}

// TradePrint is one executed fill as published to subscribers.
type TradePrint struct {
	Symbol     string             `json:"symbol"`
	BidOrderID orderbook.OrderID  `json:"bidOrderId"`
	AskOrderID orderbook.OrderID  `json:"askOrderId"`
	Price      decimal.Decimal    `json:"price"`
	Quantity   orderbook.Quantity `json:"quantity"`
}

// DepthFromLevelInfos scales a book snapshot into display prices.
func DepthFromLevelInfos(symbol string, tickSize decimal.Decimal, infos orderbook.LevelInfos) Depth {
	convert := func(levels []orderbook.LevelInfo) []PriceLevel {
		out := make([]PriceLevel, 0, len(levels))
		for _, level := range levels {
			out = append(out, PriceLevel{
				Price:    displayPrice(tickSize, level.Price),
				Quantity: level.Quantity,
			})
		}
		return out
	}

	return Depth{
		Symbol: symbol,
		Bids:   convert(infos.Bids),
		Asks:   convert(infos.Asks),
	}
}

// PrintFromTrade scales one trade into a publishable print. Both legs
// carry the maker's price, so either leg works as the print price.
func PrintFromTrade(symbol string, tickSize decimal.Decimal, trade orderbook.Trade) TradePrint {
	return TradePrint{
		Symbol:     symbol,
		BidOrderID: trade.Bid.OrderID,
		AskOrderID: trade.Ask.OrderID,
		Price:      displayPrice(tickSize, trade.Ask.Price),
		Quantity:   trade.Ask.Quantity,
	}
}

func displayPrice(tickSize decimal.Decimal, price orderbook.Price) decimal.Decimal {
	return tickSize.Mul(decimal.NewFromInt(int64(price)))
}
