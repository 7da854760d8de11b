package orderbook

// LevelInfo is the total resting quantity at one price.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// LevelInfos is an aggregated snapshot of the book by price level,
// best-first on each side.
type LevelInfos struct {
	Bids []LevelInfo
	Asks []LevelInfo
}
