package orderbook

import (
	"sync"

	"github.com/gammazero/deque"
)

// Book is a single-symbol limit order book with price-time priority and
// maker-price execution. All operations are synchronous; a mutex guards
// the exported surface so a book can be shared between goroutines, but a
// single book never mutates concurrently.
type Book struct {
	symbol string

	bids map[Price]*deque.Deque[*Order]
	asks map[Price]*deque.Deque[*Order]

	bidPrices *priceHeap // best bid on top
	askPrices *priceHeap // best ask on top

	orders       map[OrderID]*Order
	pendingStops []*Order

	mu sync.Mutex
}

func NewBook(symbol string) *Book {
	return &Book{
		symbol:    symbol,
		bids:      make(map[Price]*deque.Deque[*Order]),
		asks:      make(map[Price]*deque.Deque[*Order]),
		bidPrices: newPriceHeap(func(a, b Price) bool { return a > b }),
		askPrices: newPriceHeap(func(a, b Price) bool { return a < b }),
		orders:    make(map[OrderID]*Order),
	}
}

func (b *Book) Symbol() string { return b.symbol }

// AddOrder validates the order, matches it against the opposing side and
// rests any residual according to its type. Trades are returned in
// generation order. Unsatisfiable requests — duplicate id, uncrossable
// IOC, unfillable FOK, crossing post-only — return empty trades with no
// state change.
func (b *Book) AddOrder(order *Order) ([]Trade, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addOrder(order)
}

func (b *Book) addOrder(order *Order) ([]Trade, error) {
	if order == nil {
		return nil, ErrNilOrder
	}
	if order.RemainingQuantity() == 0 {
		return nil, ErrInvalidQuantity
	}
	if order.Price() < 0 {
		return nil, ErrInvalidPrice
	}

	if _, ok := b.orders[order.ID()]; ok {
		return nil, nil
	}

	switch {
	case order.Type() == FillAndKill && !b.canMatch(order.Side(), order.Price()):
		return nil, nil
	case order.Type() == FillOrKill && !b.canFullyMatch(order.Side(), order.Price(), order.RemainingQuantity()):
		return nil, nil
	case order.Type() == PostOnly && b.canMatch(order.Side(), order.Price()):
		return nil, nil
	case order.IsStopOrder():
		b.pendingStops = append(b.pendingStops, order)
		return nil, nil
	}

	trades := b.matchAggressiveOrder(order)

	if len(trades) > 0 {
		b.checkAndTriggerStopOrders(trades[len(trades)-1].Ask.Price)
	}

	// Market and IOC residuals never rest.
	if !order.IsFilled() && (order.Type() == GoodTillCancel || order.Type() == PostOnly) {
		b.rest(order)
	}

	return trades, nil
}

// CancelOrder removes the order with the given id from the book or from
// the pending stop set. Unknown ids are a no-op.
func (b *Book) CancelOrder(id OrderID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelOrder(id)
}

func (b *Book) cancelOrder(id OrderID) {
	order, ok := b.orders[id]
	if !ok {
		for i, stop := range b.pendingStops {
			if stop.ID() == id {
				b.pendingStops = append(b.pendingStops[:i], b.pendingStops[i+1:]...)
				return
			}
		}
		return
	}
	delete(b.orders, id)

	book, prices := b.bids, b.bidPrices
	if order.Side() == Sell {
		book, prices = b.asks, b.askPrices
	}
	level := book[order.Price()]
	if i := level.Index(func(o *Order) bool { return o.ID() == id }); i >= 0 {
		level.Remove(i)
	}
	if level.Len() == 0 {
		delete(book, order.Price())
		prices.remove(order.Price())
	}
}

// ModifyOrder cancels the existing order and re-adds a freshly built one
// of the same type with the supplied side, price and quantity. The
// replacement goes to the tail of its price level. Unknown ids, including
// pending stops, return empty trades.
func (b *Book) ModifyOrder(modify OrderModify) ([]Trade, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.orders[modify.OrderID()]
	if !ok {
		return nil, nil
	}
	orderType := existing.Type()
	b.cancelOrder(modify.OrderID())
	return b.addOrder(modify.ToOrder(orderType))
}

// Size is the number of resting orders, excluding pending stops.
func (b *Book) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orders)
}

// PendingStopCount is the number of stop orders awaiting trigger.
func (b *Book) PendingStopCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pendingStops)
}

// GetOrderInfos aggregates remaining quantity per price level, best-first
// on each side. The snapshot reflects book state at call time.
func (b *Book) GetOrderInfos() LevelInfos {
	b.mu.Lock()
	defer b.mu.Unlock()

	aggregate := func(prices []Price, book map[Price]*deque.Deque[*Order]) []LevelInfo {
		infos := make([]LevelInfo, 0, len(prices))
		for _, price := range prices {
			level := book[price]
			var total Quantity
			for i := 0; i < level.Len(); i++ {
				total += level.At(i).RemainingQuantity()
			}
			infos = append(infos, LevelInfo{Price: price, Quantity: total})
		}
		return infos
	}

	return LevelInfos{
		Bids: aggregate(b.bidPrices.sorted(), b.bids),
		Asks: aggregate(b.askPrices.sorted(), b.asks),
	}
}

// canMatch reports whether an order at price would cross the opposing
// side's best level.
func (b *Book) canMatch(side Side, price Price) bool {
	if side == Buy {
		bestAsk, ok := b.askPrices.peek()
		return ok && price >= bestAsk
	}
	bestBid, ok := b.bidPrices.peek()
	return ok && price <= bestBid
}

// canFullyMatch walks the opposing side best-first, summing remaining
// quantity across crossable levels, and reports whether quantity is
// immediately fillable in full.
func (b *Book) canFullyMatch(side Side, price Price, quantity Quantity) bool {
	if !b.canMatch(side, price) {
		return false
	}

	book, prices := b.asks, b.askPrices
	crosses := func(levelPrice Price) bool { return price >= levelPrice }
	if side == Sell {
		book, prices = b.bids, b.bidPrices
		crosses = func(levelPrice Price) bool { return price <= levelPrice }
	}

	var available uint64
	for _, levelPrice := range prices.sorted() {
		if !crosses(levelPrice) {
			break
		}
		level := book[levelPrice]
		for i := 0; i < level.Len(); i++ {
			available += uint64(level.At(i).RemainingQuantity())
			if available >= uint64(quantity) {
				return true
			}
		}
	}
	return false
}

// matchAggressiveOrder consumes opposing liquidity best price first until
// the order is filled or the book no longer crosses.
func (b *Book) matchAggressiveOrder(order *Order) []Trade {
	var trades []Trade

	book, prices := b.asks, b.askPrices
	crosses := func(levelPrice Price) bool { return order.Price() >= levelPrice }
	if order.Side() == Sell {
		book, prices = b.bids, b.bidPrices
		crosses = func(levelPrice Price) bool { return order.Price() <= levelPrice }
	}

	for !order.IsFilled() {
		bestPrice, ok := prices.peek()
		if !ok || !crosses(bestPrice) {
			break
		}

		level := book[bestPrice]
		b.matchAtPriceLevel(order, level, &trades)

		if level.Len() == 0 {
			delete(book, bestPrice)
			prices.remove(bestPrice)
		}
	}

	return trades
}

// matchAtPriceLevel fills the aggressive order against the level's queue
// in strict FIFO order. Every fill trades at the resting order's price.
func (b *Book) matchAtPriceLevel(aggressive *Order, level *deque.Deque[*Order], trades *[]Trade) {
	for level.Len() > 0 && !aggressive.IsFilled() {
		resting := level.Front()

		quantity := min(resting.RemainingQuantity(), aggressive.RemainingQuantity())
		tradePrice := resting.Price()

		mustFill(aggressive, quantity)
		mustFill(resting, quantity)

		bid, ask := aggressive, resting
		if aggressive.Side() == Sell {
			bid, ask = resting, aggressive
		}
		*trades = append(*trades, Trade{
			Bid: TradeInfo{OrderID: bid.ID(), Price: tradePrice, Quantity: quantity},
			Ask: TradeInfo{OrderID: ask.ID(), Price: tradePrice, Quantity: quantity},
		})

		if resting.IsFilled() {
			delete(b.orders, resting.ID())
			level.PopFront()
		}
	}
}

// checkAndTriggerStopOrders fires every pending stop whose threshold the
// last trade price crossed. Triggered stops re-enter the add path as IOC
// orders at their stop price; their fills can cascade into further
// triggers. Trades generated here are observable through book state, not
// through the originating caller's return. The pending slice is rebuilt
// before any re-entry so no iteration survives the recursion.
func (b *Book) checkAndTriggerStopOrders(tradePrice Price) {
	var triggered []*Order
	remaining := b.pendingStops[:0]
	for _, stop := range b.pendingStops {
		stopPrice, _ := stop.StopPrice()
		fired := tradePrice >= stopPrice
		if stop.Side() == Sell {
			fired = tradePrice <= stopPrice
		}
		if fired {
			triggered = append(triggered, stop)
		} else {
			remaining = append(remaining, stop)
		}
	}
	b.pendingStops = remaining

	for _, stop := range triggered {
		stopPrice, _ := stop.StopPrice()
		aggressive := NewOrder(FillAndKill, stop.ID(), stop.Side(), stopPrice, stop.InitialQuantity())
		_, _ = b.addOrder(aggressive)
	}
}

// rest appends the order at the tail of its price level and indexes it.
func (b *Book) rest(order *Order) {
	book, prices := b.bids, b.bidPrices
	if order.Side() == Sell {
		book, prices = b.asks, b.askPrices
	}
	level, ok := book[order.Price()]
	if !ok {
		level = &deque.Deque[*Order]{}
		book[order.Price()] = level
		prices.add(order.Price())
	}
	level.PushBack(order)
	b.orders[order.ID()] = order
}

// mustFill applies a fill quantity computed by the matching loop. A
// failure means book state is corrupt.
func mustFill(order *Order, quantity Quantity) {
	if err := order.Fill(quantity); err != nil {
		panic(err)
	}
}
