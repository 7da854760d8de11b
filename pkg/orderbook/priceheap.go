package orderbook

import (
	"container/heap"
	"sort"
)

// priceHeap implements heap.Interface over the distinct level prices of
// one book side. pos tracks each price's slot so a price can be removed
// in O(log n) when its level empties or is cancelled away.
type priceHeap struct {
	prices []Price
	less   func(a, b Price) bool
	pos    map[Price]int
}

func newPriceHeap(less func(a, b Price) bool) *priceHeap {
	return &priceHeap{less: less, pos: make(map[Price]int)}
}

func (h *priceHeap) Len() int           { return len(h.prices) }
func (h *priceHeap) Less(i, j int) bool { return h.less(h.prices[i], h.prices[j]) }

func (h *priceHeap) Swap(i, j int) {
	h.prices[i], h.prices[j] = h.prices[j], h.prices[i]
	h.pos[h.prices[i]] = i
	h.pos[h.prices[j]] = j
}

func (h *priceHeap) Push(x any) {
	price := x.(Price)
	h.pos[price] = len(h.prices)
	h.prices = append(h.prices, price)
}

func (h *priceHeap) Pop() any {
	n := len(h.prices)
	price := h.prices[n-1]
	h.prices = h.prices[:n-1]
	delete(h.pos, price)
	return price
}

// add pushes a price unless it is already tracked.
func (h *priceHeap) add(price Price) {
	if _, ok := h.pos[price]; ok {
		return
	}
	heap.Push(h, price)
}

// remove drops a price from anywhere in the heap.
func (h *priceHeap) remove(price Price) {
	if i, ok := h.pos[price]; ok {
		heap.Remove(h, i)
	}
}

// peek returns the best price without removing it.
func (h *priceHeap) peek() (Price, bool) {
	if len(h.prices) == 0 {
		return 0, false
	}
	return h.prices[0], true
}

// sorted returns a copy of the tracked prices, best-first.
func (h *priceHeap) sorted() []Price {
	out := make([]Price, len(h.prices))
	copy(out, h.prices)
	sort.Slice(out, func(i, j int) bool { return h.less(out[i], out[j]) })
	return out
}
