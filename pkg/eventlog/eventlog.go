package eventlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roisan13/orderbook/pkg/orderbook"
)

type EventKind string

const (
	KindNew      EventKind = "New"
	KindCanceled EventKind = "Canceled"
	KindReplaced EventKind = "Replaced"
	KindTrade    EventKind = "Trade"
	KindRejected EventKind = "Rejected"
)

// Event is one entry in an order's history.
type Event struct {
	EventID   string
	OrderID   orderbook.OrderID
	Kind      EventKind
	Price     orderbook.Price
	Quantity  orderbook.Quantity
	Timestamp time.Time
}

func NewEvent(kind EventKind, orderID orderbook.OrderID, price orderbook.Price, quantity orderbook.Quantity) *Event {
	return &Event{
		EventID:   uuid.New().String(),
		OrderID:   orderID,
		Kind:      kind,
		Price:     price,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}

// Log is an in-memory, append-only journal of order events.
type Log struct {
	mu     sync.RWMutex
	events map[orderbook.OrderID][]*Event
	total  int
}

func NewLog() *Log {
	return &Log{events: make(map[orderbook.OrderID][]*Event)}
}

func (l *Log) Append(ev *Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events[ev.OrderID] = append(l.events[ev.OrderID], ev)
	l.total++
}

// History returns the recorded events for one order, oldest first.
func (l *Log) History(orderID orderbook.OrderID) []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.events[orderID]
	out := make([]*Event, len(history))
	copy(out, history)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.total
}
