package event

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// Manager fans market events out to in-process listeners and feeds the
// durable append queue drained by the persistence workers. Emit never
// blocks the emitting operation: if the queue is full the record is
// dropped with an error log rather than stalling a settlement.
type Manager struct {
	mu        sync.RWMutex
	listeners map[domain.EventType][]func(domain.MarketEvent)
	queue     chan domain.MarketEvent
	closeOnce sync.Once
}

func NewManager(queueSize int) *Manager {
	return &Manager{
		listeners: make(map[domain.EventType][]func(domain.MarketEvent)),
		queue:     make(chan domain.MarketEvent, queueSize),
	}
}

func (m *Manager) Subscribe(eventType domain.EventType, callback func(domain.MarketEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners[eventType] = append(m.listeners[eventType], callback)
}

func (m *Manager) Emit(eventType domain.EventType, key domain.AssetKey, seller, buyer string, price uint64) {
	m.dispatch(domain.MarketEvent{
		Type:      eventType,
		Key:       key,
		Seller:    seller,
		Buyer:     buyer,
		Price:     price,
		CreatedAt: time.Now(),
	})
}

// EmitSale emits a Sold event carrying the full receipt so the
// persistence workers can record the settlement durably.
func (m *Manager) EmitSale(receipt domain.SaleReceipt) {
	m.dispatch(domain.MarketEvent{
		Type:      domain.EventSold,
		Key:       receipt.Key,
		Seller:    receipt.Seller,
		Buyer:     receipt.Buyer,
		Price:     receipt.Price,
		Receipt:   &receipt,
		CreatedAt: time.Now(),
	})
}

func (m *Manager) dispatch(ev domain.MarketEvent) {
	select {
	case m.queue <- ev:
	default:
		zap.L().With(
			zap.String("type", string(ev.Type)),
			zap.String("key", ev.Key.String()),
		).Error("event queue full, dropping durable record")
	}

	m.mu.RLock()
	callbacks := m.listeners[ev.Type]
	m.mu.RUnlock()

	for _, callback := range callbacks {
		go callback(ev)
	}
}

// Queue exposes the durable record stream for the worker pool.
func (m *Manager) Queue() <-chan domain.MarketEvent {
	return m.queue
}

func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.queue)
	})
}
