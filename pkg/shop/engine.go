package shop

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gravitas-games/homestead/pkg/inventory"
)

// Balance is the coin holder a transaction charges or pays.
type Balance interface {
	Coins() int
	Debit(amount int) bool
	Credit(amount int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithEventBus sets the bus events are published on.
func WithEventBus(bus EventBus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithLogger sets the transaction logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine runs buy and sell transactions against at most one open catalog.
// Each call runs to completion before returning; Engine is not safe for
// concurrent use and callers hold one lock across the inventory, balance and
// engine for the whole call.
type Engine struct {
	bus     EventBus
	log     *slog.Logger
	now     func() time.Time
	current *Catalog
}

// NewEngine creates an engine with no shop open.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		bus: NewNullEventBus(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Events returns the bus the engine publishes on.
func (e *Engine) Events() EventBus { return e.bus }

// Current returns the open catalog, or nil.
func (e *Engine) Current() *Catalog { return e.current }

// OpenShop makes c the current catalog, restocks it and publishes
// EventShopOpened. Opening replaces any previously open shop.
func (e *Engine) OpenShop(c *Catalog) {
	if c == nil {
		e.CloseShop()
		return
	}
	if e.current != nil && e.current != c {
		e.log.Debug("replacing open shop", "from", e.current.Name, "to", c.Name)
	}
	e.current = c
	c.Restock()
	e.log.Info("shop opened", "shop", c.Name, "entries", len(c.Entries))
	e.publish(Event{Type: EventShopOpened, Catalog: c})
}

// CloseShop clears the current catalog and publishes EventShopOpened with a
// nil catalog.
func (e *Engine) CloseShop() {
	if e.current != nil {
		e.log.Info("shop closed", "shop", e.current.Name)
	}
	e.current = nil
	e.publish(Event{Type: EventShopOpened})
}

// Buy purchases qty units of entry into inv, charging bal. Checks run in a
// fixed order: stock, then funds, then inventory space. On InventoryFull the
// charge is refunded but units already placed stay in inv. A negative
// effective price is an invalid request.
func (e *Engine) Buy(entry *Entry, qty int, inv *inventory.Inventory, bal Balance) Result {
	if entry == nil || entry.Item == nil || inv == nil || bal == nil || qty <= 0 {
		return ResultInvalidRequest
	}
	if !entry.InStock(qty) {
		return ResultInsufficientStock
	}
	price := entry.BuyPrice()
	if price < 0 {
		return ResultInvalidRequest
	}
	// compare by division so qty*price cannot overflow
	if price > 0 && qty > bal.Coins()/price {
		return ResultInsufficientFunds
	}
	total := qty * price
	if !bal.Debit(total) {
		return ResultInsufficientFunds
	}

	added, full := inv.AddItem(entry.Item, qty)
	if !full {
		bal.Credit(total)
		e.log.Warn("purchase did not fit, refunded",
			"item", entry.Item.ID, "requested", qty, "placed", added, "refund", total)
		return ResultInventoryFull
	}

	if !entry.InfiniteStock() {
		entry.CurrentStock -= qty
	}
	e.log.Debug("purchase", "item", entry.Item.ID, "qty", qty, "cost", total, "balance", bal.Coins())
	e.publish(Event{Type: EventPurchased, Catalog: e.current, Entry: entry, Quantity: qty, Amount: total})
	return ResultSuccess
}

// Sell sells qty units held in slot to the open shop. Only items with an
// entry in the current catalog are accepted; stock is not replenished by
// sales.
func (e *Engine) Sell(entry *Entry, slot *inventory.Slot, qty int, inv *inventory.Inventory, bal Balance) Result {
	if slot == nil || inv == nil || bal == nil || qty <= 0 {
		return ResultInvalidRequest
	}
	if inv.Slot(slot.Index()) != slot {
		return ResultInvalidRequest
	}
	if entry == nil || !e.current.Contains(entry) {
		return ResultNotPurchasable
	}
	item := slot.Item()
	if item != nil && !item.Same(entry.Item) {
		return ResultNotPurchasable
	}
	if slot.Quantity() < qty {
		return ResultNotEnoughQuantity
	}

	if !inv.RemoveItem(item, qty) {
		// slot held qty, so the inventory did too
		e.log.Error("sell removal came up short", "item", item.ID, "qty", qty)
	}
	total := qty * entry.SellPrice()
	bal.Credit(total)
	e.log.Debug("sale", "item", item.ID, "qty", qty, "paid", total, "balance", bal.Coins())
	e.publish(Event{Type: EventSold, Catalog: e.current, Entry: entry, Quantity: qty, Amount: total})
	return ResultSuccess
}

// SellSlot sells from the slot at index, resolving the entry from the open
// catalog.
func (e *Engine) SellSlot(index, qty int, inv *inventory.Inventory, bal Balance) Result {
	if inv == nil {
		return ResultInvalidRequest
	}
	slot := inv.Slot(index)
	if slot == nil {
		return ResultInvalidRequest
	}
	if slot.IsEmpty() {
		return ResultNotEnoughQuantity
	}
	return e.Sell(e.current.Find(slot.Item().ID), slot, qty, inv, bal)
}

func (e *Engine) publish(ev Event) {
	ev.ID = uuid.New()
	ev.Timestamp = e.now()
	e.bus.Publish(ev)
}
