package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gravitas-games/homestead/internal/save"
	"github.com/gravitas-games/homestead/pkg/economy"
	"github.com/gravitas-games/homestead/pkg/inventory"
	"github.com/gravitas-games/homestead/pkg/models"
	"github.com/gravitas-games/homestead/pkg/shop"
)

var (
	// ErrNoStore is returned by Save and Load when the world has no store.
	ErrNoStore = errors.New("game: no save store configured")
	// ErrInvalidPlayer is returned for a player without an id.
	ErrInvalidPlayer = errors.New("game: player id required")
)

// Session is one player's game state. Every method holds the session lock
// for its whole duration. Inventory listeners and shop event handlers run
// under that lock and must not call back into the Session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	world  *World
	player *models.Player
	log    *slog.Logger

	inv    *inventory.Inventory
	wallet *economy.Wallet
	engine *shop.Engine
	bus    *shop.SimpleEventBus

	// per-session copies so stock is tracked per player
	shops map[string]*shop.Catalog

	dirty bool
}

// NewSession creates a session with an empty inventory and the configured
// starting coins.
func (w *World) NewSession(player *models.Player) (*Session, error) {
	if !player.Valid() {
		return nil, ErrInvalidPlayer
	}
	id := uuid.NewString()
	log := w.log.With("session", id, "player", player.ID)
	bus := shop.NewSimpleEventBus()

	s := &Session{
		ID:        id,
		CreatedAt: w.now(),
		world:     w,
		player:    player,
		log:       log,
		inv:       inventory.New(player.ID, w.cfg.Game.InventorySlots),
		wallet:    economy.NewWallet(w.cfg.Game.StartingCoins),
		bus:       bus,
		engine:    shop.NewEngine(shop.WithEventBus(bus), shop.WithLogger(log), shop.WithClock(w.now)),
		shops:     make(map[string]*shop.Catalog, len(w.shops)),
	}
	for name, c := range w.shops {
		s.shops[name] = c.Clone()
	}
	s.inv.RegisterListener(inventory.ListenerFunc(func(*inventory.Inventory) { s.dirty = true }))
	bus.Subscribe(func(ev shop.Event) {
		if ev.Type != shop.EventShopOpened {
			s.dirty = true
		}
	})

	log.Info("session created", "slots", s.inv.SlotCount(), "coins", s.wallet.Coins())
	return s, nil
}

// Player returns the session owner.
func (s *Session) Player() *models.Player { return s.player }

// Events returns the shop event bus for presentation subscribers.
func (s *Session) Events() shop.EventBus { return s.bus }

// OnInventoryChanged registers a presentation listener.
func (s *Session) OnInventoryChanged(l inventory.Listener) (unregister func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.RegisterListener(l)
}

// OpenShop opens the named shop, restocking it.
func (s *Session) OpenShop(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.shops[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShop, name)
	}
	s.engine.OpenShop(c)
	return nil
}

// CloseShop closes the open shop, if any.
func (s *Session) CloseShop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.CloseShop()
}

// Buy purchases qty of id from the open shop. With no shop open, or when the
// shop does not list id, the result is ResultNotPurchasable.
func (s *Session) Buy(id inventory.ItemID, qty int) shop.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.engine.Current().Find(id)
	if entry == nil {
		return shop.ResultNotPurchasable
	}
	return s.engine.Buy(entry, qty, s.inv, s.wallet)
}

// Sell sells qty units from the slot at index to the open shop.
func (s *Session) Sell(index, qty int) shop.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SellSlot(index, qty, s.inv, s.wallet)
}

// Swap exchanges two inventory slots.
func (s *Session) Swap(i, j int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Swap(i, j)
}

// Coins returns the current balance.
func (s *Session) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.Coins()
}

// Dirty reports whether state changed since the last save or load.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save writes the session through the world's store.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// SaveIfDirty saves only when something changed. It reports whether a save
// was written.
func (s *Session) SaveIfDirty(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return false, nil
	}
	if err := s.saveLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) saveLocked(ctx context.Context) error {
	if s.world.store == nil {
		return ErrNoStore
	}
	now := s.world.now()
	data := save.Capture(s.player, s.inv, s.wallet, now)
	if err := s.world.store.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save player %s: %w", s.player.ID, err)
	}
	s.player.LastSaved = now
	s.dirty = false
	s.log.Info("game saved", "coins", data.Coins)
	return nil
}

// Load replaces the session state with the player's save. A missing save
// returns save.ErrNoSave and leaves the session untouched.
func (s *Session) Load(ctx context.Context) (save.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world.store == nil {
		return save.Report{}, ErrNoStore
	}
	data, err := s.world.store.Load(ctx, s.player.ID)
	if err != nil {
		return save.Report{}, err
	}
	rep := save.Restore(data, s.inv, s.wallet, s.world.items)
	for _, id := range rep.Missing {
		s.log.Warn("saved item no longer exists, slot cleared", "item", id)
	}
	if rep.Dropped > 0 {
		s.log.Warn("save has more slots than inventory", "dropped", rep.Dropped)
	}
	s.player.LastSaved = data.SavedAt
	s.dirty = false
	s.log.Info("game loaded", "restored", rep.Restored, "coins", s.wallet.Coins())
	return rep, nil
}
