// Package game is the composition root. A World is built once at startup
// from configuration and owns the read-only item catalog and shop assets;
// each Session binds one player's inventory, wallet and shop engine.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gravitas-games/homestead/internal/config"
	"github.com/gravitas-games/homestead/internal/content"
	"github.com/gravitas-games/homestead/internal/logging"
	"github.com/gravitas-games/homestead/internal/save"
	"github.com/gravitas-games/homestead/pkg/inventory"
	"github.com/gravitas-games/homestead/pkg/shop"
)

// ErrUnknownShop is returned when opening a shop name the world lacks.
var ErrUnknownShop = errors.New("game: unknown shop")

// World holds the process-wide game content.
type World struct {
	cfg   *config.Config
	log   *slog.Logger
	store save.Store
	now   func() time.Time

	items     *inventory.Catalog
	shops     map[string]*shop.Catalog
	shopOrder []string
}

// NewWorld loads item and shop content per cfg and wires store for saves.
func NewWorld(cfg *config.Config, log *slog.Logger, store save.Store) (*World, error) {
	if cfg == nil {
		return nil, errors.New("game: nil config")
	}
	if log == nil {
		log = logging.Discard()
	}
	w := &World{
		cfg:   cfg,
		log:   log,
		store: store,
		now:   time.Now,
		items: inventory.NewCatalog(inventory.WithLogger(log.With("component", "items"))),
		shops: make(map[string]*shop.Catalog),
	}

	defs := inventory.SampleItems()
	if cfg.Content.ItemsPath != "" {
		loaded, err := content.LoadItems(cfg.Content.ItemsPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load items: %w", err)
		}
		defs = loaded
	}
	w.items.Initialize(defs)

	var shops []*shop.Catalog
	if cfg.Content.ShopsPath != "" {
		loaded, err := content.LoadShops(cfg.Content.ShopsPath, w.items, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load shops: %w", err)
		}
		shops = loaded
	} else {
		shops = content.SampleShops(w.items)
	}
	for _, c := range shops {
		w.shops[c.Name] = c
		w.shopOrder = append(w.shopOrder, c.Name)
	}

	log.Info("world loaded", "items", w.items.Len(), "shops", len(w.shopOrder))
	return w, nil
}

// Items returns the item catalog.
func (w *World) Items() *inventory.Catalog { return w.items }

// ShopNames lists shops in load order.
func (w *World) ShopNames() []string {
	out := make([]string, len(w.shopOrder))
	copy(out, w.shopOrder)
	return out
}

// Shop returns the template catalog for name. Sessions trade on copies.
func (w *World) Shop(name string) (*shop.Catalog, bool) {
	c, ok := w.shops[name]
	return c, ok
}
