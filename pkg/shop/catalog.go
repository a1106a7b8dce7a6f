// Package shop implements shop listings and the buy/sell transaction engine
// that moves items between a shop, an inventory and a coin balance.
package shop

import "github.com/gravitas-games/homestead/pkg/inventory"

// Entry is one sellable line of a shop. Price overrides replace the item's
// base prices when set. A negative StockLimit means infinite stock.
type Entry struct {
	Item              *inventory.ItemDefinition
	BuyPriceOverride  *int
	SellPriceOverride *int
	StockLimit        int
	// CurrentStock is reset to StockLimit by Restock and decremented by
	// purchases when stock is finite.
	CurrentStock int
}

// BuyPrice returns the price charged per unit.
func (e *Entry) BuyPrice() int {
	if e.BuyPriceOverride != nil {
		return *e.BuyPriceOverride
	}
	if e.Item == nil {
		return 0
	}
	return e.Item.BuyPrice
}

// SellPrice returns the price paid per unit.
func (e *Entry) SellPrice() int {
	if e.SellPriceOverride != nil {
		return *e.SellPriceOverride
	}
	if e.Item == nil {
		return 0
	}
	return e.Item.SellPrice
}

// InfiniteStock reports whether the entry never runs out.
func (e *Entry) InfiniteStock() bool { return e.StockLimit < 0 }

// InStock reports whether qty units can be bought right now.
func (e *Entry) InStock(qty int) bool {
	return e.InfiniteStock() || e.CurrentStock >= qty
}

// Catalog is a named ordered list of entries.
type Catalog struct {
	Name    string
	Entries []*Entry
}

// NewCatalog builds a catalog and restocks it.
func NewCatalog(name string, entries ...*Entry) *Catalog {
	c := &Catalog{Name: name, Entries: entries}
	c.Restock()
	return c
}

// Restock copies every entry's StockLimit into CurrentStock.
func (c *Catalog) Restock() {
	for _, e := range c.Entries {
		if e != nil {
			e.CurrentStock = e.StockLimit
		}
	}
}

// Clone deep-copies the catalog so stock can be tracked independently.
// Item definitions stay shared.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{Name: c.Name, Entries: make([]*Entry, 0, len(c.Entries))}
	for _, e := range c.Entries {
		if e == nil {
			continue
		}
		cp := *e
		out.Entries = append(out.Entries, &cp)
	}
	return out
}

// Find returns the first entry selling id, or nil.
func (c *Catalog) Find(id inventory.ItemID) *Entry {
	if c == nil {
		return nil
	}
	for _, e := range c.Entries {
		if e != nil && e.Item != nil && e.Item.ID == id {
			return e
		}
	}
	return nil
}

// Contains reports whether entry belongs to this catalog.
func (c *Catalog) Contains(entry *Entry) bool {
	if c == nil || entry == nil {
		return false
	}
	for _, e := range c.Entries {
		if e == entry {
			return true
		}
	}
	return false
}
