package inventory

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

var (
	// ErrCatalogNotInitialized is returned by Resolve before Initialize ran.
	ErrCatalogNotInitialized = errors.New("inventory: catalog not initialized")
	// ErrItemNotFound is returned by Resolve for empty or unknown ids.
	ErrItemNotFound = errors.New("inventory: item not found")
)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for load warnings.
func WithLogger(log *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// Catalog maps item ids to definitions. It is built once with Initialize and
// read concurrently afterwards.
type Catalog struct {
	mu          sync.RWMutex
	items       map[ItemID]*ItemDefinition
	order       []ItemID
	initialized bool
	log         *slog.Logger
}

// NewCatalog constructs an empty, uninitialized catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Initialize replaces the catalog contents with defs. Entries without an id
// are dropped and duplicates keep the first registration; both are logged as
// warnings. It returns the number of definitions registered.
func (c *Catalog) Initialize(defs []ItemDefinition) int {
	items := make(map[ItemID]*ItemDefinition, len(defs))
	order := make([]ItemID, 0, len(defs))
	for i := range defs {
		d := defs[i]
		if d.ID == "" {
			c.log.Warn("item definition missing id, skipped", "index", i, "name", d.Name)
			continue
		}
		if _, exists := items[d.ID]; exists {
			c.log.Warn("duplicate item id, keeping first", "id", d.ID, "index", i)
			continue
		}
		items[d.ID] = &d
		order = append(order, d.ID)
	}

	c.mu.Lock()
	c.items = items
	c.order = order
	c.initialized = true
	c.mu.Unlock()

	c.log.Info("item catalog initialized", "items", len(order), "skipped", len(defs)-len(order))
	return len(order)
}

// IsInitialized reports whether Initialize has run.
func (c *Catalog) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Lookup returns the definition for id, if present.
func (c *Catalog) Lookup(id ItemID) (*ItemDefinition, bool) {
	d, err := c.Resolve(id)
	return d, err == nil
}

// Resolve is Lookup with a reason for the miss.
func (c *Catalog) Resolve(id ItemID) (*ItemDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrCatalogNotInitialized
	}
	if id == "" {
		return nil, ErrItemNotFound
	}
	d, ok := c.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return d, nil
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Export copies the definitions in registration order, suitable for sending
// to clients.
func (c *Catalog) Export() []ItemDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.order) == 0 {
		return nil
	}
	out := make([]ItemDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}
