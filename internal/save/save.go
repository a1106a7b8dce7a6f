// Package save persists a player's inventory and coin balance. The saved
// form is one record per slot plus the balance; items are stored by id and
// resolved against the item catalog on load.
package save

import (
	"context"
	"errors"
	"time"

	"github.com/gravitas-games/homestead/pkg/economy"
	"github.com/gravitas-games/homestead/pkg/inventory"
	"github.com/gravitas-games/homestead/pkg/models"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// CurrentVersion is written into every new save.
const CurrentVersion = 1

// ErrNoSave is returned by Store.Load when the player has no save.
var ErrNoSave = errors.New("save: no save for player")

// SlotRecord is one saved slot.
type SlotRecord struct {
	ItemID   string `json:"itemId,omitempty"`
	Quantity int    `json:"quantity"`
	Empty    bool   `json:"isEmpty"`
}

// Data is a full save.
type Data struct {
	Version  int          `json:"version"`
	PlayerID string       `json:"playerId"`
	Coins    int          `json:"coins"`
	Slots    []SlotRecord `json:"slots"`
	SavedAt  time.Time    `json:"savedAt"`
}

// Store reads and writes saves keyed by player id.
type Store interface {
	Save(ctx context.Context, data *Data) error
	Load(ctx context.Context, playerID string) (*Data, error)
}

// Capture snapshots inv and wallet for player.
func Capture(player *models.Player, inv *inventory.Inventory, wallet *economy.Wallet, now time.Time) *Data {
	d := &Data{
		Version: CurrentVersion,
		Coins:   wallet.Coins(),
		Slots:   make([]SlotRecord, 0, inv.SlotCount()),
		SavedAt: now.UTC(),
	}
	if player != nil {
		d.PlayerID = player.ID
	}
	for _, s := range inv.Slots() {
		if s.Item == nil {
			d.Slots = append(d.Slots, SlotRecord{Empty: true})
			continue
		}
		d.Slots = append(d.Slots, SlotRecord{ItemID: string(s.Item.ID), Quantity: s.Quantity})
	}
	return d
}

// Report summarizes a Restore.
type Report struct {
	Restored int
	// Missing lists saved item ids the catalog could not resolve; their
	// slots were cleared.
	Missing []string
	// Dropped counts saved slots beyond the inventory size.
	Dropped int
}

// Restore writes data into inv and wallet. Every slot of inv is rewritten:
// saved items go into their exact index, unresolved ids and slots missing
// from the save are cleared. It never fails on unknown items.
func Restore(data *Data, inv *inventory.Inventory, wallet *economy.Wallet, catalog *inventory.Catalog) Report {
	var rep Report
	if data == nil {
		return rep
	}
	wallet.Set(data.Coins)

	for i := 0; i < inv.SlotCount(); i++ {
		if i >= len(data.Slots) {
			_ = inv.ClearSlot(i)
			continue
		}
		rec := data.Slots[i]
		if rec.Empty || rec.ItemID == "" || rec.Quantity <= 0 {
			_ = inv.ClearSlot(i)
			continue
		}
		def, ok := catalog.Lookup(inventory.ItemID(rec.ItemID))
		if !ok {
			rep.Missing = append(rep.Missing, rec.ItemID)
			_ = inv.ClearSlot(i)
			continue
		}
		_ = inv.SetSlot(i, def, rec.Quantity)
		rep.Restored++
	}
	if len(data.Slots) > inv.SlotCount() {
		rep.Dropped = len(data.Slots) - inv.SlotCount()
	}
	return rep
}
