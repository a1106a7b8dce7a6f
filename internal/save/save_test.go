package save

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gravitas-games/homestead/internal/config"
	"github.com/gravitas-games/homestead/pkg/economy"
	"github.com/gravitas-games/homestead/pkg/inventory"
	"github.com/gravitas-games/homestead/pkg/models"
)

func sampleCatalog() *inventory.Catalog {
	c := inventory.NewCatalog()
	c.Initialize(inventory.SampleItems())
	return c
}

func filledInventory(t *testing.T, c *inventory.Catalog) *inventory.Inventory {
	t.Helper()
	inv := inventory.New("p1", 4)
	seed, _ := c.Lookup("carrot_seed")
	hoe, _ := c.Lookup("hoe")
	if err := inv.SetSlot(0, hoe, 1); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	if err := inv.SetSlot(2, seed, 17); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	return inv
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	c := sampleCatalog()
	inv := filledInventory(t, c)
	player := &models.Player{ID: "p1"}
	data := Capture(player, inv, economy.NewWallet(42), time.Unix(1000, 0))

	if data.PlayerID != "p1" || data.Coins != 42 || len(data.Slots) != 4 {
		t.Fatalf("unexpected capture: %+v", data)
	}
	if !data.Slots[1].Empty || data.Slots[2].ItemID != "carrot_seed" || data.Slots[2].Quantity != 17 {
		t.Fatalf("unexpected slot records: %+v", data.Slots)
	}

	out := inventory.New("p1", 4)
	wallet := economy.NewWallet(0)
	rep := Restore(data, out, wallet, c)
	if rep.Restored != 2 || len(rep.Missing) != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if wallet.Coins() != 42 {
		t.Fatalf("expected 42 coins, got %d", wallet.Coins())
	}
	for i := 0; i < 4; i++ {
		a, b := inv.Slot(i), out.Slot(i)
		if !a.Item().Same(b.Item()) && !(a.IsEmpty() && b.IsEmpty()) {
			t.Fatalf("slot %d item mismatch", i)
		}
		if a.Quantity() != b.Quantity() {
			t.Fatalf("slot %d quantity mismatch: %d vs %d", i, a.Quantity(), b.Quantity())
		}
	}
}

func TestRestoreClearsUnknownItems(t *testing.T) {
	c := sampleCatalog()
	inv := filledInventory(t, c)
	data := &Data{
		Coins: 7,
		Slots: []SlotRecord{
			{ItemID: "golden_parsnip", Quantity: 3},
			{ItemID: "carrot", Quantity: 2},
			{ItemID: "carrot", Quantity: 1},
			{ItemID: "carrot", Quantity: 1},
			{ItemID: "carrot", Quantity: 1},
		},
	}
	rep := Restore(data, inv, economy.NewWallet(0), c)
	if len(rep.Missing) != 1 || rep.Missing[0] != "golden_parsnip" {
		t.Fatalf("expected the unknown id reported, got %+v", rep)
	}
	if rep.Dropped != 1 || rep.Restored != 3 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if !inv.Slot(0).IsEmpty() {
		t.Fatalf("unresolved slot should be cleared")
	}
	if inv.Slot(1).Item().ID != "carrot" {
		t.Fatalf("slot 1 should hold carrots")
	}
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Load(ctx, "p1"); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
	data := Capture(&models.Player{ID: "p1"}, filledInventory(t, sampleCatalog()), economy.NewWallet(9), time.Now())
	if err := store.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Coins != 9 || len(got.Slots) != 4 || got.Slots[2].Quantity != 17 || got.Version != CurrentVersion {
		t.Fatalf("unexpected loaded save: %+v", got)
	}
	if err := store.Save(ctx, &Data{PlayerID: "../escape"}); err == nil {
		t.Fatalf("expected invalid player id error")
	}
}

func TestOpenFileBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Save.Dir = t.TempDir()
	store, closeFn, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closeFn() //nolint:errcheck
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("expected file store, got %T", store)
	}
}

// Integration test, skipped unless REDIS_ADDR is set.
func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration tests")
	}
	ctx := context.Background()
	store, err := NewRedisStore(ctx, config.RedisConfig{Address: addr, KeyPrefix: "homestead:test:"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close() //nolint:errcheck

	id := "it-" + time.Now().Format("150405.000000")
	if _, err := store.Load(ctx, id); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
	if err := store.Save(ctx, &Data{Version: 1, PlayerID: id, Coins: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, id)
	if err != nil || got.Coins != 3 {
		t.Fatalf("unexpected load: %+v %v", got, err)
	}
	store.client.Del(ctx, store.key(id))
}
