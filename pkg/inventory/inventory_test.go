package inventory

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	c.Initialize(SampleItems())
	return c
}

func mustItem(t *testing.T, c *Catalog, id ItemID) *ItemDefinition {
	t.Helper()
	d, ok := c.Lookup(id)
	if !ok {
		t.Fatalf("item %s missing from catalog", id)
	}
	return d
}

func TestAddItemTopsUpBeforeEmptySlots(t *testing.T) {
	c := sampleCatalog(t)
	fert := mustItem(t, c, "fertilizer") // max 20
	inv := New("inv", 4)

	if err := inv.SetSlot(2, fert, 15); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	added, full := inv.AddItem(fert, 10)
	if added != 10 || !full {
		t.Fatalf("expected 10 added fully, got %d %v", added, full)
	}
	if q := inv.Slot(2).Quantity(); q != 20 {
		t.Fatalf("expected slot 2 topped up to 20, got %d", q)
	}
	if s := inv.Slot(0); s.Item() == nil || s.Quantity() != 5 {
		t.Fatalf("expected remainder 5 in slot 0, got %+v", s)
	}
	if inv.Count(fert) != 25 {
		t.Fatalf("expected 25 total, got %d", inv.Count(fert))
	}
}

func TestAddItemNonStackableOnePerSlot(t *testing.T) {
	c := sampleCatalog(t)
	hoe := mustItem(t, c, "hoe")
	inv := New("inv", 3)

	added, full := inv.AddItem(hoe, 2)
	if added != 2 || !full {
		t.Fatalf("expected 2 added, got %d %v", added, full)
	}
	if inv.Slot(0).Quantity() != 1 || inv.Slot(1).Quantity() != 1 || !inv.Slot(2).IsEmpty() {
		t.Fatalf("expected one hoe in each of the first two slots: %+v", inv.Slots())
	}
}

func TestAddItemPartialKeepsPlacedUnits(t *testing.T) {
	c := sampleCatalog(t)
	fert := mustItem(t, c, "fertilizer")
	inv := New("inv", 2)

	added, full := inv.AddItem(fert, 50)
	if added != 40 || full {
		t.Fatalf("expected 40 placed and not full, got %d %v", added, full)
	}
	if inv.Count(fert) != 40 {
		t.Fatalf("partial add should keep placed units, got %d", inv.Count(fert))
	}
}

func TestAddItemRejectsNonPositive(t *testing.T) {
	c := sampleCatalog(t)
	inv := New("inv", 2)
	calls := 0
	inv.RegisterListener(ListenerFunc(func(*Inventory) { calls++ }))
	if added, full := inv.AddItem(mustItem(t, c, "carrot"), 0); added != 0 || full {
		t.Fatalf("expected no-op for zero quantity, got %d %v", added, full)
	}
	if added, _ := inv.AddItem(nil, 3); added != 0 {
		t.Fatalf("expected no-op for nil item")
	}
	if calls != 0 {
		t.Fatalf("expected no notifications, got %d", calls)
	}
}

func TestRemoveItemDrainsFromBack(t *testing.T) {
	c := sampleCatalog(t)
	carrot := mustItem(t, c, "carrot")
	inv := New("inv", 3)
	_ = inv.SetSlot(0, carrot, 10)
	_ = inv.SetSlot(2, carrot, 4)

	if !inv.RemoveItem(carrot, 6) {
		t.Fatalf("expected full removal")
	}
	if !inv.Slot(2).IsEmpty() {
		t.Fatalf("expected last slot drained and cleared")
	}
	if q := inv.Slot(0).Quantity(); q != 8 {
		t.Fatalf("expected 8 left in slot 0, got %d", q)
	}
}

func TestRemoveItemPartialIsNotRolledBack(t *testing.T) {
	c := sampleCatalog(t)
	carrot := mustItem(t, c, "carrot")
	inv := New("inv", 2)
	_ = inv.SetSlot(1, carrot, 3)
	calls := 0
	inv.RegisterListener(ListenerFunc(func(*Inventory) { calls++ }))

	if inv.RemoveItem(carrot, 5) {
		t.Fatalf("expected partial removal to report false")
	}
	if inv.Count(carrot) != 0 {
		t.Fatalf("partial removal should keep its effect, got %d", inv.Count(carrot))
	}
	if calls != 1 {
		t.Fatalf("expected one notification for partial removal, got %d", calls)
	}
}

func TestHasItem(t *testing.T) {
	c := sampleCatalog(t)
	seed := mustItem(t, c, "carrot_seed")
	inv := New("inv", 2)
	inv.AddItem(seed, 7)
	if !inv.HasItem(seed, 7) {
		t.Fatalf("expected 7 seeds")
	}
	if inv.HasItem(seed, 8) {
		t.Fatalf("did not expect 8 seeds")
	}
	if inv.HasItem(seed, 0) {
		t.Fatalf("zero quantity query should be false")
	}
}

func TestNotificationCoalescedPerCall(t *testing.T) {
	c := sampleCatalog(t)
	fert := mustItem(t, c, "fertilizer")
	inv := New("inv", 4)
	calls := 0
	unregister := inv.RegisterListener(ListenerFunc(func(*Inventory) { calls++ }))

	// spreads across three slots
	inv.AddItem(fert, 45)
	if calls != 1 {
		t.Fatalf("expected a single notification, got %d", calls)
	}
	unregister()
	inv.AddItem(fert, 1)
	if calls != 1 {
		t.Fatalf("unregistered listener still called")
	}
}

func TestSetSlotReplacesAndClamps(t *testing.T) {
	c := sampleCatalog(t)
	inv := New("inv", 2)
	if err := inv.SetSlot(0, mustItem(t, c, "carrot"), 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := inv.Slot(0).Quantity(); q != 50 {
		t.Fatalf("expected clamp to 50, got %d", q)
	}
	if err := inv.SetSlot(0, mustItem(t, c, "hoe"), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := inv.Slot(0); s.Item().ID != "hoe" || s.Quantity() != 1 {
		t.Fatalf("expected one hoe, got %v x%d", s.Item().ID, s.Quantity())
	}
	if err := inv.SetSlot(5, nil, 0); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestSwap(t *testing.T) {
	c := sampleCatalog(t)
	inv := New("inv", 3)
	_ = inv.SetSlot(0, mustItem(t, c, "hoe"), 1)
	_ = inv.SetSlot(2, mustItem(t, c, "carrot"), 9)
	if err := inv.Swap(0, 2); err != nil {
		t.Fatalf("unexpected swap error: %v", err)
	}
	if inv.Equipped().Item().ID != "carrot" || inv.Slot(2).Item().ID != "hoe" {
		t.Fatalf("swap did not exchange contents: %+v", inv.Slots())
	}
	if err := inv.Swap(0, 3); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

// Slots never exceed their stack limit and the held total equals everything
// added minus everything removed.
func TestStackConservation(t *testing.T) {
	items := SampleItems()
	rapid.Check(t, func(t *rapid.T) {
		c := NewCatalog()
		c.Initialize(items)
		inv := New("prop", rapid.IntRange(0, 6).Draw(t, "slots"))
		held := map[ItemID]int{}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			def, _ := c.Lookup(items[rapid.IntRange(0, len(items)-1).Draw(t, "item")].ID)
			qty := rapid.IntRange(1, 120).Draw(t, "qty")
			if rapid.Bool().Draw(t, "add") {
				added, full := inv.AddItem(def, qty)
				if full != (added == qty) {
					t.Fatalf("full flag %v disagrees with added %d of %d", full, added, qty)
				}
				held[def.ID] += added
			} else {
				before := inv.Count(def)
				ok := inv.RemoveItem(def, qty)
				removed := before - inv.Count(def)
				if ok != (removed == qty) {
					t.Fatalf("remove result %v disagrees with removed %d of %d", ok, removed, qty)
				}
				held[def.ID] -= removed
			}

			for _, s := range inv.Slots() {
				if (s.Item == nil) != (s.Quantity == 0) {
					t.Fatalf("slot %d has inconsistent empty state: %+v", s.Index, s)
				}
				if s.Item != nil && s.Quantity > s.Item.StackLimit() {
					t.Fatalf("slot %d over stack limit: %d > %d", s.Index, s.Quantity, s.Item.StackLimit())
				}
			}
			for _, d := range items {
				def, _ := c.Lookup(d.ID)
				if got := inv.Count(def); got != held[d.ID] {
					t.Fatalf("count for %s = %d, tracked %d", d.ID, got, held[d.ID])
				}
			}
		}
	})
}
