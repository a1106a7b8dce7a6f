package game

import "github.com/gravitas-games/homestead/pkg/shop"

// SlotView is a display copy of one slot.
type SlotView struct {
	Index    int
	ItemID   string
	Name     string
	Quantity int
}

// EntryView is a display copy of one shop line.
type EntryView struct {
	ItemID    string
	Name      string
	BuyPrice  int
	SellPrice int
	Stock     int
	Infinite  bool
}

// View is everything the presentation layer draws.
type View struct {
	Player string
	Coins  int
	Slots  []SlotView
	Shop   string
	Stock  []EntryView
}

// Snapshot copies the session state for display.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Player: s.player.Label(),
		Coins:  s.wallet.Coins(),
		Slots:  make([]SlotView, 0, s.inv.SlotCount()),
	}
	for _, st := range s.inv.Slots() {
		sv := SlotView{Index: st.Index, Quantity: st.Quantity}
		if st.Item != nil {
			sv.ItemID = string(st.Item.ID)
			sv.Name = st.Item.Name
		}
		v.Slots = append(v.Slots, sv)
	}
	if c := s.engine.Current(); c != nil {
		v.Shop = c.Name
		v.Stock = entryViews(c)
	}
	return v
}

func entryViews(c *shop.Catalog) []EntryView {
	out := make([]EntryView, 0, len(c.Entries))
	for _, e := range c.Entries {
		out = append(out, EntryView{
			ItemID:    string(e.Item.ID),
			Name:      e.Item.Name,
			BuyPrice:  e.BuyPrice(),
			SellPrice: e.SellPrice(),
			Stock:     e.CurrentStock,
			Infinite:  e.InfiniteStock(),
		})
	}
	return out
}
