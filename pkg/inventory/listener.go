package inventory

// Listener is notified after a mutating call changed an inventory.
type Listener interface {
	InventoryChanged(inv *Inventory)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(inv *Inventory)

// InventoryChanged calls f(inv).
func (f ListenerFunc) InventoryChanged(inv *Inventory) { f(inv) }

type listenerEntry struct {
	id int
	l  Listener
}

// RegisterListener subscribes l and returns a function that removes it.
// Listeners run synchronously in registration order.
func (inv *Inventory) RegisterListener(l Listener) (unregister func()) {
	if l == nil {
		return func() {}
	}
	inv.nextListener++
	id := inv.nextListener
	inv.listeners = append(inv.listeners, listenerEntry{id: id, l: l})
	return func() {
		for i, e := range inv.listeners {
			if e.id == id {
				inv.listeners = append(inv.listeners[:i], inv.listeners[i+1:]...)
				return
			}
		}
	}
}

func (inv *Inventory) notify() {
	// copy so a listener may unregister itself
	ls := make([]listenerEntry, len(inv.listeners))
	copy(ls, inv.listeners)
	for _, e := range ls {
		e.l.InventoryChanged(inv)
	}
}
