// Package economy holds the player's currency balance.
package economy

// Wallet is a non-negative coin balance. It is not safe for concurrent use.
type Wallet struct {
	coins int
}

// NewWallet returns a wallet holding coins (negative values become 0).
func NewWallet(coins int) *Wallet {
	w := &Wallet{}
	w.Set(coins)
	return w
}

// Coins returns the current balance.
func (w *Wallet) Coins() int { return w.coins }

// Credit adds amount. Non-positive amounts are ignored.
func (w *Wallet) Credit(amount int) {
	if amount > 0 {
		w.coins += amount
	}
}

// Debit removes amount if the balance covers it.
func (w *Wallet) Debit(amount int) bool {
	if amount < 0 || amount > w.coins {
		return false
	}
	w.coins -= amount
	return true
}

// Set overwrites the balance, clamping at zero. Used when loading a save.
func (w *Wallet) Set(coins int) {
	if coins < 0 {
		coins = 0
	}
	w.coins = coins
}
