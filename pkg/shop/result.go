package shop

import "errors"

// Result is the outcome of a buy or sell call.
type Result int

const (
	// ResultSuccess means the transaction was applied.
	ResultSuccess Result = iota
	// ResultInsufficientStock means the entry has fewer units than requested.
	ResultInsufficientStock
	// ResultInsufficientFunds means the balance cannot cover the total cost.
	ResultInsufficientFunds
	// ResultInventoryFull means the purchased units did not all fit. The
	// balance is refunded; units already placed stay in the inventory.
	ResultInventoryFull
	// ResultNotEnoughQuantity means the slot holds fewer units than requested.
	ResultNotEnoughQuantity
	// ResultNotPurchasable means the open shop has no entry for the item.
	ResultNotPurchasable
	// ResultInvalidRequest means a non-positive quantity, a negative buy
	// price or a missing entry, slot, inventory or balance.
	ResultInvalidRequest
)

var (
	ErrInsufficientStock = errors.New("shop: insufficient stock")
	ErrInsufficientFunds = errors.New("shop: insufficient funds")
	ErrInventoryFull     = errors.New("shop: inventory full")
	ErrNotEnoughQuantity = errors.New("shop: not enough quantity")
	ErrNotPurchasable    = errors.New("shop: item not traded here")
	ErrInvalidRequest    = errors.New("shop: invalid request")
)

// String returns a human-readable representation of the result.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultInsufficientStock:
		return "InsufficientStock"
	case ResultInsufficientFunds:
		return "InsufficientFunds"
	case ResultInventoryFull:
		return "InventoryFull"
	case ResultNotEnoughQuantity:
		return "NotEnoughQuantity"
	case ResultNotPurchasable:
		return "NotPurchasable"
	case ResultInvalidRequest:
		return "InvalidRequest"
	default:
		return "Unknown"
	}
}

// OK reports whether r is ResultSuccess.
func (r Result) OK() bool { return r == ResultSuccess }

// Err maps a failed result to its sentinel error, nil on success.
func (r Result) Err() error {
	switch r {
	case ResultSuccess:
		return nil
	case ResultInsufficientStock:
		return ErrInsufficientStock
	case ResultInsufficientFunds:
		return ErrInsufficientFunds
	case ResultInventoryFull:
		return ErrInventoryFull
	case ResultNotEnoughQuantity:
		return ErrNotEnoughQuantity
	case ResultNotPurchasable:
		return ErrNotPurchasable
	default:
		return ErrInvalidRequest
	}
}
