package models

import "time"

// Player identifies the owner of an inventory, wallet and save slot.
type Player struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`

	// FarmName is display text only.
	FarmName string `json:"farm_name,omitempty" yaml:"farm_name"`

	LastSaved time.Time `json:"last_saved,omitempty" yaml:"-"`
}

// Label returns a display name, falling back to the id.
func (p *Player) Label() string {
	if p.Username != "" {
		return p.Username
	}
	return p.ID
}

// Valid reports whether the player can own a save.
func (p *Player) Valid() bool {
	return p != nil && p.ID != ""
}
