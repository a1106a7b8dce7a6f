package inventory

// SampleItems returns a small farming item set. It backs tests and the
// default world when no item asset file is configured.
func SampleItems() []ItemDefinition {
	return []ItemDefinition{
		{ID: "carrot_seed", Name: "Carrot Seeds", Category: "seed", Stackable: true, MaxStack: 99, BuyPrice: 10, SellPrice: 5},
		{ID: "turnip_seed", Name: "Turnip Seeds", Category: "seed", Stackable: true, MaxStack: 99, BuyPrice: 8, SellPrice: 4},
		{ID: "carrot", Name: "Carrot", Category: "crop", Stackable: true, MaxStack: 50, BuyPrice: 0, SellPrice: 25},
		{ID: "fertilizer", Name: "Basic Fertilizer", Category: "supply", Stackable: true, MaxStack: 20, BuyPrice: 15, SellPrice: 7},
		{ID: "watering_can", Name: "Watering Can", Category: "tool", BuyPrice: 120, SellPrice: 60},
		{ID: "hoe", Name: "Copper Hoe", Category: "tool", BuyPrice: 200, SellPrice: 100},
	}
}
