// Package content loads item and shop assets from YAML files. Records that
// fail validation are dropped with a warning so one bad asset does not stop
// the game from starting; malformed YAML is an error.
package content

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/homestead/pkg/inventory"
	"github.com/gravitas-games/homestead/pkg/shop"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// itemRecord is the on-disk item definition. The id is not required here;
// the catalog reports missing ids itself.
type itemRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Stackable   bool   `yaml:"stackable"`
	MaxStack    int    `yaml:"max_stack" validate:"gte=0"`
	BuyPrice    int    `yaml:"buy_price" validate:"gte=0"`
	SellPrice   int    `yaml:"sell_price" validate:"gte=0"`
}

type itemFile struct {
	Items []itemRecord `yaml:"items"`
}

type entryRecord struct {
	Item      string `yaml:"item" validate:"required"`
	BuyPrice  *int   `yaml:"buy_price" validate:"omitempty,gte=0"`
	SellPrice *int   `yaml:"sell_price" validate:"omitempty,gte=0"`
	// Stock omitted means infinite.
	Stock *int `yaml:"stock"`
}

type shopRecord struct {
	Name    string        `yaml:"name" validate:"required"`
	Entries []entryRecord `yaml:"entries"`
}

type shopFile struct {
	Shops []shopRecord `yaml:"shops"`
}

// LoadItems reads an item asset file.
func LoadItems(path string, log *slog.Logger) ([]inventory.ItemDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return ParseItems(data, log)
}

// ParseItems decodes item definitions, dropping invalid records.
func ParseItems(data []byte, log *slog.Logger) ([]inventory.ItemDefinition, error) {
	log = orDiscard(log)
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	out := make([]inventory.ItemDefinition, 0, len(f.Items))
	for i, rec := range f.Items {
		if err := validate.Struct(rec); err != nil {
			log.Warn("invalid item record, skipped", "index", i, "id", rec.ID, "error", describe(err))
			continue
		}
		out = append(out, inventory.ItemDefinition{
			ID:          inventory.ItemID(rec.ID),
			Name:        rec.Name,
			Category:    rec.Category,
			Description: rec.Description,
			Stackable:   rec.Stackable,
			MaxStack:    rec.MaxStack,
			BuyPrice:    rec.BuyPrice,
			SellPrice:   rec.SellPrice,
		})
	}
	return out, nil
}

// LoadShops reads a shop asset file, resolving items against catalog.
func LoadShops(path string, catalog *inventory.Catalog, log *slog.Logger) ([]*shop.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shops file: %w", err)
	}
	return ParseShops(data, catalog, log)
}

// ParseShops decodes shop catalogs. Entries naming unknown items and shops
// repeating an earlier name are skipped. Returned catalogs are restocked.
func ParseShops(data []byte, catalog *inventory.Catalog, log *slog.Logger) ([]*shop.Catalog, error) {
	if !catalog.IsInitialized() {
		return nil, inventory.ErrCatalogNotInitialized
	}
	log = orDiscard(log)
	var f shopFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse shops: %w", err)
	}

	seen := make(map[string]bool, len(f.Shops))
	out := make([]*shop.Catalog, 0, len(f.Shops))
	for i, rec := range f.Shops {
		if err := validate.Struct(rec); err != nil {
			log.Warn("invalid shop record, skipped", "index", i, "error", describe(err))
			continue
		}
		if seen[rec.Name] {
			log.Warn("duplicate shop name, keeping first", "shop", rec.Name)
			continue
		}
		seen[rec.Name] = true

		entries := make([]*shop.Entry, 0, len(rec.Entries))
		for j, er := range rec.Entries {
			if err := validate.Struct(er); err != nil {
				log.Warn("invalid shop entry, skipped", "shop", rec.Name, "index", j, "error", describe(err))
				continue
			}
			def, err := catalog.Resolve(inventory.ItemID(er.Item))
			if err != nil {
				log.Warn("shop entry references unknown item, skipped", "shop", rec.Name, "item", er.Item)
				continue
			}
			stock := -1
			if er.Stock != nil {
				stock = *er.Stock
			}
			entries = append(entries, &shop.Entry{
				Item:              def,
				BuyPriceOverride:  er.BuyPrice,
				SellPriceOverride: er.SellPrice,
				StockLimit:        stock,
			})
		}
		out = append(out, shop.NewCatalog(rec.Name, entries...))
	}
	return out, nil
}

// SampleShops builds the default shops over the sample items.
func SampleShops(catalog *inventory.Catalog) []*shop.Catalog {
	entry := func(id inventory.ItemID, stock int) *shop.Entry {
		def, ok := catalog.Lookup(id)
		if !ok {
			return nil
		}
		return &shop.Entry{Item: def, StockLimit: stock}
	}
	general := shop.NewCatalog("general", compact(
		entry("carrot_seed", 20),
		entry("turnip_seed", 20),
		entry("fertilizer", -1),
		entry("carrot", 0),
	)...)
	smith := shop.NewCatalog("blacksmith", compact(
		entry("watering_can", 1),
		entry("hoe", 1),
	)...)
	return []*shop.Catalog{general, smith}
}

func compact(entries ...*shop.Entry) []*shop.Entry {
	out := entries[:0]
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return log
}
