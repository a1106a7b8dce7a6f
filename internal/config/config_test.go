package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  id: p1\n"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cfg.Game.InventorySlots != 12 || cfg.Game.StartingCoins != 100 {
		t.Fatalf("defaults not applied: %+v", cfg.Game)
	}
	if cfg.Player.ID != "p1" {
		t.Fatalf("expected player id p1, got %q", cfg.Player.ID)
	}
	if cfg.Save.Backend != "file" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected defaults: save=%+v log=%+v", cfg.Save, cfg.Log)
	}
}

func TestParseRejectsBadBackend(t *testing.T) {
	if _, err := Parse([]byte("save:\n  backend: tape\n")); err == nil {
		t.Fatalf("expected backend validation error")
	}
	if _, err := Parse([]byte("game:\n  inventory_slots: -2\n")); err == nil {
		t.Fatalf("expected slot validation error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homestead.yaml")
	body := "game:\n  inventory_slots: 4\n  starting_coins: 25\nsave:\n  backend: redis\nredis:\n  address: cache:6379\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Game.InventorySlots != 4 || cfg.Game.StartingCoins != 25 {
		t.Fatalf("unexpected game config: %+v", cfg.Game)
	}
	if cfg.Redis.Address != "cache:6379" || cfg.Save.Backend != "redis" {
		t.Fatalf("unexpected redis config: %+v %+v", cfg.Redis, cfg.Save)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
