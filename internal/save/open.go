package save

import (
	"context"
	"fmt"

	"github.com/gravitas-games/homestead/internal/config"
)

// Open builds the store selected by cfg.Backend. The returned close function
// is always non-nil.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.Save.Backend {
	case "redis":
		rs, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return nil, func() error { return nil }, err
		}
		return rs, rs.Close, nil
	case "file", "":
		fs, err := NewFileStore(cfg.Save.Dir)
		if err != nil {
			return nil, func() error { return nil }, err
		}
		return fs, func() error { return nil }, nil
	default:
		return nil, func() error { return nil }, fmt.Errorf("unknown save backend %q", cfg.Save.Backend)
	}
}
