package sqlstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// EnsureSchema crea la tabla "Animal" si no existe. No versiona ni migra:
// una base ya creada con otra forma se deja como está.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, db.dialect.createTable); err != nil {
		return fmt.Errorf("create table Animal: %w", err)
	}
	log.Debug().Str("driver", db.dialect.name).Msg("schema ready")
	return nil
}
