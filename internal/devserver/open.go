package devserver

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/database"
)

// Open opens the database at path, seeds it when requested and returns a
// server over it. The caller closes the returned db.
func Open(ctx context.Context, path string, seed bool, opts ...Option) (*Server, *sql.DB, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if seed {
		if err := database.Seed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return New(database.NewRepository(db), opts...), db, nil
}
