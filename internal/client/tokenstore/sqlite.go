package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/dbx"
)

// SQLiteStore keeps the token in the local metadata table together with the
// time it was stored.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", false, err
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrEmptyToken
	}

	stamp := s.now().UTC().Format(time.RFC3339Nano)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenSetAtMetadataKey, []byte(stamp))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenMetadataKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.TokenSetAtMetadataKey)
	})
}

func (s *SQLiteStore) IssuedAt(ctx context.Context) (time.Time, bool, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenSetAtMetadataKey)
	if err != nil {
		return time.Time{}, false, err
	}
	if len(v) == 0 {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", common.TokenSetAtMetadataKey, err)
	}
	return t, true, nil
}
