package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/weathertrigger-console/infrastructure/database"
)

const kvTable = "kv_storage"

// Entry é uma escrita do lote; Value vazio remove a chave
type Entry struct {
	Key   string
	Value string
}

// KVRepository persiste valores inteiros por chave. Não há atualização parcial.
type KVRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	// Apply grava todas as entradas numa única transação: ou todas valem ou nenhuma
	Apply(ctx context.Context, entries ...Entry) error
}

type kvRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewKVRepository(conn database.Conn) KVRepository {
	return &kvRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := squirrel.
		Select("storage_value").
		From(kvTable).
		Where(squirrel.Eq{"storage_key": key}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	return r.upsert(ctx, r.conn, key, value)
}

func (r *kvRepository) Delete(ctx context.Context, keys ...string) error {
	return r.delete(ctx, r.conn, keys...)
}

func (r *kvRepository) Apply(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, e := range entries {
			var err error
			if e.Value == "" {
				err = r.delete(ctx, tx, e.Key)
			} else {
				err = r.upsert(ctx, tx, e.Key, e.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *kvRepository) upsert(ctx context.Context, q database.Queryer, key, value string) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("storage_key", "storage_value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix(`ON CONFLICT (storage_key) DO UPDATE SET
			storage_value = excluded.storage_value,
			updated_at = excluded.updated_at`).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, query, args...)
	return err
}

func (r *kvRepository) delete(ctx context.Context, q database.Queryer, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"storage_key": keys}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, query, args...)
	return err
}
