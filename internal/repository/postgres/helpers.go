package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// encodeIDs сериализует список идентификаторов в JSON-текст колонки
func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode ids: %w", err)
	}
	return string(data), nil
}

// decodeIDs разбирает JSON-текст колонки; пустая строка означает пустой список
func decodeIDs(raw string) ([]string, error) {
	ids := []string{}
	if raw == "" {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode ids: %w", err)
	}
	return ids, nil
}

// replaceAll выполняет DELETE + INSERT для каждой записи в одной транзакции
func replaceAll(ctx context.Context, db *sql.DB, table string, count int, insert func(tx *sql.Tx, i int) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	for i := 0; i < count; i++ {
		if err := insert(tx, i); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}
