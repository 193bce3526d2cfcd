package postgres

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgCode достаёт SQLSTATE из ошибки драйвера: pgx в проде, lib/pq в тестах
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// idList - значение для колонки BIGINT[]; пустой список хранится как NULL
func idList(ids []int64) interface{} {
	if len(ids) == 0 {
		return nil
	}
	return pq.Int64Array(ids)
}

// uniqueIDs - ID без повторов в порядке первого появления
func uniqueIDs(lists ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	var result []int64
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}

// resolveIDs раскрывает список ID в порядке хранения; пустой список даёт nil
func resolveIDs[T any](ids []int64, byID map[int64]T) ([]T, bool) {
	if len(ids) == 0 {
		return nil, true
	}
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok {
			return nil, false
		}
		result = append(result, v)
	}
	return result, true
}

// rowsAffected - 0 строк означает, что сущности нет
func rowsAffected(res interface{ RowsAffected() (int64, error) }) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
