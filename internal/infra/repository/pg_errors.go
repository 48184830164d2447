package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const fkViolationCode = "23503"

// 外部キー違反（参照されている行の削除など）か
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == fkViolationCode
}
