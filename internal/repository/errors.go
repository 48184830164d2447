package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	//他のレコードから参照されていて消せない等
	ErrConflict = errors.New("conflict")
)
