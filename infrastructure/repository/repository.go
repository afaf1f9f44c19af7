package repository

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scanner cobre *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// insertBatchSize limita a quantidade de linhas por INSERT
const insertBatchSize = 500
