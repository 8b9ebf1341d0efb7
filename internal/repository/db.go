package repository

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx so the same repository
// can run against the pool or inside a transaction.
type DBTX interface {
	sqlx.ExtContext
}
