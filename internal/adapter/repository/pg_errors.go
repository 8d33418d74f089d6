package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de erro do PostgreSQL relevantes para o motor de ingestão
const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

// Tempo máximo de espera por bloqueio de linha dentro das transações de
// mutação. Estourado o limite, a transação inteira é desfeita.
const lockTimeout = "5s"

// isUniqueViolation verifica se o erro é uma violação de chave única
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isLockNotAvailable verifica se o erro é estouro do tempo de espera por bloqueio
func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}
