package postgres

import (
	"context"

	"go.uber.org/zap"
)

// The partial unique indexes are the authoritative uniqueness guard: the
// service pre-checks only exist for friendlier error messages, two concurrent
// creates can both pass them (see the account repository, which remaps the
// violation to the same conflict errors).
const schemaDDL = `
CREATE TABLE IF NOT EXISTS accounts (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100),
	cpf           CHAR(11),
	email         VARCHAR(100),
	phone         VARCHAR(15),
	address       VARCHAR(50),
	password_hash VARCHAR(255),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at    TIMESTAMPTZ,
	deleted_by    BIGINT REFERENCES accounts (id)
);
CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_active_key
	ON accounts (email) WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS accounts_cpf_active_key
	ON accounts (cpf) WHERE deleted_at IS NULL;
`

// EnsureSchema creates the accounts table and indexes when they do not exist.
// A failure is logged as a warning and not returned: the deployment may run
// migrations out of band with a role that cannot issue DDL.
func EnsureSchema(ctx context.Context, logger *zap.Logger, db Querier) {
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		logger.Warn("schema sync skipped", zap.Error(err))
		return
	}
	logger.Info("schema synced")
}
