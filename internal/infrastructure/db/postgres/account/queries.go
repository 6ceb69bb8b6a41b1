package account

const (
	SelectAccounts = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR cpf ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	CountAccounts = `
		SELECT count(*)
		FROM accounts
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR cpf ILIKE '%' || $1 || '%')
	`
	SelectDeletedAccounts = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
		LIMIT $1 OFFSET $2
	`
	CountDeletedAccounts = `
		SELECT count(*) FROM accounts WHERE deleted_at IS NOT NULL
	`
	SelectAccountByID = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectAccountByIDAny = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE id = $1
	`
	SelectActiveByEmail = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE email = $1 AND deleted_at IS NULL AND id <> $2
	`
	SelectActiveByCPF = `
		SELECT id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
		FROM accounts
		WHERE cpf = $1 AND deleted_at IS NULL AND id <> $2
	`
	InsertAccount = `
		INSERT INTO accounts (name, cpf, email, phone, address, password_hash)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING
		  id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
	`
	UpdateAccountByID = `
		UPDATE accounts
		SET name = NULLIF($1, ''),
		    cpf = NULLIF($2, ''),
		    email = NULLIF($3, ''),
		    phone = NULLIF($4, ''),
		    address = NULLIF($5, ''),
		    password_hash = $6,
		    updated_at = now()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING
		  id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
	`
	SoftDeleteAccountByID = `
		UPDATE accounts
		SET deleted_by = $2,
		    deleted_at = now(),
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING
		  id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
	`
	RestoreAccountByID = `
		UPDATE accounts
		SET deleted_at = NULL,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING
		  id, name, cpf, email, phone, address, password_hash, created_at, updated_at, deleted_at, deleted_by
	`
)
