package account

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already in use by an active account")
	ErrCPFAlreadyExists   = errors.New("cpf already in use by an active account")
)
