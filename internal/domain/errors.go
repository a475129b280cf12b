package domain

import "errors"

var (
	ErrNotFound       = errors.New("no encontrado")
	ErrDuplicateEmail = errors.New("correo ya registrado")
	ErrBadCredentials = errors.New("contraseña incorrecta")
)
