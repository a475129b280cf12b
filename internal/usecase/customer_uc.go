package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/axcelcuno/tienda/internal/auth"
	"github.com/axcelcuno/tienda/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Country  string
	Age      *int
}

// Register hashes the password and stores the new customer. The repo is
// responsible for the unique-email guarantee; a duplicate surfaces as
// domain.ErrDuplicateEmail with no partial write.
func (uc *CustomerUC) Register(ctx context.Context, in RegisterInput) (uint, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return 0, errors.New("nombre, correo y contrasena son requeridos")
	}
	cred, err := auth.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash contrasena: %w", err)
	}
	c := &domain.Customer{
		Name:       in.Name,
		Email:      in.Email,
		Credential: cred,
		Country:    in.Country,
		Age:        in.Age,
	}
	if err := uc.Customers.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Login returns the customer's display name on success. A missing account is
// domain.ErrNotFound, a wrong password domain.ErrBadCredentials; the caller
// maps both to HTTP statuses.
func (uc *CustomerUC) Login(ctx context.Context, email, password string) (string, error) {
	c, err := uc.Customers.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !auth.Verify(c.Credential, password) {
		return "", domain.ErrBadCredentials
	}
	return c.Name, nil
}
