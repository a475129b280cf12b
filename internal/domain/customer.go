package domain

import (
	"context"
	"time"
)

// Customer maps to the legacy `clientes` table. Credential holds the salted
// hash produced by internal/auth, never the plaintext.
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"column:nombre;size:50;not null" json:"nombre"`
	Email      string    `gorm:"column:correo;size:255;not null;uniqueIndex" json:"correo"`
	Credential string    `gorm:"column:contrasena;size:255;not null" json:"-"`
	Country    string    `gorm:"column:pais;size:50" json:"pais,omitempty"`
	Age        *int      `gorm:"column:edad" json:"edad,omitempty"`
	Photo      []byte    `gorm:"column:foto" json:"-"`
	CreatedAt  time.Time `gorm:"column:fecha" json:"fecha"`
	Active     bool      `gorm:"column:status;default:true" json:"-"`
}

func (Customer) TableName() string { return "clientes" }

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
