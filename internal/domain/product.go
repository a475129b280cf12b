package domain

import (
	"context"
	"time"
)

// Product maps to the legacy `productos` table.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Description string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price       float64   `gorm:"column:precio;type:decimal(10,2);not null;default:0" json:"precio"`
	Photo       []byte    `gorm:"column:foto" json:"-"`
	CreatedAt   time.Time `gorm:"column:fecha" json:"fecha"`
}

func (Product) TableName() string { return "productos" }

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]Product, error)
}
