package usecase

import (
	"context"
	"errors"

	"github.com/axcelcuno/tienda/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

// Create inserts a catalog row. Description defaults to empty and price to
// 0.00 when the caller omits them.
func (uc *ProductUC) Create(ctx context.Context, name, description string, price float64) (uint, error) {
	if name == "" {
		return 0, errors.New("nombre requerido")
	}
	if price < 0 {
		return 0, errors.New("precio negativo")
	}
	p := &domain.Product{Name: name, Description: description, Price: price}
	if err := uc.Products.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (uc *ProductUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}
