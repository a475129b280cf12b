package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/axcelcuno/tienda/internal/adapters/httpserver"
	"github.com/axcelcuno/tienda/internal/adapters/repo/postgres"
	"github.com/axcelcuno/tienda/internal/adapters/seeder"
	"github.com/axcelcuno/tienda/internal/config"
	"github.com/axcelcuno/tienda/internal/domain"
	"github.com/axcelcuno/tienda/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	Cfg        config.Config
	CustomerUC *usecase.CustomerUC
	ProductUC  *usecase.ProductUC
}

func NewApp(cfg config.Config, db *gorm.DB) *App {
	custRepo := postgres.NewCustomerRepo(db)
	prodRepo := postgres.NewProductRepo(db)

	return &App{
		DB:         db,
		Cfg:        cfg,
		CustomerUC: &usecase.CustomerUC{Customers: custRepo},
		ProductUC:  &usecase.ProductUC{Products: prodRepo},
	}
}

func (a *App) Migrate() error {
	return a.DB.AutoMigrate(&domain.Customer{}, &domain.Product{})
}

// Seed runs the lenient landing-page import. The server starts even when this
// fails; the caller only logs the outcome.
func (a *App) Seed(ctx context.Context) (seeder.Report, error) {
	im := &seeder.Importer{Products: a.ProductUC.Products}
	return im.ImportFromHTML(ctx, a.Cfg.FrontendDir)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Cfg.FrontendDir, a.CustomerUC, a.ProductUC)
}
