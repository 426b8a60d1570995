// Package materials provides the inventory bounded context module.
package materials

import (
	apphttp "ironmanage_backend/internal/http"
	"ironmanage_backend/internal/materials/handler"
	"ironmanage_backend/internal/materials/repository"
	"ironmanage_backend/internal/materials/service"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the materials bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the materials module with all its dependencies.
func NewModule(pool *pgxpool.Pool, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "materials"
}

// RegisterRoutes mounts the material routes under the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/materials"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
