// Package projects provides the quoting and approval bounded context module.
package projects

import (
	apphttp "ironmanage_backend/internal/http"
	"ironmanage_backend/internal/projects/handler"
	"ironmanage_backend/internal/projects/repository"
	"ironmanage_backend/internal/projects/service"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the projects bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the projects module with all its dependencies.
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
	return "projects"
}

// RegisterRoutes mounts the project routes under the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/projects"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
