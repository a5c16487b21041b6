package router

import (
	"estetica/internal/handlers/appointment"
	"estetica/internal/handlers/client"
	"estetica/internal/handlers/inventory"
	"estetica/internal/handlers/procedure"
	"estetica/internal/handlers/receivable"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Appointment appointment.Handler
	Client      client.Handler
	Procedure   procedure.Handler
	Inventory   inventory.Handler
	Receivable  receivable.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Procedure.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Receivable.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
