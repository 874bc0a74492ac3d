package router

import (
	"plotdesk/internal/handlers/booking"
	"plotdesk/internal/handlers/employee"
	"plotdesk/internal/handlers/helper"
	"plotdesk/internal/handlers/partyplot"
	"plotdesk/internal/handlers/source"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking   booking.Handler
	Employee  employee.Handler
	Helper    helper.Handler
	PartyPlot partyplot.Handler
	Source    source.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Helper.Router(routerGroup)
		r.DomainHandlers.PartyPlot.Router(routerGroup)
		r.DomainHandlers.Source.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
