package router

import (
	"flexwork/internal/handlers/booking"
	"flexwork/internal/handlers/invitation"
	"flexwork/internal/handlers/relay"
	"flexwork/internal/handlers/stream"
	"flexwork/internal/handlers/team"
	"flexwork/internal/handlers/user"
	"flexwork/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

// Routes is what a server mounts on its root router.
type Routes interface {
	SetupRoutes(router chi.Router)
}

type DomainHandlers struct {
	Booking    booking.Handler
	Team       team.Handler
	User       user.Handler
	Invitation invitation.Handler
	Stream     stream.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.APIKey, r.Auth.Auth, r.Auth.RBAC)

		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Team.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Invitation.Router(routerGroup)
		r.DomainHandlers.Stream.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.AuthRole) *Router {
	return &Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}

// Relay serves the notification relay's unauthenticated surface.
type Relay struct {
	Handler relay.Handler
}

func (r *Relay) SetupRoutes(router chi.Router) {
	r.Handler.Router(router)
}

func NewRelay(handler relay.Handler) *Relay {
	return &Relay{
		Handler: handler,
	}
}
