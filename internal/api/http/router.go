package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/jwtx"
	"github.com/wanderstay/wanderstay/pkg/slogx"

	_ "github.com/wanderstay/wanderstay/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      jwtx.Verifier // access-token verifier for the auth gates
	buildVersion  string
	secureCookies bool
	startTime     time.Time
	logger        *slog.Logger

	AuthService     *service.AuthService
	UserService     *service.UserService
	PropertyService *service.PropertyService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	secureCookies bool,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		buildVersion:  buildVersion,
		secureCookies: secureCookies,
		startTime:     time.Now(),
		logger:        logger,
	}

	// Default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerProperties()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Everything unmatched gets the JSON 404, not the stdlib text page.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		errRouteNotFound.Write(w)
	})
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Wanderstay Booking API
//	@version		0.1.0
//	@description	REST API for the Wanderstay booking platform. Authentication uses short-lived JWT access tokens with an HttpOnly refresh cookie.
//
//	@contact.name				Wanderstay Team
//	@contact.url				https://github.com/wanderstay/wanderstay
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP + username to slow both
	// single-account and spray attacks.
	loginHandler := &LoginHandler{
		AuthService:   r.AuthService,
		SecureCookies: r.secureCookies,
	}
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// POST /auth/refresh - moderate limit; a healthy client calls this at
	// most once per access-token lifetime.
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /auth/logout - no gate: logout is idempotent and must work for
	// clients whose tokens already expired.
	logoutHandler := &LogoutHandler{SecureCookies: r.secureCookies}
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /auth/verify - gated; answers from claims only.
	r.Mux.Handle("GET /auth/verify",
		httpx.Chain(&VerifyHandler{},
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.RequireAuth(r.verifier),
		),
	)
}

func (r *Router) registerUsers() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /users",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProperties() {
	propertiesHandler := &PropertiesHandler{PropertyService: r.PropertyService}

	// Catalogue routes serve anonymous traffic but personalize for
	// authenticated viewers, hence the optional gate.
	r.Mux.Handle("GET /properties",
		httpx.Chain(http.HandlerFunc(propertiesHandler.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.OptionalAuth(r.verifier),
		),
	)
	r.Mux.Handle("GET /properties/{id}",
		httpx.Chain(http.HandlerFunc(propertiesHandler.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.OptionalAuth(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /healthz", HealthzHandler(r.startTime, r.buildVersion))
}
