package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karam/musabaqa/internal/service"
	"github.com/karam/musabaqa/pkg/ratelimit"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	groupsService      service.GroupsServiceI
	logsService        service.LogsServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	limiters           Limiters
}

type ServicesList struct {
	UserService        service.UserServiceI
	GroupsService      service.GroupsServiceI
	LogsService        service.LogsServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
	Limiters           Limiters
}

// Limiters holds one limiter per throttled route, each with its own
// request budget.
type Limiters struct {
	Signup      ratelimit.Limiter
	Login       ratelimit.Limiter
	CreateGroup ratelimit.Limiter
	JoinGroup   ratelimit.Limiter
	UpsertLog   ratelimit.Limiter
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		groupsService:      servicesOptions.GroupsService,
		logsService:        servicesOptions.LogsService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		limiters:           servicesOptions.Limiters,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(s.RateLimitMiddleware(s.limiters.Signup, "signup")).Post("/signup", s.Signup)
			r.With(s.RateLimitMiddleware(s.limiters.Login, "login")).Post("/login", s.Login)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Get("/me", s.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.With(s.RateLimitMiddleware(s.limiters.CreateGroup, "creategroup")).Post("/groups", s.CreateGroup)
			r.With(s.RateLimitMiddleware(s.limiters.JoinGroup, "joingroup")).Post("/groups/join", s.JoinGroup)

			r.Route("/groups/{slug}", func(r chi.Router) {
				r.Get("/", s.GetGroup)
				r.Patch("/", s.UpdateGroupSettings)
				r.Get("/days", s.GetDays)
				r.Post("/days/{day}", s.SetDayLock)
				r.Get("/members", s.GetMembers)
				r.Delete("/members/{userId}", s.KickMember)
				r.Patch("/members/{userId}", s.ChangeMemberRole)
				r.Get("/invite", s.GetInviteCode)
				r.Post("/invite", s.RegenerateInviteCode)
				r.Get("/logs", s.GetLogs)
				r.With(s.RateLimitMiddleware(s.limiters.UpsertLog, "log")).Put("/logs", s.UpsertLog)
				r.Post("/logs/admin", s.AdminOverrideLog)
				r.Get("/leaderboard", s.GetLeaderboard)
			})
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
