package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astralune/trackstar/internal/service"
)

type Server struct {
	mx                *chi.Mux
	daysService       service.DaysServiceI
	activitiesService service.ActivitiesServiceI
	userService       service.UserServiceI
	jwtService        JWTServiceI
	verifier          CredentialVerifierI
	googleClientID    string
}

type ServicesList struct {
	DaysService       service.DaysServiceI
	ActivitiesService service.ActivitiesServiceI
	UserService       service.UserServiceI
	JwtService        JWTServiceI
	Verifier          CredentialVerifierI
	GoogleClientID    string
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		daysService:       servicesOptions.DaysService,
		activitiesService: servicesOptions.ActivitiesService,
		userService:       servicesOptions.UserService,
		jwtService:        servicesOptions.JwtService,
		verifier:          servicesOptions.Verifier,
		googleClientID:    servicesOptions.GoogleClientID,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/config", s.GetConfig)
		r.Post("/auth/google", s.GoogleSignIn)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/week", s.GetWeek)
			r.Post("/day/{id}", s.UpdateDay)
			r.Get("/stats", s.GetStats)
			r.Get("/activities", s.GetActivities)
			r.Delete("/activities/{id}", s.DeleteActivity)
			r.Get("/user/profile", s.GetProfile)
			r.Patch("/user/profile", s.UpdateProfile)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
