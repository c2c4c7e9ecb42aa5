// @title Track Star API
// @description REST API for the Track Star activity tracker
// @BasePath /api
// @schemes http
package main

import (
	"log"

	"github.com/astralune/trackstar/internal/api"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/internal/service"
	"github.com/astralune/trackstar/pkg/cleanup"
	"github.com/astralune/trackstar/pkg/config"
	jwtservice "github.com/astralune/trackstar/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()

	var (
		daysRepo       repository.DaysRepositoryI
		activitiesRepo repository.ActivitiesRepositoryI
		usersRepo      repository.UsersRepositoryI
	)
	if cfg.GetStringDefault("STORE_BACKEND", "postgres") == "memory" {
		mem := repository.NewMemoryStore()
		mem.SeedGlobalActivity("Running", "🏃")
		mem.SeedGlobalActivity("Yoga", "🧘")
		daysRepo, activitiesRepo, usersRepo = mem, mem, mem
	} else {
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		daysRepo = repository.NewDaysRepo(&dbCfg)
		activitiesRepo = repository.NewActivitiesRepo(&dbCfg)
		usersRepo = repository.NewUsersRepo(&dbCfg)
	}

	googleClientID := cfg.GetString("GOOGLE_CLIENT_ID")
	serv := api.New(&api.ServicesList{
		DaysService:       service.NewDaysService(daysRepo, activitiesRepo),
		ActivitiesService: service.NewActivitiesService(activitiesRepo),
		UserService:       service.NewUserService(usersRepo),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
		Verifier:          api.NewGoogleVerifier(googleClientID),
		GoogleClientID:    googleClientID,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
