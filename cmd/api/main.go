package main

import (
	"log"
	"time"

	"github.com/karam/musabaqa/internal/api"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/internal/service"
	"github.com/karam/musabaqa/pkg/cleanup"
	"github.com/karam/musabaqa/pkg/config"
	jwtservice "github.com/karam/musabaqa/pkg/jwt_service"
	"github.com/karam/musabaqa/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	groupsRepo := repository.NewGroupsRepo(&dbCfg)
	membershipsRepo := repository.NewMembershipsRepo(&dbCfg)
	logsRepo := repository.NewDailyLogsRepo(&dbCfg)
	lockedDaysRepo := repository.NewLockedDaysRepo(&dbCfg)
	auditRepo := repository.NewAuditRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	groupsService := service.NewGroupsService(groupsRepo, membershipsRepo, lockedDaysRepo, auditRepo)
	logsService := service.NewLogsService(groupsRepo, membershipsRepo, logsRepo, lockedDaysRepo, auditRepo)
	leaderboardService := service.NewLeaderboardService(groupsRepo, membershipsRepo, logsRepo)

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		GroupsService:      groupsService,
		LogsService:        logsService,
		LeaderboardService: leaderboardService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
		Limiters:           buildLimiters(cfg),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}

// buildLimiters keeps the abuse-prone routes behind per-IP fixed windows.
// With REDIS_ADDR set counters live in redis and survive restarts,
// otherwise each process counts in memory.
func buildLimiters(cfg *config.Config) api.Limiters {
	budgets := map[string]ratelimit.Options{
		"signup":      {MaxRequests: 5, Window: 15 * time.Minute},
		"login":       {MaxRequests: 10, Window: 15 * time.Minute},
		"creategroup": {MaxRequests: 5, Window: time.Hour},
		"joingroup":   {MaxRequests: 10, Window: time.Minute},
		"log":         {MaxRequests: 30, Window: time.Minute},
	}

	build := func(opts ratelimit.Options) ratelimit.Limiter {
		return ratelimit.NewMemoryLimiter(opts)
	}
	if redisAddr := cfg.GetString("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: cfg.GetString("REDIS_PASSWORD"),
		})
		cleanup.Register(&cleanup.Job{
			Name: "closing redis client",
			F:    client.Close,
		})
		build = func(opts ratelimit.Options) ratelimit.Limiter {
			return ratelimit.NewRedisLimiter(client, opts)
		}
	}

	return api.Limiters{
		Signup:      build(budgets["signup"]),
		Login:       build(budgets["login"]),
		CreateGroup: build(budgets["creategroup"]),
		JoinGroup:   build(budgets["joingroup"]),
		UpsertLog:   build(budgets["log"]),
	}
}
