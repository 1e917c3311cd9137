// @title TaskStars API
// @description API for the family task and rewards tracker "TaskStars"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/limbo/taskstars/internal/api"
	"github.com/limbo/taskstars/internal/repository"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/cleanup"
	"github.com/limbo/taskstars/pkg/config"
	jwtservice "github.com/limbo/taskstars/pkg/jwt_service"
)

func init() {
	service.InitValidator()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

func main() {
	cfg := config.New()
	settings := cfg.Settings()
	dbCfg := repository.PGCfg{
		Address:  settings.PostgresAddress,
		Username: settings.PostgresUser,
		Password: settings.PostgresPassword,
		DB:       settings.PostgresDB,
	}
	pool := repository.NewPool(&dbCfg)

	clock := service.SystemClock{}
	dates := service.NewDateProvider(clock, cfg.Location())
	ledger := service.NewDailyLedger()
	registry := service.NewRegistry(service.RegistryDeps{
		Accounts:       repository.NewAccountsRepoWithConn(pool),
		Children:       repository.NewChildrenRepoWithConn(pool),
		Tasks:          repository.NewTasksRepoWithConn(pool),
		Hasher:         service.NewBcryptPasscodes(0),
		Dates:          dates,
		Ledger:         ledger,
		MailMeterScale: settings.MailMeterScale,
	})

	sender, err := service.NewEmailSender(context.Background(), settings.SESRegion, settings.SESFromEmail, settings.SESFromName)
	if err != nil {
		log.Fatal("creating email sender error: " + err.Error())
	}
	limiter := service.NewEmailRateLimiter(clock, settings.EmailRateLimit, settings.EmailRateWindow)
	verifier := service.NewEmailVerificationService(
		limiter,
		service.NewVerificationCodes(clock, settings.VerificationCodeTTL),
		sender,
	)
	startJanitor(limiter, ledger, registry, dates, settings.AccountCacheTTL)

	var proofs service.ProofVerifier = service.NoopProofVerifier{}
	if settings.ProofVerifierURL != "" {
		proofs = service.NewHTTPProofVerifier(settings.ProofVerifierURL, settings.ProofVerifierTimeout)
	}

	serv := api.New(&api.ServicesList{
		Registry:      registry,
		EmailVerifier: verifier,
		ProofVerifier: proofs,
		JwtService:    jwtservice.New(settings.JWTSecret),
	})
	err = serv.Run(settings.APIAddress)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

// startJanitor drops expired rate limit windows, past ledger days and idle
// account views.
func startJanitor(limiter *service.EmailRateLimiter, ledger *service.DailyLedger, registry *service.Registry, dates *service.DateProvider, cacheTTL time.Duration) {
	every := time.Hour
	if cacheTTL > 0 && cacheTTL/2 < every {
		every = cacheTTL / 2
	}
	ticker := time.NewTicker(every)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				limiter.Prune()
				ledger.Prune(dates.Today())
				if cacheTTL > 0 {
					if n := registry.EvictIdle(cacheTTL); n > 0 {
						slog.Debug("evicted idle accounts", slog.Int("count", n))
					}
				}
			case <-done:
				return
			}
		}
	}()
	cleanup.Register(&cleanup.Job{
		Name: "stopping janitor",
		F: func() error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
