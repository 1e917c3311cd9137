package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/cleanup"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx         *chi.Mux
	registry   service.RegistryI
	verifier   service.EmailVerifierI
	proofs     service.ProofVerifier
	jwtService JWTServiceI
}

type ServicesList struct {
	Registry      service.RegistryI
	EmailVerifier service.EmailVerifierI
	ProofVerifier service.ProofVerifier
	JwtService    JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:         chi.NewMux(),
		registry:   servicesOptions.Registry,
		verifier:   servicesOptions.EmailVerifier,
		proofs:     servicesOptions.ProofVerifier,
		jwtService: servicesOptions.JwtService,
	}
	if s.proofs == nil {
		s.proofs = service.NoopProofVerifier{}
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Get("/api/health", s.Health)
	s.mx.Post("/api/send-verification-email", s.SendVerificationEmail)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/accounts", s.CreateAccount)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/account", s.GetAccount)
			r.Put("/account/tier", s.SetTier)
			r.Put("/account/passcode", s.ChangePasscode)
			r.Post("/account/passcode/reset-code", s.RequestPasscodeReset)
			r.Post("/account/passcode/reset", s.ResetPasscode)

			r.Post("/children", s.AddChild)
			r.Get("/children", s.GetChildren)
			r.Post("/children/{id}/tasks", s.AddCustomTask)
			r.Get("/children/{id}/tasks", s.GetTasks)
			r.Get("/children/{id}/custom-quota", s.GetCustomQuota)
			r.Post("/children/{id}/daily-tasks", s.RefreshDailyTasks)

			r.Get("/tasks/pending", s.GetPendingApprovals)
			r.Post("/tasks/approve-all", s.ApproveAll)
			r.Post("/tasks/{id}/submit", s.SubmitTask)
			r.Post("/tasks/{id}/approve", s.ApproveTask)
			r.Post("/tasks/{id}/reject", s.RejectTask)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT/SIGTERM, then shuts down and runs cleanup jobs.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Println("Server started on " + address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		cleanup.CleanUp()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	cleanup.CleanUp()
	return err
}
