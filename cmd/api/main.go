package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-admin/internal/config"
	authHandler "github.com/jwalitptl/hospital-admin/internal/handler/auth"
	hospitalHandler "github.com/jwalitptl/hospital-admin/internal/handler/hospital"
	patientHandler "github.com/jwalitptl/hospital-admin/internal/handler/patient"
	prometheusHandler "github.com/jwalitptl/hospital-admin/internal/handler/prometheus"
	registrationHandler "github.com/jwalitptl/hospital-admin/internal/handler/registration"
	surgeonHandler "github.com/jwalitptl/hospital-admin/internal/handler/surgeon"
	wardHandler "github.com/jwalitptl/hospital-admin/internal/handler/ward"
	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/router"
	accountService "github.com/jwalitptl/hospital-admin/internal/service/account"
	patientcareService "github.com/jwalitptl/hospital-admin/internal/service/patientcare"
	surgeryService "github.com/jwalitptl/hospital-admin/internal/service/surgery"
	wardService "github.com/jwalitptl/hospital-admin/internal/service/ward"
	"github.com/jwalitptl/hospital-admin/pkg/auth"
	"github.com/jwalitptl/hospital-admin/pkg/logger"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

const version = "1.0.0"

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	if err := model.RegisterValidators(); err != nil {
		log.Fatal(err, "failed to register request validators")
	}

	// The hospital is built once; floors and rooms never change shape
	// after this point.
	store := hospital.NewStore(cfg.Hospital.Floors, cfg.Hospital.RoomsPerFloor)
	m := metrics.NewMetrics("hospital_admin")

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	accountSvc := accountService.NewService(store, jwtSvc, cfg.Session.TTL, m)
	wardSvc := wardService.NewService(store, m)
	patientcareSvc := patientcareService.NewService(store, m)
	surgerySvc := surgeryService.NewService(store, m)

	authMiddleware := middleware.NewAuthMiddleware(accountSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(accountSvc),
		registrationHandler.NewHandler(accountSvc),
		hospitalHandler.NewHandler(accountSvc),
		wardHandler.NewHandler(wardSvc),
		patientHandler.NewHandler(patientcareSvc),
		surgeonHandler.NewHandler(surgerySvc),
		prometheusHandler.New(),
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst: cfg.RateLimit.Burst,
			Version:   version,
		},
	)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info("starting server", "addr", srv.Addr, "floors", cfg.Hospital.Floors, "rooms_per_floor", cfg.Hospital.RoomsPerFloor)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
