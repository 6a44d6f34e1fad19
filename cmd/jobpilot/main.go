package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobpilot/internal/auth"
	"jobpilot/internal/config"
	"jobpilot/internal/db"
	"jobpilot/internal/employer"
	httpx "jobpilot/internal/http"
	"jobpilot/internal/job"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	users, jobs, err := openStores(cfg)
	if err != nil {
		log.Fatal(err)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret, cfg.TokenTTL)
	r := httpx.NewRouter(cfg, httpx.Services{
		Auth: auth.NewService(users, jwtSvc),
		Jobs: job.NewService(jobs),
		Employer: &employer.Service{
			Users: users,
			Logos: &employer.LogoStore{
				Dir:       cfg.UploadDir,
				URLPrefix: "/uploads",
				MaxBytes:  cfg.MaxLogoBytes,
			},
		},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (store=%s)\n", cfg.HTTPAddr, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func openStores(cfg config.Config) (auth.UserStore, job.Store, error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Println("using in-memory store; data is lost on exit")
		return auth.NewMemoryUserStore(), job.NewMemoryStore(), nil
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		return nil, nil, err
	}
	return &auth.GormUserStore{DB: gdb}, &job.GormStore{DB: gdb}, nil
}
