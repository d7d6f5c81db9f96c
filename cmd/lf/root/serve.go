package root

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"levelforge/internal/api"
	"levelforge/internal/auth"
	"levelforge/internal/config"
	"levelforge/internal/engine"
	"levelforge/internal/storage"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath, err = storage.DefaultDBPath()
				if err != nil {
					return err
				}
			}

			db, err := storage.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := engine.NewService(db)
			authSvc := auth.NewService(svc.UserRepo(), []byte(cfg.JWTSecret), cfg.TokenTTL)
			server := &http.Server{
				Addr:         cfg.Addr,
				Handler:      api.NewServer(svc, authSvc).Handler(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on %s (db %s)", cfg.Addr, dbPath)
				errCh <- server.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-stop:
				log.Printf("received %s, shutting down", sig)
				shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return nil
			}
		},
	}

	return cmd
}
