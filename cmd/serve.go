package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/laundry-app/board"
	"github.com/yeremiapane/laundry-app/database"
	"github.com/yeremiapane/laundry-app/metrics"
	"github.com/yeremiapane/laundry-app/router"
	"github.com/yeremiapane/laundry-app/utils"
)

const shutdownTimeout = 10 * time.Second

var seedOnServe bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		if cfg.App.GinMode == gin.ReleaseMode {
			gin.SetMode(gin.ReleaseMode)
		}

		if err := database.Migrate(db); err != nil {
			return err
		}
		if seedOnServe {
			if err := seedOwner(cmd.Context(), db, cfg); err != nil {
				return err
			}
		}
		if cfg.Auth.JWTSecret == "" {
			utils.InfoLogger.Warn("JWT_SECRET is not set; tokens are signed with the built-in development key")
		}
		if cfg.Booking.PlaceholderPassword != "" {
			utils.InfoLogger.Warn("walk-in bookings provision customers with the configured placeholder password")
		}

		metrics.Register()
		hub := board.NewHub()
		r := router.SetupRouter(db, cfg, hub)

		srv := &http.Server{
			Addr:              ":" + cfg.App.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			utils.InfoLogger.Infof("Listening on port %s", cfg.App.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		utils.InfoLogger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnServe, "seed-owner", false, "create the owner account on startup if missing")
	rootCmd.AddCommand(serveCmd)
}
