package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeremiapane/laundry-app/config"
	"github.com/yeremiapane/laundry-app/database"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
	"gorm.io/gorm"
)

var seedOwnerCmd = &cobra.Command{
	Use:   "seed-owner",
	Short: "Create the owner account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		return seedOwner(cmd.Context(), db, cfg)
	},
}

func init() {
	rootCmd.AddCommand(seedOwnerCmd)
}

func seedOwner(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	users := services.NewUserService(db, cfg.Booking.StaffDefaultPass)
	created, err := users.SeedOwner(ctx, cfg.Owner.Email, cfg.Owner.Password)
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	if created {
		utils.InfoLogger.WithField("login", cfg.Owner.Email).Info("owner account created")
	} else {
		utils.InfoLogger.WithField("login", cfg.Owner.Email).Info("owner account already exists")
	}
	return nil
}
