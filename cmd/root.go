package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yeremiapane/laundry-app/config"
	"github.com/yeremiapane/laundry-app/database"
	"github.com/yeremiapane/laundry-app/utils"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "laundry",
	Short: "Laundry booking backend",
	Long: `Laundry booking backend: customer bookings, status tracking and
owner/staff dashboards.

	laundry serve
	laundry migrate
	laundry seed-owner`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (overrides CONFIG_FILE)")
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	utils.SetJWTSecret(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
