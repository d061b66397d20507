package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/laundry-app/database"
	"github.com/yeremiapane/laundry-app/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		utils.InfoLogger.Info("AutoMigrate completed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
