package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/models"
)

var (
	initdbAdminUser  string
	initdbAdminEmail string
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database schema, stock limits, and the first admin",
	Long: `initdb creates both SQLite stores at their configured paths, installs
the stock marine water-chemistry limit table, and optionally bootstraps
the first admin account. The generated password is printed once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// opening the stores runs the schema migration
		fleetObj := openFleet()
		cmd.Printf("Migrated vessel store at %s\n", cfg.Database.VesselPath)
		cmd.Printf("Migrated admin store at %s\n", cfg.Database.AdminPath)

		seeded, err := fleetObj.Limit.SeedDefaultLimits()
		if err != nil {
			return err
		}
		cmd.Printf("Seeded %d parameter limits\n", seeded)

		if initdbAdminUser == "" {
			return nil
		}

		_, err = fleetObj.User.GetUserByUsername(initdbAdminUser)
		if err == nil {
			cmd.Printf("User %s already exists, leaving it alone\n", initdbAdminUser)
			return nil
		}
		if !errors.Is(err, fleet.ErrNotFound) {
			return err
		}

		user, password, err := fleetObj.User.CreateUser(fleet.CreateUserInput{
			Username: initdbAdminUser,
			FullName: "Administrator",
			Email:    initdbAdminEmail,
			Role:     models.RoleAdmin,
		}, 0)
		if err != nil {
			return err
		}

		cmd.Printf("Created admin %s with password %s\n", user.Username, password)
		cmd.Println("Change this password after the first login.")
		return nil
	},
}

func init() {
	initdbCmd.Flags().StringVar(&initdbAdminUser, "admin", "", "bootstrap an admin account with this username")
	initdbCmd.Flags().StringVar(&initdbAdminEmail, "admin-email", "", "email of the bootstrapped admin")
	rootCmd.AddCommand(initdbCmd)
}
