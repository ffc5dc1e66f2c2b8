// Package cli implements the accuport operations command line: database
// bootstrap, Labcom sync, alert recalculation, and report export.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"accuport.cloud/fleet-service/pkg/config"
	"accuport.cloud/fleet-service/pkg/db"
	"accuport.cloud/fleet-service/pkg/fleet"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "accuport",
	Short: "AccuPort fleet water-chemistry operations",
	Long: `accuport runs the operational side of the AccuPort fleet service:
schema bootstrap, polling the Labcom cloud for new chemical test results,
re-evaluating measurements against the configured limits, and exporting
measurement history as CSV and charts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// unlike the server, the CLI treats a missing .env as fine
		_ = godotenv.Load()

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml, env ACCUPORT_*)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openFleet opens both stores at their configured paths and wires the
// default service implementations. Opening migrates the schema.
func openFleet() *fleet.Fleet {
	fleetObj := &fleet.Fleet{
		VesselDB: *db.GetVesselInstance(db.UseSqliteDialector(cfg.Database.VesselPath)),
		AdminDB:  *db.GetAdminInstance(db.UseSqliteDialector(cfg.Database.AdminPath)),
		Opts: fleet.Options{
			LookbackDays:   cfg.Alerts.LookbackDays,
			CriticalFactor: cfg.Alerts.CriticalFactor,
			SessionTTL:     cfg.Auth.SessionTTL,
		},
	}
	fleetObj.WithServices(fleet.ServiceOpts{
		Alert:       fleetObj.GetIAlert(),
		Measurement: fleetObj.GetIMeasurement(),
		Vessel:      fleetObj.GetIVessel(),
		User:        fleetObj.GetIUser(),
		Auth:        fleetObj.GetIAuth(),
		Limit:       fleetObj.GetILimit(),
	})
	return fleetObj
}
