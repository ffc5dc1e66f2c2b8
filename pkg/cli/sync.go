package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/fetcher"
	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/models"
)

var (
	syncVesselCode string
	syncAll        bool
	syncDays       int
	syncToken      string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Poll the Labcom cloud and store new measurements",
	Long: `sync polls the Labcom backend for one vessel (or every vessel holding
a token), mirrors its sampling points, and stores the measurement window.
Already known measurements are skipped, vendor status alerts are raised
for new ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if syncVesselCode == "" && !syncAll {
			return fmt.Errorf("either --vessel or --all is required")
		}
		if syncVesselCode != "" && syncAll {
			return fmt.Errorf("--vessel and --all are mutually exclusive")
		}
		if syncToken != "" && syncAll {
			return fmt.Errorf("--token only makes sense with --vessel")
		}

		fleetObj := openFleet()

		windowDays := cfg.Labcom.WindowDays
		if syncDays > 0 {
			windowDays = syncDays
		}
		syncer := fetcher.NewSyncer(
			fleetObj,
			fetcher.LabcomFactory(cfg.Labcom.BaseURL, cfg.Labcom.RequestTimeout),
			windowDays,
		)

		if syncAll {
			results, err := syncer.SyncAll(cmd.Context())
			for _, result := range results {
				printSyncResult(cmd, result)
			}
			total := common.Reducer(results, func(acc int, r fetcher.SyncResult) int {
				return acc + r.New
			}, 0)
			cmd.Printf("total: %d new measurements across %d vessels\n", total, len(results))
			return err
		}

		// --token registers or rotates the vessel's Labcom token first, so
		// a brand new vessel can be polled in one go
		if syncToken != "" {
			if err := storeVesselToken(fleetObj, syncVesselCode, syncToken); err != nil {
				return err
			}
		}

		result, err := syncer.SyncByCode(cmd.Context(), syncVesselCode)
		if err != nil {
			return err
		}
		printSyncResult(cmd, *result)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncVesselCode, "vessel", "", "vessel code to sync")
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "sync every vessel holding a Labcom token")
	syncCmd.Flags().IntVar(&syncDays, "days", 0, "measurement window in days (default from config)")
	syncCmd.Flags().StringVar(&syncToken, "token", "", "store this Labcom token on the vessel before syncing")
	rootCmd.AddCommand(syncCmd)
}

func storeVesselToken(fleetObj *fleet.Fleet, code, token string) error {
	vessel, err := fleetObj.Vessel.GetVesselByCode(code)
	if errors.Is(err, fleet.ErrNotFound) {
		vessel = &models.Vessel{VesselID: code, VesselName: code}
	} else if err != nil {
		return err
	}
	vessel.AuthToken = token
	_, err = fleetObj.Vessel.UpsertVessel(vessel)
	return err
}

func printSyncResult(cmd *cobra.Command, result fetcher.SyncResult) {
	cmd.Printf("%s: %d points, %d fetched, %d new, %d duplicate, %d alerts in %s\n",
		result.VesselCode, result.Points, result.Fetched, result.New,
		result.Duplicate, result.Alerts, result.Duration.Round(time.Millisecond))
}
