package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"accuport.cloud/fleet-service/pkg/fleet"
)

var (
	recalcVesselCode string
	recalcAll        bool
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Re-evaluate stored measurements against the configured limits",
	Long: `recalc walks the recent measurements of a vessel (or the whole fleet),
raises alerts for readings outside their configured limit band, and
resolves alerts whose readings have come back in range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recalcVesselCode == "" && !recalcAll {
			return fmt.Errorf("either --vessel or --all is required")
		}
		if recalcVesselCode != "" && recalcAll {
			return fmt.Errorf("--vessel and --all are mutually exclusive")
		}

		fleetObj := openFleet()

		if recalcAll {
			vessels, err := fleetObj.Vessel.ListVessels()
			if err != nil {
				return err
			}
			for i := range vessels {
				result, err := fleetObj.Alert.RecalculateVesselAlerts(vessels[i].ID)
				if err != nil {
					return fmt.Errorf("recalculate %s: %w", vessels[i].VesselID, err)
				}
				printRecalcResult(cmd, vessels[i].VesselID, result)
			}
			return nil
		}

		vessel, err := fleetObj.Vessel.GetVesselByCode(recalcVesselCode)
		if err != nil {
			return err
		}
		result, err := fleetObj.Alert.RecalculateVesselAlerts(vessel.ID)
		if err != nil {
			return err
		}
		printRecalcResult(cmd, vessel.VesselID, result)
		return nil
	},
}

func init() {
	recalcCmd.Flags().StringVar(&recalcVesselCode, "vessel", "", "vessel code to recalculate")
	recalcCmd.Flags().BoolVar(&recalcAll, "all", false, "recalculate every vessel")
	rootCmd.AddCommand(recalcCmd)
}

func printRecalcResult(cmd *cobra.Command, code string, result *fleet.RecalcResult) {
	cmd.Printf("%s: %d measurements checked, %d alerts created, %d resolved\n",
		code, result.MeasurementsChecked, result.AlertsCreated, result.AlertsResolved)
}
