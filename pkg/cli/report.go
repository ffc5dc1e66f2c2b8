package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"accuport.cloud/fleet-service/pkg/report"
)

const dateLayout = "2006-01-02"

var (
	reportVesselCode string
	reportFrom       string
	reportTo         string
	reportCSV        string
	reportChartsDir  string
	reportMaxPoints  int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a vessel's measurement history as CSV and charts",
	Long: `report writes the vessel's measurements of the window as a CSV table
and one PNG time-series chart per (sampling point, parameter) pair, with
the configured limit band drawn in where one exists. Without --csv or
--charts-dir both land under the configured report output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportVesselCode == "" {
			return fmt.Errorf("--vessel is required")
		}

		to := time.Now()
		from := to.AddDate(0, 0, -30)
		var err error
		if reportFrom != "" {
			if from, err = parseDateFlag("--from", reportFrom); err != nil {
				return err
			}
		}
		if reportTo != "" {
			if to, err = parseDateFlag("--to", reportTo); err != nil {
				return err
			}
		}

		fleetObj := openFleet()
		vessel, err := fleetObj.Vessel.GetVesselByCode(reportVesselCode)
		if err != nil {
			return err
		}

		csvPath := reportCSV
		chartsDir := reportChartsDir
		if csvPath == "" && chartsDir == "" {
			stamp := to.Format("20060102")
			csvPath = filepath.Join(cfg.Report.OutputDir, fmt.Sprintf("%s_%s.csv", vessel.VesselID, stamp))
			chartsDir = filepath.Join(cfg.Report.OutputDir, fmt.Sprintf("%s_%s_charts", vessel.VesselID, stamp))
		}

		result, err := report.NewGenerator(fleetObj).Generate(vessel.ID, report.Options{
			From:      from,
			To:        to,
			CSVPath:   csvPath,
			ChartsDir: chartsDir,
			MaxPoints: cfg.ResolveMaxPoints(reportMaxPoints),
		})
		if err != nil {
			return err
		}

		if result.Rows == 0 {
			cmd.Printf("No measurements for %s between %s and %s\n",
				vessel.VesselID, from.Format(dateLayout), to.Format(dateLayout))
			return nil
		}
		if csvPath != "" {
			cmd.Printf("Wrote %d rows to %s\n", result.Rows, csvPath)
		}
		if chartsDir != "" {
			cmd.Printf("Wrote %d charts to %s\n", len(result.Charts), chartsDir)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportVesselCode, "vessel", "", "vessel code to report on")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "window start, YYYY-MM-DD (default 30 days ago)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "window end, YYYY-MM-DD (default now)")
	reportCmd.Flags().StringVar(&reportCSV, "csv", "", "CSV output path")
	reportCmd.Flags().StringVar(&reportChartsDir, "charts-dir", "", "chart output directory")
	reportCmd.Flags().IntVar(&reportMaxPoints, "max-points", 0, "downsample series above this many points (default from config)")
	rootCmd.AddCommand(reportCmd)
}

func parseDateFlag(name, raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", name, raw)
	}
	return parsed, nil
}
