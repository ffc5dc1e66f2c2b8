// Package report renders a vessel's measurement history as a CSV table
// and per-parameter PNG time-series charts.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/models"
)

type Options struct {
	From      time.Time
	To        time.Time
	CSVPath   string
	ChartsDir string
	MaxPoints int
}

type Result struct {
	Rows   int
	Charts []string
}

type Generator struct {
	Fleet *fleet.Fleet
}

func NewGenerator(fleetObj *fleet.Fleet) *Generator {
	return &Generator{Fleet: fleetObj}
}

// Generate pulls every valid measurement of the vessel in the window and
// writes the requested outputs. Charts are one PNG per (sampling point,
// parameter) pair, with the configured watch range drawn in when there
// is one.
func (g *Generator) Generate(vesselID uint, opts Options) (*Result, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReport),
	)

	if opts.CSVPath == "" && opts.ChartsDir == "" {
		return nil, errors.New("at least one of --csv or --charts-dir must be provided")
	}
	if !opts.From.Before(opts.To) {
		return nil, errors.New("from must be before to")
	}

	details, err := g.Fleet.Measurement.GetMeasurementsByEquipmentName(vesselID, "", nil, opts.From, opts.To)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		logger.Info("No measurements in report window", zap.Uint("vesselID", vesselID))
		return &Result{}, nil
	}

	result := &Result{Rows: len(details)}

	if opts.CSVPath != "" {
		if err := writeMeasurementsCSV(opts.CSVPath, details); err != nil {
			return nil, err
		}
		logger.Info("Wrote report CSV", zap.String("path", opts.CSVPath), zap.Int("rows", len(details)))
	}

	if opts.ChartsDir != "" {
		charts, err := g.writeCharts(opts.ChartsDir, details, opts.MaxPoints)
		if err != nil {
			return nil, err
		}
		result.Charts = charts
		logger.Info("Wrote report charts", zap.String("dir", opts.ChartsDir), zap.Int("charts", len(charts)))
	}

	return result, nil
}

func writeMeasurementsCSV(path string, details []fleet.MeasurementDetail) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "sampling_point", "parameter", "value", "unit", "status"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, detail := range details {
		record := []string{
			detail.MeasurementDate.Format(time.RFC3339),
			detail.SamplingPointName,
			detail.ParameterName,
			detail.Value,
			detail.Unit,
			detail.IdealStatus,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

type seriesKey struct {
	point     string
	parameter string
}

func (g *Generator) writeCharts(dir string, details []fleet.MeasurementDetail, maxPoints int) ([]string, error) {
	limits, err := g.Fleet.Limit.ListLimits()
	if err != nil {
		return nil, err
	}

	groups := make(map[seriesKey][]fleet.MeasurementDetail)
	for _, detail := range details {
		if detail.ValueNumeric == nil {
			continue
		}
		key := seriesKey{point: detail.SamplingPointName, parameter: detail.ParameterName}
		groups[key] = append(groups[key], detail)
	}

	keys := make([]seriesKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].point != keys[j].point {
			return keys[i].point < keys[j].point
		}
		return keys[i].parameter < keys[j].parameter
	})

	var paths []string
	for _, key := range keys {
		series := downsampleDetails(groups[key], maxPoints)
		// go-chart cannot render a single point
		if len(series) < 2 {
			continue
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", fileSlug(key.point), fileSlug(key.parameter)))
		limit := limitFor(limits, key.point, key.parameter)
		if err := writeSeriesPNG(path, key, series, limit); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// downsampleDetails thins a series to at most max points while keeping
// the first and last reading.
func downsampleDetails(details []fleet.MeasurementDetail, max int) []fleet.MeasurementDetail {
	if max <= 0 || len(details) <= max {
		return details
	}

	result := make([]fleet.MeasurementDetail, 0, max)
	step := float64(len(details)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= len(details) {
			idx = len(details) - 1
		}
		result = append(result, details[idx])
	}
	return result
}

func limitFor(limits []models.ParameterLimit, pointName, parameterName string) *models.ParameterLimit {
	equipment := fleet.ClassifyEquipment(pointName)
	if equipment == models.EquipmentUnknown {
		return nil
	}
	canonical := fleet.NormalizeParameterName(parameterName)
	for i := range limits {
		if limits[i].EquipmentType == equipment && limits[i].ParameterName == canonical {
			return &limits[i]
		}
	}
	return nil
}

func writeSeriesPNG(path string, key seriesKey, details []fleet.MeasurementDetail, limit *models.ParameterLimit) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	x := make([]time.Time, len(details))
	y := make([]float64, len(details))
	for i, detail := range details {
		x[i] = detail.MeasurementDate
		y[i] = *detail.ValueNumeric
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    fmt.Sprintf("%s / %s", key.point, key.parameter),
			XValues: x,
			YValues: y,
		},
	}
	if limit != nil {
		bound := func(name string, value float64) chart.TimeSeries {
			return chart.TimeSeries{
				Name:    name,
				XValues: []time.Time{x[0], x[len(x)-1]},
				YValues: []float64{value, value},
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			}
		}
		series = append(series,
			bound(fmt.Sprintf("Lower %v", limit.LowerLimit), limit.LowerLimit),
			bound(fmt.Sprintf("Upper %v", limit.UpperLimit), limit.UpperLimit),
		)
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: key.parameter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// fileSlug turns "AB1 Aux Boiler 1" into "ab1-aux-boiler-1".
func fileSlug(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(parts, "-")
}
