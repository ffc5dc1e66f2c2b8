package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accuport.cloud/fleet-service/pkg/fleet"
)

// Parameter bundles per equipment page. These mirror what the crews
// actually submit through Labcom, so changing them only changes what a
// page shows, never what is stored.
var (
	boilerParameters = []string{
		"Phosphate", "P-Alkalinity", "M-Alkalinity", "Chloride",
		"pH", "Hydrazine", "DEHA", "Conductivity",
	}
	coolingParameters  = []string{"Nitrite", "pH", "Chloride"}
	mainLubeParameters = []string{"TBN", "Water Content", "Viscosity"}
	scavengeParameters = []string{"Iron-in-Oil", "BaseNumber"}
	auxLubeParameters  = []string{"TBN", "BaseNumber"}
	potableParameters  = []string{
		"pH", "Total Alkalinity", "Turbidity", "Total Dissolved Solids",
		"Total Hardness CaCO3", "Conductivity", "Chlorine", "Sulphate",
		"Total Chlorine", "Iron", "Lead", "Nickel", "Zinc", "Cadmium",
		"Copper", "Permanganate Value", "E. coli",
	}
	sewageParameters = []string{
		"pH", "COD", "Free Chlorine", "Turbidity", "E. coli", "Permanganate Value",
	}
	ballastParameters = []string{
		"Total Viable Count", "Vibrio Cholerae", "Enterococci", "E. coli",
		"Chlorine Dioxide", "Free Chlorine", "Ozone", "Peracetic Acid",
		"Hydrogen Peroxide",
	}
)

// pageSeries is one named series of an equipment page: measurements from
// sampling points matching Pattern, restricted to Parameters. Scavenge
// drain readings need their own lookup because point names drift across
// vessels.
type pageSeries struct {
	Label         string
	Pattern       string
	Parameters    []string
	ScavengeDrain bool
}

func equipmentPageSeries(page string, unit int) []pageSeries {
	switch page {
	case "boiler-water":
		return []pageSeries{
			{Label: "boiler1", Pattern: "AB1 Aux Boiler", Parameters: boilerParameters},
			{Label: "boiler2", Pattern: "AB2 Aux Boiler", Parameters: boilerParameters},
			{Label: "composite", Pattern: "CB Composite Boiler", Parameters: boilerParameters},
			{Label: "hotwell", Pattern: "Hotwell", Parameters: boilerParameters},
		}
	case "main-engine":
		return []pageSeries{
			{Label: "cooling", Pattern: "ME Main Engine", Parameters: coolingParameters},
			{Label: "lube", Pattern: "ME Main Engine", Parameters: mainLubeParameters},
			{Label: "scavenge", Parameters: scavengeParameters, ScavengeDrain: true},
		}
	case "aux-engine":
		pattern := fmt.Sprintf("AE%d Aux Engine", unit)
		return []pageSeries{
			{Label: "cooling", Pattern: pattern, Parameters: coolingParameters},
			{Label: "lube", Pattern: pattern, Parameters: auxLubeParameters},
		}
	case "potable-water":
		return []pageSeries{
			{Label: "water", Pattern: "PW1 Potable Water", Parameters: potableParameters},
		}
	case "treated-sewage":
		return []pageSeries{
			{Label: "water", Pattern: "GW Treated Sewage", Parameters: sewageParameters},
		}
	case "ballast-water":
		return []pageSeries{
			{Label: "water", Pattern: "Ballast Water", Parameters: ballastParameters},
		}
	default:
		return nil
	}
}

func (rs *RestfulServer) GetEquipmentPage(c *gin.Context) {
	vesselID := currentVesselID(c)
	page := c.Param("page")

	unit := 1
	if raw := c.Query("unit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit must be a positive integer"})
			return
		}
		unit = parsed
	}

	series := equipmentPageSeries(page, unit)
	if series == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown equipment page %q", page)})
		return
	}

	from, to, err := parseDateWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := make(map[string][]fleet.MeasurementDetail, len(series))
	for _, s := range series {
		var rows []fleet.MeasurementDetail
		var err error
		if s.ScavengeDrain {
			rows, err = rs.Fleet.Measurement.GetScavengeDrainMeasurements(vesselID, s.Parameters, from, to)
		} else {
			rows, err = rs.Fleet.Measurement.GetMeasurementsByEquipmentName(vesselID, s.Pattern, s.Parameters, from, to)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, err)
			return
		}
		data[s.Label] = rows
	}

	c.JSON(http.StatusOK, gin.H{
		"page":       page,
		"unit":       unit,
		"start_date": from.Format(dateLayout),
		"end_date":   to.Format(dateLayout),
		"series":     data,
	})
}
