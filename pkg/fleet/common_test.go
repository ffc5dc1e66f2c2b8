package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"accuport.cloud/fleet-service/pkg/db"
	"accuport.cloud/fleet-service/pkg/models"
)

// GetTestFleetWithMemorySqlite wires a Fleet against the two in-memory
// stores shared by this test process. Tests isolate through unique vessel
// codes and usernames rather than through fresh databases.
func GetTestFleetWithMemorySqlite() *Fleet {
	vesselDB := db.GetVesselInstance(db.UseMemorySqliteDialector("fleettest_vessel"))
	adminDB := db.GetAdminInstance(db.UseMemorySqliteDialector("fleettest_admin"))

	fleetInstance := &Fleet{
		VesselDB: *vesselDB,
		AdminDB:  *adminDB,
		Opts:     DefaultOptions(),
	}
	return fleetInstance.WithServices(ServiceOpts{
		Alert:       fleetInstance.GetIAlert(),
		Measurement: fleetInstance.GetIMeasurement(),
		Vessel:      fleetInstance.GetIVessel(),
		User:        fleetInstance.GetIUser(),
		Auth:        fleetInstance.GetIAuth(),
		Limit:       fleetInstance.GetILimit(),
	})
}

// clearLimits empties the shared limits table so a test controls exactly
// which ranges are in force.
func clearLimits(t *testing.T, fleetObj *Fleet) {
	t.Helper()
	err := fleetObj.AdminDB.Conn.Where("1 = 1").Delete(&models.ParameterLimit{}).Error
	if err != nil {
		t.Fatalf("failed to clear parameter limits: %v", err)
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
