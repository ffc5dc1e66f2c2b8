// Package fetcher is the datafetcher: it polls the Labcom cloud for new
// chemical test results and lands them in the vessel store.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/labcom"
	"accuport.cloud/fleet-service/pkg/models"
)

const defaultWindowDays = 30

// LabcomAPI is the slice of the Labcom client the syncer needs.
type LabcomAPI interface {
	GetCloudAccount(ctx context.Context) (*labcom.CloudAccount, error)
	GetAccounts(ctx context.Context) ([]labcom.Account, error)
	GetMeasurements(ctx context.Context, accountIDs []int, from, to time.Time, parameterName string) ([]labcom.Measurement, error)
}

// ClientFactory builds an API client for one vessel's token.
type ClientFactory func(token string) LabcomAPI

// LabcomFactory is the production factory, pointing every client at the
// same endpoint.
func LabcomFactory(baseURL string, timeout time.Duration) ClientFactory {
	return func(token string) LabcomAPI {
		return labcom.NewClient(baseURL, token, timeout)
	}
}

type Syncer struct {
	Fleet      *fleet.Fleet
	NewClient  ClientFactory
	WindowDays int
}

func NewSyncer(fleetObj *fleet.Fleet, factory ClientFactory, windowDays int) *Syncer {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &Syncer{Fleet: fleetObj, NewClient: factory, WindowDays: windowDays}
}

type SyncResult struct {
	VesselCode string
	VesselID   uint
	Points     int
	Fetched    int
	New        int
	Duplicate  int
	Alerts     int
	Duration   time.Duration
}

// SyncVessel runs one full poll for a vessel: refresh the vessel row from
// its CloudAccount, mirror the sub-accounts as sampling points, then pull
// and store the measurement window. Every run leaves a fetch_logs row,
// failed ones included.
func (s *Syncer) SyncVessel(ctx context.Context, vessel *models.Vessel) (*SyncResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFetcher,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySync),
	)

	startedAt := time.Now()
	to := startedAt
	from := startedAt.AddDate(0, 0, -s.WindowDays)
	result := &SyncResult{VesselCode: vessel.VesselID, VesselID: vessel.ID}

	fail := func(err error) (*SyncResult, error) {
		logger.Error("Vessel sync failed", zap.String("vessel", vessel.VesselID), zap.Error(err))
		s.writeFetchLog(vessel.ID, startedAt, from, to, result, err)
		return nil, err
	}

	if vessel.AuthToken == "" {
		return fail(fmt.Errorf("vessel %s has no Labcom token", vessel.VesselID))
	}

	logger.Info("Starting vessel sync",
		zap.String("vessel", vessel.VesselID),
		zap.Time("from", from),
		zap.Time("to", to))

	client := s.NewClient(vessel.AuthToken)

	cloudAccount, err := client.GetCloudAccount(ctx)
	if err != nil {
		return fail(err)
	}
	updated, err := s.Fleet.Vessel.UpsertVessel(&models.Vessel{
		VesselID:        vessel.VesselID,
		VesselName:      vessel.VesselName,
		Email:           cloudAccount.Email,
		AuthToken:       vessel.AuthToken,
		LabcomAccountID: cloudAccount.ID,
	})
	if err != nil {
		return fail(err)
	}
	result.VesselID = updated.ID

	accounts, err := client.GetAccounts(ctx)
	if err != nil {
		return fail(err)
	}
	for _, account := range accounts {
		_, err := s.Fleet.Vessel.UpsertSamplingPoint(&models.SamplingPoint{
			VesselID:        updated.ID,
			Code:            fmt.Sprintf("LAB%d", account.ID),
			Name:            account.DisplayName(),
			LabcomAccountID: common.Ptr(account.ID),
			IsActive:        1,
		})
		if err != nil {
			return fail(err)
		}
	}
	result.Points = len(accounts)
	logger.Info("Synced sampling points",
		zap.String("vessel", vessel.VesselID),
		zap.Int("points", len(accounts)))

	accountIDs := common.Mapper(accounts, func(a labcom.Account) int { return a.ID })
	measurements, err := client.GetMeasurements(ctx, accountIDs, from, to, "")
	if err != nil {
		return fail(err)
	}
	result.Fetched = len(measurements)

	items := common.Mapper(measurements, func(m labcom.Measurement) fleet.FetchedMeasurement {
		return fleet.FetchedMeasurement{
			LabcomMeasurementID: m.ID,
			LabcomAccountID:     m.AccountID,
			LabcomParameterID:   m.ParameterID,
			ParameterName:       m.Parameter,
			Value:               m.Value.String(),
			Timestamp:           m.Timestamp,
			Unit:                m.Unit,
			Comment:             m.Comment,
			IdealLow:            m.IdealLow.String(),
			IdealHigh:           m.IdealHigh.String(),
			IdealStatus:         m.IdealStatus,
			OperatorName:        m.OperatorName,
			DeviceSerial:        m.DeviceSerial,
		}
	})
	stored, err := s.Fleet.Measurement.StoreFetchedMeasurements(updated.ID, items)
	if err != nil {
		return fail(err)
	}
	result.New = stored.New
	result.Duplicate = stored.Duplicate
	result.Alerts = stored.Alerts
	result.Duration = time.Since(startedAt)

	s.writeFetchLog(updated.ID, startedAt, from, to, result, nil)
	logger.Info("Vessel sync finished",
		zap.String("vessel", vessel.VesselID),
		zap.Int("fetched", result.Fetched),
		zap.Int("new", result.New),
		zap.Int("duplicate", result.Duplicate),
		zap.Int("alerts", result.Alerts),
		zap.Duration("took", result.Duration))
	return result, nil
}

// SyncByCode resolves the vessel row first, so callers can hand over the
// code from the command line.
func (s *Syncer) SyncByCode(ctx context.Context, code string) (*SyncResult, error) {
	vessel, err := s.Fleet.Vessel.GetVesselByCode(code)
	if err != nil {
		return nil, err
	}
	return s.SyncVessel(ctx, vessel)
}

// SyncAll polls every vessel holding a token. A failing vessel does not
// stop the others, but the run as a whole reports the failure.
func (s *Syncer) SyncAll(ctx context.Context) ([]SyncResult, error) {
	vessels, err := s.Fleet.Vessel.ListSyncableVessels()
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(vessels))
	failed := 0
	for i := range vessels {
		result, err := s.SyncVessel(ctx, &vessels[i])
		if err != nil {
			failed++
			continue
		}
		results = append(results, *result)
	}
	if failed > 0 {
		return results, fmt.Errorf("sync failed for %d of %d vessels", failed, len(vessels))
	}
	return results, nil
}

func (s *Syncer) writeFetchLog(vesselID uint, startedAt, from, to time.Time, result *SyncResult, runErr error) {
	endedAt := time.Now()
	entry := &models.FetchLog{
		VesselID:              vesselID,
		FetchStart:            startedAt,
		FetchEnd:              &endedAt,
		Status:                models.FetchStatusSuccess,
		MeasurementsFetched:   result.Fetched,
		MeasurementsNew:       result.New,
		MeasurementsDuplicate: result.Duplicate,
		DateRangeFrom:         &from,
		DateRangeTo:           &to,
	}
	if runErr != nil {
		entry.Status = models.FetchStatusFailed
		entry.ErrorMessage = runErr.Error()
	}
	if err := s.Fleet.Vessel.CreateFetchLog(entry); err != nil {
		common.GetLoggerWith(
			common.LoggerNameFetcher,
			zap.String(common.LoggerFieldCategory, common.LoggerCategorySync),
		).Error("Failed to write fetch log", zap.Uint("vesselID", vesselID), zap.Error(err))
	}
}
