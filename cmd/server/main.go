package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/config"
	"accuport.cloud/fleet-service/pkg/db"
	"accuport.cloud/fleet-service/pkg/fleet"
	fleetHttp "accuport.cloud/fleet-service/pkg/http"
	"accuport.cloud/fleet-service/pkg/mail"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	cfg, err := config.Load(os.Getenv(common.EnvKeyConfigFile))
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger := common.GetLogger()

	fleetCore := fleet.Fleet{
		VesselDB: *db.GetVesselInstance(db.UseSqliteDialector(cfg.Database.VesselPath)),
		AdminDB:  *db.GetAdminInstance(db.UseSqliteDialector(cfg.Database.AdminPath)),
		Opts: fleet.Options{
			LookbackDays:   cfg.Alerts.LookbackDays,
			CriticalFactor: cfg.Alerts.CriticalFactor,
			SessionTTL:     cfg.Auth.SessionTTL,
		},
	}
	fleetCore.WithServices(fleet.ServiceOpts{
		Alert:       fleetCore.GetIAlert(),
		Measurement: fleetCore.GetIMeasurement(),
		Vessel:      fleetCore.GetIVessel(),
		User:        fleetCore.GetIUser(),
		Auth:        fleetCore.GetIAuth(),
		Limit:       fleetCore.GetILimit(),
	})

	rs := &fleetHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            &fleetCore,
		Mailer:           mail.NewMailer(cfg.SMTP),
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(cfg.Auth.LoginRate), cfg.Auth.LoginBurst),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("login_limiter",
			fmt.Sprintf("{\"login_rate\": %v, \"login_burst\": %v}", cfg.Auth.LoginRate, cfg.Auth.LoginBurst)))

	logger.Info("Starting HTTP server on: " + cfg.HTTP.HostPort)
	if err := rs.Server.Run(cfg.HTTP.HostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
