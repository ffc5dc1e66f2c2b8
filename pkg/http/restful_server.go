package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/mail"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	Mailer           mail.Sender
	RateLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(username string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(username)
	}
}

func (rs *RestfulServer) CheckLoginLimiter(username string) bool {
	limiter := rs.GetLimiter(username)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	auth := rs.Server.Group("/auth")
	{
		auth.POST("/login", rs.Login)
		auth.POST("/logout", rs.RequireUser(), rs.Logout)
	}

	vessels := rs.Server.Group("/api/vessels", rs.RequireUser())
	{
		vessels.GET("", rs.ListVessels)

		vessel := vessels.Group("/:vessel_id", rs.RequireVesselAccess())
		{
			vessel.GET("/sampling-points", rs.GetSamplingPoints)
			vessel.GET("/alerts", rs.GetAlerts)
			vessel.POST("/alerts/:alert_id/acknowledge", rs.AcknowledgeAlert)
			vessel.POST("/recalculate", rs.RecalculateAlerts)
			vessel.GET("/summary", rs.GetSummary)
			vessel.GET("/equipment/:page", rs.GetEquipmentPage)
			vessel.GET("/details", rs.GetVesselDetails)
		}
	}

	admin := rs.Server.Group("/api/admin", rs.RequireUser(), rs.RequireAdmin())
	{
		admin.POST("/users", rs.CreateUser)
		admin.GET("/users", rs.ListUsers)
		admin.PATCH("/users/:user_id/status", rs.SetUserStatus)
		admin.POST("/users/:user_id/password-reset", rs.ResetPassword)
		admin.POST("/vessels", rs.CreateVessel)
		admin.GET("/vessels", rs.AdminListVessels)
		admin.PUT("/vessels/:vessel_id/details", rs.UpdateVesselDetails)
		admin.POST("/assignments", rs.AssignVessel)
		admin.DELETE("/assignments", rs.UnassignVessel)
		admin.POST("/hierarchy", rs.AssignManager)
		admin.DELETE("/hierarchy", rs.UnassignManager)
		admin.GET("/hierarchy", rs.GetHierarchy)
		admin.GET("/audit-log", rs.GetAuditLog)
		admin.GET("/limits", rs.ListLimits)
		admin.PUT("/limits", rs.UpsertLimit)
		admin.DELETE("/limits", rs.DeleteLimit)
	}
}
