package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"accuport.cloud/fleet-service/pkg/fleet"
)

// respondServiceError maps the service sentinels onto status codes.
// Anything unmapped is an internal error.
func (rs *RestfulServer) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, fleet.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, fleet.ErrInvalidCredentials), errors.Is(err, fleet.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, fleet.ErrAccountDisabled), errors.Is(err, fleet.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, err)
	}
}

const dateLayout = "2006-01-02"

// parseDateWindow reads the optional start_date/end_date query params,
// defaulting to the last 30 days.
func parseDateWindow(c *gin.Context) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", raw)
		}
		from = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", raw)
		}
		to = parsed
	}
	return from, to, nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"username": z.String().Required(),
	"password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckLoginLimiter(req.Username) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	user, token, err := rs.Fleet.Auth.Login(req.Username, req.Password)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if err := rs.Fleet.Auth.Logout(bearerToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ListVessels(c *gin.Context) {
	user := currentUser(c)

	ids, err := rs.Fleet.User.GetUserVessels(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	vessels, err := rs.Fleet.Vessel.GetVesselsByIDs(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, vessels)
}

func (rs *RestfulServer) GetSamplingPoints(c *gin.Context) {
	points, err := rs.Fleet.Vessel.GetSamplingPoints(currentVesselID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	includeResolved := false
	if raw := c.Query("include_resolved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "include_resolved must be a boolean"})
			return
		}
		includeResolved = parsed
	}

	alerts, err := rs.Fleet.Alert.GetVesselAlerts(currentVesselID(c), includeResolved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be numeric"})
		return
	}

	err = rs.Fleet.Alert.AcknowledgeAlert(currentVesselID(c), uint(alertID), currentUser(c).Username)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) RecalculateAlerts(c *gin.Context) {
	result, err := rs.Fleet.Alert.RecalculateVesselAlerts(currentVesselID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) GetSummary(c *gin.Context) {
	rows, err := rs.Fleet.Measurement.GetLatestSummary(currentVesselID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *RestfulServer) GetVesselDetails(c *gin.Context) {
	detail, err := rs.Fleet.Vessel.GetVesselDetail(currentVesselID(c))
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
