package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/models"
)

const (
	contextKeyUser     = "currentUser"
	contextKeyVesselID = "vesselID"
)

func bearerToken(c *gin.Context) string {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(contextKeyUser).(*models.User)
}

func currentVesselID(c *gin.Context) uint {
	return c.MustGet(contextKeyVesselID).(uint)
}

// RequireUser resolves the bearer session into the user behind it. Every
// route past it can rely on currentUser.
func (rs *RestfulServer) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := rs.Fleet.Auth.GetSessionUser(token)
		if err != nil {
			switch {
			case errors.Is(err, fleet.ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, fleet.ErrAccountDisabled):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}

func (rs *RestfulServer) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// RequireVesselAccess checks the vessel in the path against the user's
// visible fleet and stashes the parsed id for the handler.
func (rs *RestfulServer) RequireVesselAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("vessel_id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "vessel_id must be numeric"})
			return
		}

		allowed, err := rs.Fleet.User.CanAccessVessel(currentUser(c), uint(id))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Set(contextKeyVesselID, uint(id))
		c.Next()
	}
}
