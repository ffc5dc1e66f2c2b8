package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/fleet"
	"accuport.cloud/fleet-service/pkg/models"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be numeric", name)})
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s query parameter must be numeric", name)})
		return 0, false
	}
	return uint(id), true
}

var roleNames = []string{
	string(models.RoleVesselManager),
	string(models.RoleFleetManager),
	string(models.RoleAdmin),
	string(models.RoleVesselUser),
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

var createUserRequestSchema = z.Struct(z.Shape{
	"username": z.String().Required(),
	"fullname": z.String().Required(),
	"role":     z.String().OneOf(roleNames).Required(),
	"password": z.String(),
	"email":    z.String(),
})

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := createUserRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, password, err := rs.Fleet.User.CreateUser(fleet.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.Fullname,
		Email:    req.Email,
		Role:     models.Role(req.Role),
	}, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	rs.sendMail(user, password, false)

	// the password is echoed back because mail delivery is optional and
	// generated credentials have to reach the operator somehow
	c.JSON(http.StatusCreated, gin.H{"user": user, "password": password})
}

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	users, err := rs.Fleet.User.ListUsers(models.Role(c.Query("role")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type UserStatusRequest struct {
	Action string `json:"action"`
}

var userStatusRequestSchema = z.Struct(z.Shape{
	"action": z.String().OneOf([]string{"activate", "deactivate"}).Required(),
})

func (rs *RestfulServer) SetUserStatus(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	var req UserStatusRequest
	if err := userStatusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Fleet.User.SetUserStatus(userID, req.Action == "activate", currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ResetPassword(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	user, password, err := rs.Fleet.User.ResetPassword(userID, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	rs.sendMail(user, password, true)

	c.JSON(http.StatusOK, gin.H{"username": user.Username, "password": password})
}

// sendMail delivers credentials without ever failing the admin operation
// that produced them.
func (rs *RestfulServer) sendMail(user *models.User, password string, reset bool) {
	if rs.Mailer == nil || user.Email == "" {
		return
	}

	var err error
	if reset {
		err = rs.Mailer.SendPasswordReset(user.Email, user.FullName, user.Username, password)
	} else {
		err = rs.Mailer.SendWelcome(user.Email, user.FullName, user.Username, password)
	}
	if err != nil {
		common.GetLoggerWith(
			common.LoggerNameRestfulServer,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryMail),
		).Warn("Credential mail failed",
			zap.String("username", user.Username),
			zap.Error(err))
	}
}

type CreateVesselRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var createVesselRequestSchema = z.Struct(z.Shape{
	"code":  z.String().Required(),
	"name":  z.String().Required(),
	"email": z.String(),
})

func (rs *RestfulServer) CreateVessel(c *gin.Context) {
	var req CreateVesselRequest
	if err := createVesselRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	vessel, err := rs.Fleet.Vessel.CreateVessel(req.Code, req.Name, req.Email, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vessel)
}

func (rs *RestfulServer) AdminListVessels(c *gin.Context) {
	vessels, err := rs.Fleet.Vessel.AdminListVessels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, vessels)
}

// UpdateVesselDetails replaces the equipment specification sheet. The
// sheet is all free-form text, so the model binds directly.
func (rs *RestfulServer) UpdateVesselDetails(c *gin.Context) {
	vesselID, ok := parseUintParam(c, "vessel_id")
	if !ok {
		return
	}

	var detail models.VesselDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rs.Fleet.Vessel.UpdateVesselDetail(vesselID, &detail, currentUser(c).ID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AssignmentRequest struct {
	User   int `json:"user"`
	Vessel int `json:"vessel"`
}

var assignmentRequestSchema = z.Struct(z.Shape{
	"user":   z.Int().Required(),
	"vessel": z.Int().Required(),
})

func (rs *RestfulServer) AssignVessel(c *gin.Context) {
	var req AssignmentRequest
	if err := assignmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Fleet.User.AssignVessel(uint(req.User), uint(req.Vessel), currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (rs *RestfulServer) UnassignVessel(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user")
	if !ok {
		return
	}
	vesselID, ok := parseUintQuery(c, "vessel")
	if !ok {
		return
	}

	err := rs.Fleet.User.UnassignVessel(userID, vesselID, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HierarchyRequest struct {
	Manager     int `json:"manager"`
	Subordinate int `json:"subordinate"`
}

var hierarchyRequestSchema = z.Struct(z.Shape{
	"manager":     z.Int().Required(),
	"subordinate": z.Int().Required(),
})

func (rs *RestfulServer) AssignManager(c *gin.Context) {
	var req HierarchyRequest
	if err := hierarchyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Fleet.User.AssignManager(uint(req.Manager), uint(req.Subordinate), currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (rs *RestfulServer) UnassignManager(c *gin.Context) {
	managerID, ok := parseUintQuery(c, "manager")
	if !ok {
		return
	}
	subordinateID, ok := parseUintQuery(c, "subordinate")
	if !ok {
		return
	}

	err := rs.Fleet.User.UnassignManager(managerID, subordinateID, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetHierarchy lists every vessel manager with their fleet manager, or
// the subordinates of one fleet manager when ?manager= is given.
func (rs *RestfulServer) GetHierarchy(c *gin.Context) {
	if c.Query("manager") != "" {
		managerID, ok := parseUintQuery(c, "manager")
		if !ok {
			return
		}
		subordinates, err := rs.Fleet.User.GetSubordinateManagers(managerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subordinates": subordinates})
		return
	}

	managers, err := rs.Fleet.User.ListVesselManagers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vessel_managers": managers})
}

func (rs *RestfulServer) GetAuditLog(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit query parameter must be numeric"})
			return
		}
		limit = parsed
	}

	var adminUserID uint
	if c.Query("admin") != "" {
		parsed, ok := parseUintQuery(c, "admin")
		if !ok {
			return
		}
		adminUserID = parsed
	}

	entries, err := rs.Fleet.User.GetAuditLog(limit, adminUserID, c.Query("action"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

type LimitGroup struct {
	Equipment models.EquipmentType    `json:"equipment"`
	Limits    []models.ParameterLimit `json:"limits"`
}

func (rs *RestfulServer) ListLimits(c *gin.Context) {
	rows, err := rs.Fleet.Limit.ListLimits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	// rows arrive ordered by equipment then parameter, so grouping is a
	// single pass
	groups := []LimitGroup{}
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Equipment != row.EquipmentType {
			groups = append(groups, LimitGroup{Equipment: row.EquipmentType})
		}
		groups[len(groups)-1].Limits = append(groups[len(groups)-1].Limits, row)
	}

	c.JSON(http.StatusOK, groups)
}

type LimitRequest struct {
	Equipment string  `json:"equipment"`
	Parameter string  `json:"parameter"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
}

var limitRequestSchema = z.Struct(z.Shape{
	"equipment": z.String().Required(),
	"parameter": z.String().Required(),
	"lower":     z.Float64(),
	"upper":     z.Float64(),
})

func (rs *RestfulServer) UpsertLimit(c *gin.Context) {
	var req LimitRequest
	if err := limitRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if req.Lower > req.Upper {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lower must not exceed upper"})
		return
	}

	err := rs.Fleet.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentType(req.Equipment),
		ParameterName: req.Parameter,
		LowerLimit:    req.Lower,
		UpperLimit:    req.Upper,
	}, currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) DeleteLimit(c *gin.Context) {
	equipment := c.Query("equipment")
	parameter := c.Query("parameter")
	if equipment == "" || parameter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "equipment and parameter query parameters are required"})
		return
	}

	err := rs.Fleet.Limit.DeleteLimit(models.EquipmentType(equipment), parameter, currentUser(c).ID)
	if err != nil {
		rs.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
