package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type UserController struct {
	Auth      *services.AuthService
	Profiles  *services.ProfileService
	Bookings  *services.BookingService
	Dashboard *services.DashboardService
}

func NewUserController(
	auth *services.AuthService,
	profiles *services.ProfileService,
	bookings *services.BookingService,
	dashboard *services.DashboardService,
) *UserController {
	return &UserController{Auth: auth, Profiles: profiles, Bookings: bookings, Dashboard: dashboard}
}

type registerPayload struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StudentID string `json:"studentId" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfilePayload struct {
	Name             string `json:"name"`
	StudentID        string `json:"studentId"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	ParentName       string `json:"parentName"`
	ParentPhone      string `json:"parentPhone"`
}

func userResponse(user *models.User, profile *models.Profile) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      profile.Name,
		"email":     user.Email,
		"studentId": profile.StudentID,
	}
}

// ----------------------------------------------------
// 1. Register (POST /api/users/register)
// ----------------------------------------------------

func (uc *UserController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.Auth.CreateUser(payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	profile, err := uc.Profiles.Create(user.ID, payload.Name, payload.StudentID, user.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, err := uc.Auth.IssueToken(user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userResponse(user, profile),
	})
}

// ----------------------------------------------------
// 2. Login (POST /api/users/login)
// ----------------------------------------------------

func (uc *UserController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.Auth.VerifyCredentials(payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	profile, err := uc.Profiles.GetByUserID(user.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, err := uc.Auth.IssueToken(user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user, profile),
	})
}

// ----------------------------------------------------
// 3. Current User (GET /api/users/me)
// ----------------------------------------------------

func (uc *UserController) Me(c *gin.Context) {
	user := currentUser(c)
	profile, err := uc.Profiles.GetByUserID(user.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      profile.Name,
		"studentId": profile.StudentID,
	})
}

// ----------------------------------------------------
// 4. Update Profile (PUT /api/users/profile)
// ----------------------------------------------------

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	user := currentUser(c)
	profile, err := uc.Profiles.Update(user.ID, services.UpdateProfileInput{
		Name:             payload.Name,
		StudentID:        payload.StudentID,
		EmergencyContact: payload.EmergencyContact,
		EmergencyPhone:   payload.EmergencyPhone,
		ParentName:       payload.ParentName,
		ParentPhone:      payload.ParentPhone,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               user.ID,
		"email":            user.Email,
		"name":             profile.Name,
		"studentId":        profile.StudentID,
		"emergencyContact": profile.EmergencyContact,
		"emergencyPhone":   profile.EmergencyPhone,
		"parentName":       profile.ParentName,
		"parentPhone":      profile.ParentPhone,
		"updatedAt":        profile.UpdatedAt,
	})
}

// ----------------------------------------------------
// 5. Dashboard (GET /api/users/dashboard)
// ----------------------------------------------------

func (uc *UserController) GetDashboard(c *gin.Context) {
	bookings, err := uc.Bookings.ListForUser(c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	stats := uc.Dashboard.Summarize(bookings, time.Now())
	c.JSON(http.StatusOK, stats)
}

// currentUser returns the identity the auth middleware resolved for this
// request.
func currentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet("user").(*models.User)
	return user
}
