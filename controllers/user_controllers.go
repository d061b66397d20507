package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type credentialsRequest struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password"`
}

// Register creates a customer account.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		EmailOrPhone string `json:"email_or_phone"`
		Password     string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Nama, email/No HP dan password diperlukan")
		return
	}

	id, err := uc.Users.Register(c.Request.Context(), req.Name, req.EmailOrPhone, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Registrasi berhasil", gin.H{"userId": id})
}

// Login checks credentials and returns the user summary with a token.
func (uc *UserController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Email/No HP dan password diperlukan")
		return
	}

	user, err := uc.Users.Authenticate(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	uc.respondLogin(c, "Login berhasil", services.Summarize(user))
}

// OwnerLogin is Login for the owner area.
func (uc *UserController) OwnerLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Email/No HP dan password diperlukan")
		return
	}

	user, err := uc.Users.AuthenticateOwner(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		if statusFor(err) == http.StatusForbidden {
			utils.InfoLogger.WithField("login", req.EmailOrPhone).Warn("owner login refused for non-owner role")
		}
		respondServiceError(c, err)
		return
	}
	uc.respondLogin(c, "Login Owner berhasil", services.Summarize(user))
}

func (uc *UserController) respondLogin(c *gin.Context, message string, user services.UserSummary) {
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.ErrorLogger.WithField("user_id", user.ID).Errorf("generate token: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Error saat login")
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"user":  user,
		"token": token,
	})
}

func (uc *UserController) GetEmployees(c *gin.Context) {
	staff, err := uc.Users.ListStaff(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar pegawai", staff)
}

func (uc *UserController) CreateEmployee(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Nama dan No HP pegawai diperlukan")
		return
	}

	id, err := uc.Users.CreateStaff(c.Request.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Employee added", gin.H{"id": id})
}

func (uc *UserController) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := uc.Users.DeleteStaff(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee deleted", gin.H{"id": id})
}
