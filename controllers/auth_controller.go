package controllers

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// RegistrationData is the pending registration held in the session
// until the OTP is verified.
type RegistrationData struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
}

// RegisterUser starts a registration: validates the form, parks the
// data in the session and emails an OTP.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Registration attempt for email: %s", req.Email)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.BadRequest(c, "Invalid username", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}
	if req.Phone != "" {
		valid, formatted := utils.ValidatePhone(req.Phone)
		if !valid {
			utils.BadRequest(c, "Invalid phone", formatted)
			return
		}
		req.Phone = formatted
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - account exists for email: %s", req.Email)
		utils.Conflict(c, "An account with this email or username already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hashed,
		FirstName:  utils.SanitizeString(req.FirstName),
		LastName:   utils.SanitizeString(req.LastName),
		Phone:      req.Phone,
		OTP:        otp,
		OTPExpires: time.Now().Add(10 * time.Minute).Unix(),
	}

	session := sessions.Default(c)
	session.Set("registration", data)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save registration session: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", nil)
		return
	}

	utils.LogInfo("OTP sent for registration of %s", req.Email)
	utils.Success(c, "OTP sent to your email. Verify to complete registration.", gin.H{
		"email":      req.Email,
		"expires_in": "10m",
	})
}

// VerifyRegistrationOTP completes a registration once the emailed OTP
// checks out.
func VerifyRegistrationOTP(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. otp is required", err.Error())
		return
	}

	session := sessions.Default(c)
	val := session.Get("registration")
	data, ok := val.(RegistrationData)
	if !ok {
		utils.LogError("OTP verification without pending registration")
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}

	if time.Now().Unix() > data.OTPExpires {
		utils.LogError("Expired OTP for registration of %s", data.Email)
		utils.BadRequest(c, "OTP has expired. Please register again.", nil)
		return
	}
	if req.OTP != data.OTP {
		utils.LogError("Wrong OTP for registration of %s", data.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	user := models.User{
		Username:   data.Username,
		Email:      data.Email,
		Password:   data.Password,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to create account", err.Error())
		return
	}

	session.Delete("registration")
	_ = session.Save()

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for new user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Account created but login failed. Please login.", nil)
		return
	}

	utils.LogInfo("Registration completed for %s", user.Email)
	utils.Created(c, "Registration successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser authenticates a customer and returns a JWT
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Login attempt for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - no account for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for user %d", user.ID)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if user.IsBlocked {
		utils.LogError("Login refused - blocked user %d", user.ID)
		utils.Forbidden(c, utils.ErrUserBlocked)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
