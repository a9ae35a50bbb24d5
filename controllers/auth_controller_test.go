package controllers

import (
	"encoding/gob"
	"net/http"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

func init() {
	gob.Register(RegistrationData{})
	gob.Register(VendorRegistrationData{})
}

// sessionRouter wires the cookie store plus a seeding endpoint so tests
// can park a pending registration the way RegisterUser does.
func sessionRouter(seed RegistrationData) *gin.Engine {
	router := gin.New()
	store := cookie.NewStore([]byte("test-session-key"))
	router.Use(sessions.Sessions("test", store))
	router.POST("/seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("registration", seed)
		_ = session.Save()
		c.Status(http.StatusOK)
	})
	router.POST("/v1/users/signup/verify", VerifyRegistrationOTP)
	return router
}

func TestVerifyRegistrationOTP(t *testing.T) {
	hash, err := utils.HashPassword("Secret@123")
	require.NoError(t, err)

	router := sessionRouter(RegistrationData{
		Username:   "newuser1",
		Email:      "newuser1@example.com",
		Password:   hash,
		OTP:        "123456",
		OTPExpires: time.Now().Add(10 * time.Minute).Unix(),
	})

	seed := postJSON(router, "/seed", nil)
	require.Equal(t, http.StatusOK, seed.Code)
	cookies := seed.Result().Cookies()

	w := doJSONWithCookies(router, "/v1/users/signup/verify", gin.H{"otp": "123456"}, cookies)
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "newuser1@example.com").First(&user).Error)
	assert.Equal(t, "newuser1", user.Username)
	assert.True(t, user.IsVerified)
}

func TestVerifyRegistrationOTP_WrongCode(t *testing.T) {
	router := sessionRouter(RegistrationData{
		Username:   "newuser2",
		Email:      "newuser2@example.com",
		Password:   "x",
		OTP:        "123456",
		OTPExpires: time.Now().Add(10 * time.Minute).Unix(),
	})

	seed := postJSON(router, "/seed", nil)
	cookies := seed.Result().Cookies()

	w := doJSONWithCookies(router, "/v1/users/signup/verify", gin.H{"otp": "654321"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "newuser2@example.com").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestVerifyRegistrationOTP_Expired(t *testing.T) {
	router := sessionRouter(RegistrationData{
		Username:   "newuser3",
		Email:      "newuser3@example.com",
		Password:   "x",
		OTP:        "123456",
		OTPExpires: time.Now().Add(-time.Minute).Unix(),
	})

	seed := postJSON(router, "/seed", nil)
	cookies := seed.Result().Cookies()

	w := doJSONWithCookies(router, "/v1/users/signup/verify", gin.H{"otp": "123456"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyRegistrationOTP_NoPendingRegistration(t *testing.T) {
	router := sessionRouter(RegistrationData{})
	w := postJSON(router, "/v1/users/signup/verify", gin.H{"otp": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUser(t *testing.T) {
	hash, err := utils.HashPassword("Secret@123")
	require.NoError(t, err)
	user := models.User{
		Username: "loginuser",
		Email:    "loginuser@example.com",
		Password: hash,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	router := gin.New()
	router.POST("/v1/users/login", LoginUser)

	w := postJSON(router, "/v1/users/login", gin.H{
		"email":    "loginuser@example.com",
		"password": "Secret@123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/v1/users/login", gin.H{
		"email":    "loginuser@example.com",
		"password": "Wrong@123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUser_Blocked(t *testing.T) {
	hash, err := utils.HashPassword("Secret@123")
	require.NoError(t, err)
	user := models.User{
		Username:  "blockeduser",
		Email:     "blockeduser@example.com",
		Password:  hash,
		IsBlocked: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	router := gin.New()
	router.POST("/v1/users/login", LoginUser)

	w := postJSON(router, "/v1/users/login", gin.H{
		"email":    "blockeduser@example.com",
		"password": "Secret@123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterUser_Validation(t *testing.T) {
	router := gin.New()
	store := cookie.NewStore([]byte("test-session-key"))
	router.Use(sessions.Sessions("test", store))
	router.POST("/v1/users/signup", RegisterUser)

	// Bad username
	w := postJSON(router, "/v1/users/signup", gin.H{
		"username":         "x",
		"email":            "valid@example.com",
		"password":         "Secret@123",
		"confirm_password": "Secret@123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password mismatch
	w = postJSON(router, "/v1/users/signup", gin.H{
		"username":         "validuser",
		"email":            "valid@example.com",
		"password":         "Secret@123",
		"confirm_password": "Secret@124",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
