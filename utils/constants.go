package utils

// Application constants
const (
	// Application name
	AppName = "QuickTick"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// OTP expiration (10 minutes)
	OTPExpiration = "10m"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Maximum password length
	MaxPasswordLength = 32
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"

	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPassword = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	ErrInvalidPhone    = "Invalid phone number format"
	ErrInvalidFileType = "Invalid file type. Allowed types: jpg, jpeg, png, gif"
	ErrFileTooLarge    = "File size exceeds 5MB limit"

	ErrPaymentInitFailed   = "Payment could not be started"
	ErrPaymentVerifyFailed = "Payment verification failed"
)
