package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token and the subject's role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RefreshResponse carries a re-issued token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// OTPRequest payload for requesting a reset code.
type OTPRequest struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// OTPVerifyRequest payload for verifying a reset code.
type OTPVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest payload for completing a reset.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	UserType    string `json:"userType"`
}
