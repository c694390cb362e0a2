package models

// LoginRequest exchanges credentials for a bearer token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public view of a user record
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// LoginResponse carries the authenticated user and their token
type LoginResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}
