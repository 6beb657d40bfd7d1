package models

// AccountUser identifies the upstream account a [Credential] belongs to.
type AccountUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the upstream answer to a successful login.
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         AccountUser `json:"user"`
}
