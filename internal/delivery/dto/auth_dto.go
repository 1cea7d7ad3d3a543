package dto

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type OperatorResponse struct {
	Subject   string `json:"subject"`
	Role      string `json:"role"`
	TokenID   string `json:"token_id"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// BatchFailureResponse reports one record of a batch write the store rejected
type BatchFailureResponse struct {
	Index   int               `json:"index"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
