package handler

import (
	"errors"
	"net/http"
	"time"

	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/delivery/http/middleware"
	"hospital-registry/internal/service"
	"hospital-registry/pkg/response"
)

type AuthHandler struct {
	tokenService service.TokenService
}

func NewAuthHandler(tokenService service.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

func (h *AuthHandler) GetCurrentOperator(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	res := dto.OperatorResponse{
		Subject: claims.Subject,
		Role:    string(claims.Role),
		TokenID: claims.TokenID,
	}
	if claims.ExpiresAt != nil {
		res.ExpiresAt = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}
	response.Success(w, http.StatusOK, "Operator retrieved successfully", res)
}

// Logout revokes the presented token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.tokenService.Revoke(r.Context(), claims); err != nil {
		if errors.Is(err, service.ErrRevocationUnavailable) {
			response.Error(w, http.StatusNotImplemented, "Token revocation is not enabled", nil)
			return
		}
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}
