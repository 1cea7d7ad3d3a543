package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-registry/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrRevocationUnavailable = errors.New("token revocation requires redis")

// IssuedToken is a signed operator token
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresIn time.Duration
}

// TokenService issues operator tokens. With Redis configured, issued tokens are kept in
// an allowlist and a token is only accepted while its key exists.
type TokenService interface {
	Issue(ctx context.Context, subject string, role jwt.Role) (*IssuedToken, error)
	IsActive(ctx context.Context, claims *jwt.Claims) (bool, error)
	Revoke(ctx context.Context, claims *jwt.Claims) error
}

type tokenService struct {
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewTokenService(log *logrus.Logger, jwtService *jwt.JWTService, redisClient *redis.Client) TokenService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &tokenService{
		log:         log,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func accessTokenKey(subject, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", subject, tokenID)
}

func (s *tokenService) Issue(ctx context.Context, subject string, role jwt.Role) (*IssuedToken, error) {
	token, tokenID, err := s.jwtService.GenerateAccessToken(subject, role)
	if err != nil {
		return nil, err
	}

	expiry := s.jwtService.GetAccessExpiry()
	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, accessTokenKey(subject, tokenID), string(role), expiry).Err(); err != nil {
			s.log.Warnf("Failed to store access token in Redis: %+v", err)
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{"subject": subject, "role": role, "token_id": tokenID}).Info("Issued access token")
	return &IssuedToken{Token: token, TokenID: tokenID, ExpiresIn: expiry}, nil
}

func (s *tokenService) IsActive(ctx context.Context, claims *jwt.Claims) (bool, error) {
	if s.redisClient == nil {
		return true, nil
	}
	exists, err := s.redisClient.Exists(ctx, accessTokenKey(claims.Subject, claims.TokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check access token in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *tokenService) Revoke(ctx context.Context, claims *jwt.Claims) error {
	if s.redisClient == nil {
		return ErrRevocationUnavailable
	}
	if err := s.redisClient.Del(ctx, accessTokenKey(claims.Subject, claims.TokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete access token from Redis: %+v", err)
		return err
	}
	return nil
}
