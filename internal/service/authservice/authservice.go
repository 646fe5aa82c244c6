package authservice

import (
	"errors"
	"time"

	"github.com/Galina9911/test-api/pkg/auth"
	"go.uber.org/zap"
)

var ErrInvalidRole = errors.New("invalid role")

type Service struct {
	jwtService auth.JWTServiceInterface
	now        func() time.Time
}

func New(jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		jwtService: jwtService,
		now:        time.Now,
	}
}

// IssueToken returns a token for role valid for auth.TokenTTL.
func (s *Service) IssueToken(role string) (string, error) {
	if !auth.IsValidRole(role) {
		zap.L().Info("token requested for invalid role", zap.String("role", role))
		return "", ErrInvalidRole
	}

	token, err := s.jwtService.GenerateJWT(role, s.now())
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	zap.L().Info("token issued", zap.String("role", role))
	return token, nil
}
