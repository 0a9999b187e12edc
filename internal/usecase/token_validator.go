package usecase

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/shared"
)

var ErrUnauthenticated = errs.New("invalid or expired token")

// TokenValidator turns a bearer token into the caller's identity.
type TokenValidator interface {
	Authenticate(token string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) Authenticate(token string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrUnauthenticated)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrUnauthenticated)
	}

	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}
