package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token into the actor the engine acts for.
type TokenValidator interface {
	ValidateToken(tokenString string) (actor.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (actor.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.NewRole(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}
	if claims.UserID == uuid.Nil || claims.PropertyID == uuid.Nil {
		return actor.Actor{}, jwt.ErrInvalidToken
	}

	return actor.Actor{
		ID:         claims.UserID,
		Role:       role,
		PropertyID: claims.PropertyID,
	}, nil
}
