package services

import (
	"errors"
	"strconv"

	"fluzio/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

type Authentication struct {
	secret string
}

func NewAuthentication(secret string) (*Authentication, error) {
	return &Authentication{secret}, nil
}

func (authentication *Authentication) CreateToken(user *models.UserFromAuth) (string, error) {
	claims := CustomClaims{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(user.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authentication.secret))
}

func (authentication *Authentication) Validate(token string) (*models.UserFromAuth, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(authentication.secret), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &CustomClaims{}, keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := jwtToken.Claims.(*CustomClaims)
	if !ok || !jwtToken.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	return &models.UserFromAuth{
		ID:        userID,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
