package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	jwt_internal "github.com/sparkboard-dev/sparkboard/internal/jwt"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires authentication
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that requires admin authentication
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// extractUser extracts and validates the actor from the JWT in the request.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	// Cookie first (browser clients), Authorization header second (mobile).
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}

	isAdmin, ok := claims["admin"].(bool)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.User{Id: int64(uidFloat), Admin: isAdmin}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					http.Error(w, "Invalid token", http.StatusUnauthorized)
				default:
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			if adminOnly && !user.Admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the actor from the request context.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
