package service

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	"github.com/sparkboard-dev/sparkboard/internal/errors"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
)

// to mock service in tests
type AuthService interface {
	Register(creds domain.Credentials, profile domain.Profile) (domain.UserId, error)
	Login(creds domain.Credentials) (string, error)
	Me(actor *domain.User) (domain.Profile, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByEmail(email domain.Email) (domain.User, error)
	UserProfile(id domain.UserId) (domain.Profile, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

func (a *Auth) Register(creds domain.Credentials, profile domain.Profile) (domain.UserId, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return 0, err
	}

	if profile == nil {
		profile = domain.Profile{}
	}

	id, err := a.storage.SaveUser(domain.User{Email: email, PassHash: string(passHash), Profile: profile})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (a *Auth) Login(creds domain.Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "Wrong email or password", StatusCode: http.StatusUnauthorized}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "Wrong email or password", StatusCode: http.StatusUnauthorized}
	}

	return a.jwt.NewToken(user)
}

// Me returns the actor's free-form profile metadata. Every field is
// optional; callers must not assume any key is present.
func (a *Auth) Me(actor *domain.User) (domain.Profile, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}
	return a.storage.UserProfile(actor.Id)
}
