package pg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	profileJSON, err := json.Marshal(user.Profile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id domain.UserId
	err = s.db.QueryRow(`
	INSERT INTO users(email, pass_hash, profile)
	VALUES($1, $2, $3)
	RETURNING id`,
		user.Email, user.PassHash, profileJSON).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, &internal_errors.ErrorWithStatusCode{Message: "Email already registered", StatusCode: http.StatusConflict}
		}
		return 0, err
	}
	return id, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	var user domain.User
	var profileJSON []byte
	err := s.db.QueryRow(`
	SELECT id, email, pass_hash, admin, profile, created_at
	FROM users
	WHERE email = $1`, email).Scan(&user.Id, &user.Email, &user.PassHash, &user.Admin, &profileJSON, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, err
	}

	if err := json.Unmarshal(profileJSON, &user.Profile); err != nil {
		return domain.User{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return user, nil
}

func (s *Storage) UserProfile(id domain.UserId) (domain.Profile, error) {
	var profileJSON []byte
	err := s.db.QueryRow(`SELECT profile FROM users WHERE id = $1`, id).Scan(&profileJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}
