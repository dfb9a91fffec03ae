package handler

import (
	"context"
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
)

// withUser injects an authenticated actor the way the auth middleware does.
func withUser(r *http.Request, user *domain.User) *http.Request {
	if user == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), mw.UserClaimsKey, user)
	return r.WithContext(ctx)
}

var testUser = &domain.User{Id: 1}
