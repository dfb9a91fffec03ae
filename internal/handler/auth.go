package handler

import (
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

type registerRequest struct {
	Email    string            `validate:"required,email" json:"email"`
	Password string            `validate:"required,min=8" json:"password"`
	Profile  map[string]string `json:"profile"`
}

type loginRequest struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, err := h.auth.Register(domain.Credentials{Email: body.Email, Password: body.Password}, body.Profile)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Created. You can login now"))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Cookie for browsers; the token in the body for mobile clients that
	// send it back as a bearer header.
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		MaxAge:   int(h.cfg.Public.JwtTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
	})

	writeJSON(w, map[string]string{"accessToken": accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
	})

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	profile, err := h.auth.Me(user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"id": user.Id, "admin": user.Admin, "profile": profile})
}
