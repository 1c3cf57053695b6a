package controller

import (
	"net/http"

	"github.com/unclebandit/fabricator-bff/internal/session"
)

type AuthController struct {
	Sessions *session.Manager
}

type credentials struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

func (c *AuthController) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !decodeBody(w, r, &body) {
		return
	}
	if err := c.Sessions.RequestOTP(body.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "OTP Sent",
		"description": "Please check your email for the OTP code.",
	})
}

func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !decodeBody(w, r, &body) {
		return
	}
	s, token, err := c.Sessions.VerifyOTP(body.Email, body.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	c.start(w, s, token)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if !decodeBody(w, r, &body) {
		return
	}
	s, token, err := c.Sessions.LoginWithPassword(body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	c.start(w, s, token)
}

func (c *AuthController) start(w http.ResponseWriter, s *session.Session, token string) {
	c.Sessions.SetCookie(w, token, s)
	writeJSON(w, http.StatusOK, map[string]any{
		"session":  s,
		"redirect": "/dashboard",
	})
}

func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	s, _ := session.FromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"session": s})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	s, _ := session.FromContext(r.Context())
	c.Sessions.Invalidate(s)
	c.Sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}
