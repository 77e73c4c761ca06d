package http

import (
	"net/http"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        *domain.User `json:"user"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if !decodeJSON(w, r, &req, false) {
		return
	}
	user, err := s.svc.Auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.requestLog(r).WithField("user_id", user.ID).Info("user registered")
	respondJSON(w, http.StatusCreated, map[string]*domain.User{"user": user})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if !decodeJSON(w, r, &req, false) {
		return
	}
	session, err := s.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.setRefreshCookie(w, session.RefreshToken)
	respondJSON(w, http.StatusOK, loginResponseDTO{
		AccessToken: session.AccessToken,
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
		User:        session.User,
	})
}

// refresh exchanges the refresh cookie for a new access token and a rotated
// cookie. No bearer token is needed.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		respondError(w, http.StatusUnauthorized, "refresh_missing", "missing refresh token")
		return
	}
	session, err := s.svc.Auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		s.clearRefreshCookie(w)
		s.respondServiceError(w, r, err)
		return
	}
	s.setRefreshCookie(w, session.RefreshToken)
	respondJSON(w, http.StatusOK, loginResponseDTO{
		AccessToken: session.AccessToken,
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		if err := s.svc.Auth.Logout(r.Context(), cookie.Value); err != nil {
			s.respondServiceError(w, r, err)
			return
		}
	}
	s.clearRefreshCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/auth",
		MaxAge:   int(s.cfg.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
