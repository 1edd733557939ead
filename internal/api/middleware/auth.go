package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/clinicio/clinicio/internal/api/apierr"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/auth"
)

type contextKey string

const (
	doctorContextKey  contextKey = "doctor"
	sessionContextKey contextKey = "session"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "session"

// Auth creates authentication middleware
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := authService.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			// Add session and doctor to context
			ctx := r.Context()
			ctx = context.WithValue(ctx, sessionContextKey, session)
			ctx = context.WithValue(ctx, doctorContextKey, &session.Doctor)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken extracts the session token from the request
func ExtractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(SessionCookie)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetDoctor returns the authenticated doctor from the request context
func GetDoctor(ctx context.Context) *model.Doctor {
	doctor, _ := ctx.Value(doctorContextKey).(*model.Doctor)
	return doctor
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// MustGetDoctor returns the authenticated doctor or panics
func MustGetDoctor(ctx context.Context) *model.Doctor {
	doctor := GetDoctor(ctx)
	if doctor == nil {
		panic("no doctor in context - auth middleware not applied?")
	}
	return doctor
}

// MustGetSession returns the session or panics
func MustGetSession(ctx context.Context) *auth.Session {
	session := GetSession(ctx)
	if session == nil {
		panic("no session in context - auth middleware not applied?")
	}
	return session
}
