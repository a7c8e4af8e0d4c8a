package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"estateBack/internal/handlers"
	"estateBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.errorLog.Printf("panic: %v", err)
				handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// roleAllowed maps a route's required role onto the actor's role. Admins pass
// everything, agents pass agent routes, any known role passes user routes.
func roleAllowed(required, actual string) bool {
	switch required {
	case models.RoleAdmin:
		return actual == models.RoleAdmin
	case models.RoleAgent:
		return actual == models.RoleAgent || actual == models.RoleAdmin
	default:
		return models.ValidRole(actual)
	}
}

func (app *application) JWTMiddleware(next http.Handler, requiredRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			handlers.WriteError(w, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(app.cfg.Auth.SigningKey), nil
		})

		if err != nil || !token.Valid {
			// Access token is no good, try the refresh token.
			refreshToken := r.Header.Get("Refresh-Token")
			if refreshToken == "" {
				handlers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			session, err := app.userRepo.GetSessionByToken(r.Context(), refreshToken)
			if err != nil || session == (models.Session{}) {
				handlers.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
				return
			}
			if session.ExpiresAt.Before(time.Now()) {
				handlers.WriteError(w, http.StatusUnauthorized, "Expired refresh token")
				return
			}

			accessTTL := time.Duration(app.cfg.Auth.AccessTTLMinutes) * time.Minute
			newAccessToken, err := app.tokens.NewJWT(session.UserID, session.Role, accessTTL)
			if err != nil {
				handlers.WriteError(w, http.StatusInternalServerError, "Error generating new access token")
				return
			}
			w.Header().Set("Authorization", "Bearer "+newAccessToken)

			claims.UserID = uint(session.UserID)
			claims.Role = session.Role
		}

		if !roleAllowed(requiredRole, claims.Role) {
			handlers.WriteError(w, http.StatusForbidden, "Forbidden: insufficient role")
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", int(claims.UserID))
		ctx = context.WithValue(ctx, "role", claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
