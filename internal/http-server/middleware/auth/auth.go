// Package auth authenticates requests carrying an HS256 bearer token and stores the
// resulting actor in the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"

	"eventPlanner/internal/access"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
)

type ctxKey struct{}

type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

func WithActor(ctx context.Context, actor access.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFrom(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(access.Actor)
	return actor, ok
}

// Issue signs a token for actor valid for ttl.
func Issue(secret []byte, issuer string, actor access.Actor, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.UserID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: actor.Roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Parse verifies token and returns the actor it was issued for.
func Parse(secret []byte, issuer, token string) (access.Actor, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return access.Actor{}, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return access.Actor{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, err)
	}

	return access.Actor{UserID: userID, Roles: claims.Roles}, nil
}

func New(log *slog.Logger, secret []byte, issuer string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing authorization header"))
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization header format"))
				return
			}

			actor, err := Parse(secret, issuer, strings.TrimSpace(token))
			if err != nil {
				log.Warn("rejected token", sl.Err(err))

				msg := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "token expired"
				}

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(msg))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}

		return http.HandlerFunc(fn)
	}
}
