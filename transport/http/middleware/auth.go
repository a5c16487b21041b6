package middleware

import (
	"context"
	"errors"
	"estetica/infras/jwt"
	"estetica/infras/otel"
	"estetica/shared/constant"
	"estetica/shared/failure"
	"estetica/transport/http/response"
	"net/http"
	"slices"
)

// Auth validates bearer tokens and enforces role-based access. Tokens are
// issued by an external identity provider; this service only verifies them.
type Auth interface {
	Auth(next http.Handler) http.Handler
	RequireRole(roles ...string) func(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates the JWT on the Authorization header and loads the claims
// into the request context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			err := failure.Unauthorized("Invalid token claims")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRole rejects authenticated requests whose role claim is not in the
// allowed set. Must run after Auth.
func (m *authImpl) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			userRole, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

			if !slices.Contains(roles, userRole) {
				response.WithError(writer, failure.Unauthorized("Insufficient role"))

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
