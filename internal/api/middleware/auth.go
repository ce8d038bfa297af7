package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

// Claims токен провайдера идентичности
// sub - идентификатор пользователя, places - управляемые объекты менеджера
type Claims struct {
	Role   string  `json:"role"`
	Places []int64 `json:"places,omitempty"`
	jwt.RegisteredClaims
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Authenticator проверяет Bearer токены и кладет domain.Principal в контекст запроса
type Authenticator struct {
	secret []byte
	issuer string
	logger Logger
}

func NewAuthenticator(secret, issuer string, logger Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer, logger: logger}
}

// Middleware возвращает 401 при отсутствующем или невалидном токене
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		principal, err := a.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.logger.Warn("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// Parse проверяет подпись и срок действия токена и строит принципала из claims
func (a *Authenticator) Parse(tokenString string) (domain.Principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return domain.Principal{}, err
	}
	if !token.Valid {
		return domain.Principal{}, errors.New("token is not valid")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Principal{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, err
	}

	switch role {
	case domain.RoleManager:
		return domain.NewManager(userID, claims.Places...), nil
	default:
		return domain.NewClient(userID), nil
	}
}

// WithPrincipal кладет принципала в контекст
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext достает принципала, положенного Authenticator
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(domain.Principal)
	return principal, ok
}
