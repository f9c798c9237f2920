package auth

import (
	"context"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cellarbook.org/CellarBook/configs"
)

// SubjectKey carries the authenticated subject through the request context.
type SubjectKey struct{}

// GinSubjectKey is where the gin middleware stores the authenticated subject.
const GinSubjectKey = "subject"

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

func (a *Manager) GrpcAuthInterceptor() connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			subject, err := a.subjectFromHeader(req.Header())
			if err != nil {
				return nil, err
			}

			ctx = context.WithValue(ctx, SubjectKey{}, subject)

			return next(ctx, req)
		}
	}
}

// GinAuthMiddleware guards a gin route group with the same bearer-token
// verification the connect interceptor performs.
func (a *Manager) GinAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, err := a.subjectFromHeader(c.Request.Header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		c.Set(GinSubjectKey, subject)
		c.Next()
	}
}

func (a *Manager) subjectFromHeader(header http.Header) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, status.Errorf(codes.Unauthenticated, "unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", status.Errorf(codes.Unauthenticated, "error parsing token: %v", err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return "", status.Errorf(codes.Unauthenticated, "invalid token")
	}

	subject, found := claims["sub"].(string)
	if !found {
		a.logger.Error("unable to get subject from token", zap.Any("claims", claims))

		return "", status.Errorf(codes.Unauthenticated, "unable to get subject from token")
	}

	return subject, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, status.Errorf(codes.Unauthenticated, "authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, status.Errorf(codes.Unauthenticated, "authorization format must be Bearer {token}")
	}

	return &token, nil
}
