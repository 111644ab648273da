package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/auth"
	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
)

// AuthConfig describes how bearer tokens are verified. Issuer and Audience are
// only checked when set.
type AuthConfig struct {
	Keyfunc  jwt.Keyfunc
	Issuer   string
	Audience string
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified identity in the request context.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(options...)

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, cfg.Keyfunc)
		if err != nil || !token.Valid {
			zap.L().Warn("token validation failed",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			abortUnauthorized(c)
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			abortUnauthorized(c)
			return
		}

		ctx := auth.WithIdentity(c.Request.Context(), auth.Identity{Subject: subject, Claims: claims})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
	)
}
