package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/auth"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid access token type", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

// RequirePermission gates a route on the caller's role. Must run after
// AuthMiddleware.
func (m Middleware) RequirePermission(permission constant.Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get("user")
		if !exists {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(nil, "unauthorized"), nil)
			ctx.Abort()
			return
		}

		user, ok := value.(auth.JWTPayload)
		if !ok {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(nil, "unauthorized"), nil)
			ctx.Abort()
			return
		}

		if !constant.HasPermission(user.Role, permission) {
			m.app.Logger.Debugf("Role %s lacks permission %s", user.Role, permission)
			util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to perform this action", nil, nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
