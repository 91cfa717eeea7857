package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,strNotEmpty"`
}

func (ac AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", nil, nil)
			return
		}
		util.ResponseError(ctx, err)
		return
	}

	if user.PasswordHash == "" || !util.ComparePassword(user.PasswordHash, req.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", nil, nil)
		return
	}

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
		"user":         user,
	})
}

type registerRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	FirstName string `json:"firstName" form:"firstName" binding:"required,strNotEmpty"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,strNotEmpty"`
	Password  string `json:"password" form:"password" binding:"required,cmin=8"`
	Role      string `json:"role" form:"role" binding:"omitempty,oneof=admin inspector engineer client"`
}

// Register creates an account. The role field is only honored when the caller
// is an admin; self-registration always lands on client.
func (ac AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	role := constant.RoleClient
	if authUser, err := ac.getAuthUser(ctx); err == nil && authUser.Role == constant.RoleAdmin {
		if req.Role != "" {
			role = constant.UserRole(req.Role)
		}
	}

	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	newUser := model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		PasswordHash: passwordHash,
	}
	if err := ac.app.Repository.User.CheckDupAndCreate(ctx, nil, newUser); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, req.Email)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token := ctx.Param("token")

	// Keep in mind that verify jwt token does not check database.
	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("jwt claim empty")), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), gin.H{
			"tokenValid": false,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if jwtClaims == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("jwt claim empty")), nil)
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.Repository.JWT.RefreshToken(ctx, nil, refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if newRefreshToken == nil || newAccessToken == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("failed to refresh token")), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": newRefreshToken,
		"accessToken":  newAccessToken,
	})
}

func (ac AuthController) Logout(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ac.app.Repository.JWT.DeleteToken(ctx, nil, refreshToken); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
