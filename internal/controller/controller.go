package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sealteck/doortrack/internal/app_context"
	"github.com/sealteck/doortrack/internal/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index           *IndexController
	Auth            *AuthController
	OAuth           *OAuthController
	User            *UserController
	PurchaseOrder   *PurchaseOrderController
	Door            *DoorController
	Inspection      *InspectionController
	InspectionPoint *InspectionPointController
	Certification   *CertificationController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	googleOAuthConfig := &oauth2.Config{
		ClientID:     app.Config.Auth.GoogleOAuthConfig.ClientID,
		ClientSecret: app.Config.Auth.GoogleOAuthConfig.ClientSecret,
		RedirectURL:  app.Config.Auth.GoogleOAuthConfig.RedirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	return &Controller{
		Index:           &IndexController{baseController: bc},
		Auth:            &AuthController{baseController: bc},
		OAuth:           &OAuthController{baseController: bc, googleOAuthConfig: googleOAuthConfig},
		User:            &UserController{baseController: bc},
		PurchaseOrder:   &PurchaseOrderController{baseController: bc},
		Door:            &DoorController{baseController: bc},
		Inspection:      &InspectionController{baseController: bc},
		InspectionPoint: &InspectionPointController{baseController: bc},
		Certification:   &CertificationController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
