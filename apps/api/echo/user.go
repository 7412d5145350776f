package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/user"
)

type authApi struct {
	conf *core.Config
	svc  user.Service
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc user.Service) {
	api := authApi{conf: conf, svc: svc}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.GET("/token/validate", api.validateToken, jwt)
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.UserID, data.Password)
	if err != nil {
		return err
	}

	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *authApi) validateToken(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TokenValidationResponse{
		UserID:   claims.Subject,
		Username: claims.Username,
		Roles:    claims.Roles,
		Valid:    true,
	})
}

type (
	LoginRequest struct {
		UserID   string `json:"user_id" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	TokenValidationResponse struct {
		UserID   string   `json:"user_id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
		Valid    bool     `json:"valid"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.UserID = core.CleanString(lr.UserID, true /* lower */)
	return core.Validate.Struct(lr)
}
