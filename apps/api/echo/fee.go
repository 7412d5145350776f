package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core/fee"
)

type feeApi struct {
	svc fee.Service
}

func registerFeeAPI(g *echo.Group, svc fee.Service) {
	api := feeApi{svc: svc}

	fg := g.Group("/fee")
	fg.POST("/calculate-course-fee", api.calculateCourseFee)
}

func (api *feeApi) calculateCourseFee(ctx echo.Context) error {
	var data fee.QuoteRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to QuoteRequest")
	}

	quote, err := api.svc.CalculateCourseFee(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quote)
}
