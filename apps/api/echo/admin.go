package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core/student"
	"github.com/brainaspire/academia/core/teacher"
)

type adminApi struct {
	studentSvc student.Service
	teacherSvc teacher.Service
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, studentSvc student.Service, teacherSvc teacher.Service) {
	api := adminApi{studentSvc: studentSvc, teacherSvc: teacherSvc}

	ag := g.Group("/admin")
	ag.GET("/health", api.health)

	// authed endpoints
	pg := ag.Group("", jwt, adminMiddleware())
	pg.POST("/student/add", api.addStudent)
	pg.POST("/teacher/add", api.addTeacher)
}

// Handlers

func (api *adminApi) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (api *adminApi) addStudent(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}

	created, err := api.studentSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *adminApi) addTeacher(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}

	created, err := api.teacherSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}
