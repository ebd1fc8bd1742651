// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"stundenplan/internal/delivery/http/middleware"
	"stundenplan/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	TimetableHandler *handler.TimetableHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	timetableHandler *handler.TimetableHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		timetableHandler: params.TimetableHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The paths
// are kept exactly as the deployed frontends expect them.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.authMiddleware.Authenticate
	owner := r.authMiddleware.RequireOwner("benutzername")

	g := e.Group("/schueler")
	{
		g.GET("/", r.testHandler.Index)
		g.GET("/echo", r.testHandler.Echo)
		g.GET("/echo_auth", r.testHandler.EchoAuth, authn)

		g.POST("/login", r.accountHandler.Login)
		g.POST("/register", r.accountHandler.Register)
		g.POST("/confirmuser", r.accountHandler.Confirm)
		g.PUT("/changepassword/:benutzername", r.accountHandler.ChangePassword, authn, owner)
		g.DELETE("/delete/:benutzername", r.accountHandler.Delete, authn, owner)

		g.GET("/faecherauswahl", r.timetableHandler.Subjects, authn)
		g.GET("/schueler-mit-faechern/:benutzername", r.timetableHandler.StudentWithSubjects, authn, owner)
		g.GET("/kurse", r.timetableHandler.Courses)
		g.GET("/lehrer", r.timetableHandler.Teachers)
		g.GET("/stufen", r.timetableHandler.Levels)
		g.GET("/entfaelle", r.timetableHandler.Cancellations)
		g.POST("/schuelerdaten/:benutzername", r.timetableHandler.StoreStudentData, authn, owner)
		g.POST("/kurse/:benutzername", r.timetableHandler.StoreStudentCourses, authn, owner)
	}
}
