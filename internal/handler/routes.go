package handler

import (
	"path"

	"github.com/gin-gonic/gin"

	internalmiddleware "github.com/noah-isme/sicei-api/internal/middleware"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
	"github.com/noah-isme/sicei-api/pkg/response"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Students      *StudentHandler
	Professors    *ProfessorHandler
	Sessions      *SessionHandler
	Photos        *PhotoHandler
	Notifications *NotificationHandler
	Metrics       *MetricsHandler
}

// RouteOptions controls optional route groups.
type RouteOptions struct {
	APIPrefix     string
	LegacyAliases bool
	// MediaDir is served under /media when set.
	MediaDir string
}

type resourceNames struct {
	students     string
	professors   string
	profilePhoto string
	notify       string
	legacy       bool
}

var (
	englishRoutes = resourceNames{students: "/students", professors: "/professors", profilePhoto: "/profile-photo", notify: "/notify"}
	legacyRoutes  = resourceNames{students: "/alumnos", professors: "/profesores", profilePhoto: "/fotoPerfil", notify: "/email", legacy: true}
)

// RegisterRoutes mounts the API, the operational endpoints and the fallbacks.
func RegisterRoutes(r *gin.Engine, h Handlers, opts RouteOptions) {
	r.HandleMethodNotAllowed = true

	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if opts.MediaDir != "" {
		r.Static("/media", opts.MediaDir)
	}

	api := r.Group(opts.APIPrefix)
	mountResources(api, h, englishRoutes)
	if opts.LegacyAliases {
		mountResources(api, h, legacyRoutes)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Ruta no encontrada"))
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, appErrors.ErrMethodNotAllowed)
	})
}

func mountResources(api *gin.RouterGroup, h Handlers, names resourceNames) {
	if h.Students != nil {
		students := api.Group(names.students, aliasMiddleware(api, names, englishRoutes.students)...)
		students.GET("", h.Students.List)
		students.POST("", h.Students.Create)
		students.GET("/:id", h.Students.Get)
		students.PUT("/:id", h.Students.Update)
		students.DELETE("/:id", h.Students.Delete)

		if h.Photos != nil {
			students.POST("/:id"+names.profilePhoto, h.Photos.Upload)
		}
		if h.Notifications != nil {
			students.POST("/:id"+names.notify, h.Notifications.Notify)
		}
		if h.Sessions != nil {
			students.POST("/:id/session/login", h.Sessions.Login)
			students.POST("/:id/session/verify", h.Sessions.Verify)
			students.POST("/:id/session/logout", h.Sessions.Logout)
		}
	}

	if h.Professors != nil {
		professors := api.Group(names.professors, aliasMiddleware(api, names, englishRoutes.professors)...)
		professors.GET("", h.Professors.List)
		professors.POST("", h.Professors.Create)
		professors.GET("/:id", h.Professors.Get)
		professors.PUT("/:id", h.Professors.Update)
		professors.DELETE("/:id", h.Professors.Delete)
	}
}

func aliasMiddleware(api *gin.RouterGroup, names resourceNames, successor string) []gin.HandlerFunc {
	if !names.legacy {
		return nil
	}
	return []gin.HandlerFunc{internalmiddleware.LegacyAlias(path.Join(api.BasePath(), successor))}
}
