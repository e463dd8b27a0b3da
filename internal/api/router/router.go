package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/triomphant75/Gestion-Absence/config"
	"github.com/triomphant75/Gestion-Absence/internal/api/handler"
	"github.com/triomphant75/Gestion-Absence/internal/api/middleware"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/pkg/jwt"
	"github.com/triomphant75/Gestion-Absence/pkg/redis"
)

// Role strings for the route guards.
var (
	staff     = []string{string(model.RoleAdmin), string(model.RoleSecretariat), string(model.RoleChefDepartement), string(model.RoleEnseignant)}
	gestion   = []string{string(model.RoleAdmin), string(model.RoleSecretariat)}
	admin     = []string{string(model.RoleAdmin)}
	chef      = []string{string(model.RoleChefDepartement)}
	etudiants = []string{string(model.RoleEtudiant)}
)

// Setup builds the Gin engine with all routes and guards.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize + 1<<20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			users := authorized.Group("/users")
			{
				users.POST("", middleware.RoleAuth(gestion...), h.User.Create)
				users.GET("", middleware.RoleAuth(staff...), h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", middleware.RoleAuth(gestion...), h.User.Update)
				users.DELETE("/:id", middleware.RoleAuth(admin...), h.User.Delete)
			}

			departements := authorized.Group("/departements")
			{
				departements.GET("", h.Departement.List)
				departements.GET("/:id", h.Departement.Get)
				departements.POST("", middleware.RoleAuth(admin...), h.Departement.Create)
				departements.PUT("/:id", middleware.RoleAuth(admin...), h.Departement.Update)
				departements.DELETE("/:id", middleware.RoleAuth(admin...), h.Departement.Delete)
			}

			formations := authorized.Group("/formations")
			{
				formations.GET("", h.Formation.List)
				formations.GET("/:id", h.Formation.Get)
				formations.GET("/:id/etudiants", middleware.RoleAuth(staff...), h.Formation.ListEtudiants)
				formations.POST("", middleware.RoleAuth(gestion...), h.Formation.Create)
				formations.PUT("/:id", middleware.RoleAuth(gestion...), h.Formation.Update)
				formations.DELETE("/:id", middleware.RoleAuth(admin...), h.Formation.Delete)
			}

			groupes := authorized.Group("/groupes")
			{
				groupes.GET("", h.Groupe.List)
				groupes.GET("/:id", h.Groupe.Get)
				groupes.POST("", middleware.RoleAuth(gestion...), h.Groupe.Create)
				groupes.PUT("/:id", middleware.RoleAuth(gestion...), h.Groupe.Update)
				groupes.DELETE("/:id", middleware.RoleAuth(admin...), h.Groupe.Delete)
				groupes.GET("/:id/etudiants", middleware.RoleAuth(staff...), h.Groupe.ListEtudiants)
				groupes.POST("/:id/etudiants", middleware.RoleAuth(gestion...), h.Groupe.AffecterEtudiant)
				groupes.DELETE("/:id/etudiants/:etudiantId", middleware.RoleAuth(gestion...), h.Groupe.RetirerEtudiant)
			}

			matieres := authorized.Group("/matieres")
			{
				matieres.GET("", h.Matiere.List)
				matieres.GET("/:id", h.Matiere.Get)
				matieres.POST("", middleware.RoleAuth(gestion...), h.Matiere.Create)
				matieres.PUT("/:id", middleware.RoleAuth(gestion...), h.Matiere.Update)
				matieres.DELETE("/:id", middleware.RoleAuth(admin...), h.Matiere.Delete)
			}

			seances := authorized.Group("/seances")
			{
				seances.POST("", middleware.RoleAuth(staff...), h.Seance.Create)
				seances.GET("", middleware.RoleAuth(staff...), h.Seance.List)
				seances.GET("/:id", h.Seance.Get)
				seances.PUT("/:id", middleware.RoleAuth(staff...), h.Seance.Update)
				seances.DELETE("/:id", middleware.RoleAuth(gestion...), h.Seance.Delete)
				seances.PUT("/:id/cancel", middleware.RoleAuth(staff...), h.Seance.Cancel)
				seances.POST("/:id/start", middleware.RoleAuth(string(model.RoleEnseignant), string(model.RoleChefDepartement)), h.Seance.Start)
				seances.POST("/:id/stop", middleware.RoleAuth(string(model.RoleEnseignant), string(model.RoleChefDepartement)), h.Seance.Stop)
				seances.POST("/:id/renew-code", middleware.RoleAuth(string(model.RoleEnseignant), string(model.RoleChefDepartement)), h.Seance.RenewCode)
				seances.GET("/:id/code", middleware.RoleAuth(string(model.RoleEnseignant), string(model.RoleChefDepartement)), h.Seance.CurrentCode)
				seances.GET("/:id/roster", middleware.RoleAuth(staff...), h.Seance.Roster)
				seances.GET("/:id/export", middleware.RoleAuth(staff...), h.Seance.Export)
				seances.GET("/enseignant/:id", middleware.RoleAuth(staff...), h.Seance.ListByEnseignant)
				seances.GET("/enseignant/:id/upcoming", middleware.RoleAuth(staff...), h.Seance.ListUpcomingByEnseignant)
				seances.GET("/enseignant/:id/ical", middleware.RoleAuth(staff...), h.Seance.ICal)
				seances.GET("/groupe/:id", middleware.RoleAuth(staff...), h.Seance.ListByGroupe)
			}

			presences := authorized.Group("/presences")
			{
				presences.POST("/validate-code", middleware.RateLimit(rdb, 20, time.Minute), middleware.RoleAuth(etudiants...), h.Presence.ValidateCode)
				presences.POST("", middleware.RoleAuth(staff...), h.Presence.Create)
				presences.PUT("/:id", middleware.RoleAuth(staff...), h.Presence.Update)
				presences.GET("/etudiant/:id", h.Presence.ListByEtudiant)
				presences.GET("/etudiant/:id/absences-non-justifiees", h.Presence.AbsencesNonJustifiees)
				presences.GET("/seance/:id", middleware.RoleAuth(staff...), h.Presence.ListBySeance)
				presences.GET("/statistiques/:id", h.Presence.Statistiques)
				presences.GET("/absences/count", middleware.RoleAuth(staff...), h.Presence.CountAbsences)
				presences.DELETE("/:id", middleware.RoleAuth(gestion...), h.Presence.Delete)
			}

			avertissements := authorized.Group("/avertissements")
			{
				avertissements.POST("", middleware.RoleAuth(staff...), h.Avertissement.Create)
				avertissements.GET("", h.Avertissement.List)
				avertissements.GET("/:id", h.Avertissement.Get)
				avertissements.PUT("/:id", middleware.RoleAuth(staff...), h.Avertissement.UpdateMotif)
				avertissements.DELETE("/:id", middleware.RoleAuth(gestion...), h.Avertissement.Delete)
			}

			justificatifs := authorized.Group("/justificatifs")
			{
				justificatifs.POST("", middleware.RoleAuth(etudiants...), h.Justificatif.Deposer)
				justificatifs.GET("", middleware.RoleAuth(staff...), h.Justificatif.List)
				justificatifs.GET("/en-attente", middleware.RoleAuth(staff...), h.Justificatif.ListEnAttente)
				justificatifs.GET("/traites/:id", middleware.RoleAuth(staff...), h.Justificatif.ListTraites)
				justificatifs.GET("/:id", h.Justificatif.Get)
				justificatifs.GET("/:id/download", h.Justificatif.Download)
				justificatifs.PUT("/:id/accepter", middleware.RoleAuth(staff...), h.Justificatif.Accepter)
				justificatifs.PUT("/:id/refuser", middleware.RoleAuth(staff...), h.Justificatif.Refuser)
				justificatifs.DELETE("/:id", middleware.RoleAuth(gestion...), h.Justificatif.Delete)
			}

			chefGroup := authorized.Group("/chef")
			chefGroup.Use(middleware.RoleAuth(chef...))
			{
				chefGroup.GET("/etudiants", h.Chef.Etudiants)
			}
		}
	}

	return r
}
