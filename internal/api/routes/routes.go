package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Saujankhnl/remotely-internship/internal/api/handlers"
	"github.com/Saujankhnl/remotely-internship/internal/api/middleware"
)

type Deps struct {
	Screening *handlers.ScreeningHandler
	Ranking   *handlers.RankingHandler
	Profile   *handlers.ProfileHandler
	WS        *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Applicant surface (JWT, any role)
	me := r.Group("/me")
	me.Use(middleware.JWTAuth())
	me.GET("/profile", d.Profile.Me)

	// Recruiter surface (JWT + company role)
	company := r.Group("/")
	company.Use(middleware.JWTAuth(), middleware.RequireCompany())

	company.POST("/postings/:posting_id/screening/run", d.Screening.RunScreening)
	company.POST("/postings/:posting_id/screening/apply", d.Screening.ApplyScreening)
	company.GET("/applications/:application_id/screening", d.Screening.GetResult)
	company.GET("/applications/:application_id/status-history", d.Screening.StatusHistory)

	company.GET("/postings/:posting_id/applicants/ranked", d.Ranking.RankedApplicants)

	// WebSocket: screening batch progress
	company.GET("/ws/postings/:posting_id/screening", d.WS.ScreeningWS)
}
