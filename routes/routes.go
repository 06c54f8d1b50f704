package routes

import (
	"net/http"
	"time"

	"dealroom/handlers"
	"dealroom/middleware"
	"dealroom/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateMeHandler)
		api.DELETE("/me", hb.User.DeleteMeHandler)
		api.POST("/logout", hb.User.RevokeTokenHandler)
	}
}

// RegisterLenderRoutes registers the lender directory.
func RegisterLenderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lenders")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Lender.ListLendersHandler)
		// Creating lenders is an arranger-side operation.
		api.POST("", middleware.Gate("/deals"), hb.Lender.CreateLenderHandler)
	}
}

// RegisterDealRoutes registers the deal surface. Every deal-scoped
// endpoint runs the route gate for the client page it backs, so the
// API enforces exactly the page-level access rules.
func RegisterDealRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/deals")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Deal.ListDealsHandler)
		api.POST("", middleware.Gate("/deals"), hb.Deal.CreateDealHandler)

		dealGroup := api.Group("/:id")
		{
			dealGroup.GET("", middleware.Gate("/deal/:id/overview"), hb.Deal.GetDealHandler)
			dealGroup.GET("/context", middleware.Gate("/deal/:id/overview"), hb.Deal.GetDealContextHandler)
			dealGroup.GET("/deadlines", middleware.Gate("/deal/:id/overview"), hb.Deal.GetDeadlinesHandler)
			dealGroup.GET("/logs", middleware.Gate("/deal/:id/overview"), hb.Deal.GetLogsHandler)
			dealGroup.POST("/reminders", middleware.Gate("/deal/:id/overview"), hb.Reminder.ScheduleReminderHandler)

			dealGroup.PATCH("", middleware.Gate("/deal/:id/terms"), hb.Deal.UpdateDealHandler)
			dealGroup.PATCH("/stage", middleware.Gate("/deal/:id/terms"), hb.Deal.AdvanceStageHandler)

			// Lender management (bookrunner only).
			dealGroup.POST("/invitations", middleware.Gate("/deal/:id/lenders"), hb.Invitation.InviteLenderHandler)
			dealGroup.GET("/invitations", middleware.Gate("/deal/:id/lenders"), hb.Invitation.ListInvitationsHandler)
			dealGroup.PATCH("/invitations/:lenderId/tier", middleware.Gate("/deal/:id/lenders"), hb.Invitation.ChangeTierHandler)

			// NDA signing happens on the investor's deal home.
			dealGroup.POST("/nda/sign", middleware.Gate("/investor/deal/:id"), hb.Invitation.SignNDAHandler)

			// Data room.
			dealGroup.GET("/documents", middleware.Gate("/deal/:id/documents"), hb.Document.ListDocumentsHandler)
			dealGroup.POST("/documents", middleware.Gate("/deal/:id/documents"), hb.Document.AddDocumentHandler)
			dealGroup.DELETE("/documents/:documentId", middleware.Gate("/deal/:id/documents"), hb.Document.RemoveDocumentHandler)

			// Q&A.
			dealGroup.GET("/questions", middleware.Gate("/deal/:id/qa"), hb.QA.ListQuestionsHandler)
			dealGroup.POST("/questions", middleware.Gate("/deal/:id/qa"), hb.QA.AskQuestionHandler)
			dealGroup.POST("/questions/:questionId/answer", middleware.Gate("/deal/:id/qa"), hb.QA.AnswerQuestionHandler)

			// Commitments and the order book.
			dealGroup.POST("/commitments", middleware.Gate("/deal/:id/commitment"), hb.Commitment.SubmitCommitmentHandler)
			dealGroup.GET("/commitments", middleware.Gate("/deal/:id/commitment"), hb.Commitment.ListOwnCommitmentsHandler)
			dealGroup.GET("/book", middleware.Gate("/deal/:id/book"), hb.Commitment.GetBookHandler)
			dealGroup.PATCH("/commitments/:commitmentId/status", middleware.Gate("/deal/:id/book"), hb.Commitment.SetCommitmentStatusHandler)

			// Closing checklist.
			dealGroup.GET("/checklist", middleware.Gate("/deal/:id/checklist"), hb.Checklist.ListItemsHandler)
			dealGroup.POST("/checklist", middleware.Gate("/deal/:id/checklist"), hb.Checklist.AddItemHandler)
			dealGroup.PATCH("/checklist/:itemId", middleware.Gate("/deal/:id/checklist"), hb.Checklist.SetItemDoneHandler)
		}
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterLenderRoutes(r, hb)
	RegisterDealRoutes(r, hb)
	RegisterHealthRoute(r)
}
