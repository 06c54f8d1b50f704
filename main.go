package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealroom/config"
	"dealroom/cron"
	"dealroom/database"
	activityRepoPkg "dealroom/database/repository/activity"
	checklistRepoPkg "dealroom/database/repository/checklist"
	commitmentRepoPkg "dealroom/database/repository/commitment"
	dealRepoPkg "dealroom/database/repository/deal"
	documentRepoPkg "dealroom/database/repository/document"
	invitationRepoPkg "dealroom/database/repository/invitation"
	lenderRepoPkg "dealroom/database/repository/lender"
	questionRepoPkg "dealroom/database/repository/question"
	userRepoPkg "dealroom/database/repository/user"
	"dealroom/handlers"
	"dealroom/middleware"
	"dealroom/routes"
	"dealroom/services/checklist"
	"dealroom/services/commitment"
	"dealroom/services/deal"
	"dealroom/services/document"
	"dealroom/services/invitation"
	"dealroom/services/notification"
	"dealroom/services/qa"
	"dealroom/services/user"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	dealRepo := dealRepoPkg.NewMongoDealRepo()
	lenderRepo := lenderRepoPkg.NewMongoLenderRepo()
	invitationRepo := invitationRepoPkg.NewMongoInvitationRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	questionRepo := questionRepoPkg.NewMongoQuestionRepo()
	commitmentRepo := commitmentRepoPkg.NewMongoCommitmentRepo()
	checklistRepo := checklistRepoPkg.NewMongoChecklistRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	dealService := &deal.DefaultDealService{
		Repo:        dealRepo,
		Invitations: invitationRepo,
		Activity:    activityRepo,
	}

	invitationService := &invitation.DefaultInvitationService{
		Repo:     invitationRepo,
		Lenders:  lenderRepo,
		Users:    userRepo,
		Activity: activityRepo,
	}

	documentService := &document.DefaultDocumentService{
		Repo:        documentRepo,
		Invitations: invitationRepo,
		Activity:    activityRepo,
	}

	qaService := &qa.DefaultQAService{
		Repo:     questionRepo,
		Activity: activityRepo,
	}

	commitmentService := &commitment.DefaultCommitmentService{
		Repo:     commitmentRepo,
		Activity: activityRepo,
	}

	checklistService := &checklist.DefaultChecklistService{
		Repo:     checklistRepo,
		Activity: activityRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userService,
	}

	// Reminder queue client and background worker.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		User:       handlers.NewUserHandler(userService),
		Deal:       handlers.NewDealHandler(dealService),
		Invitation: handlers.NewInvitationHandler(invitationService),
		Document:   handlers.NewDocumentHandler(documentService),
		QA:         handlers.NewQAHandler(qaService),
		Commitment: handlers.NewCommitmentHandler(commitmentService),
		Checklist:  handlers.NewChecklistHandler(checklistService),
		Lender:     handlers.NewLenderHandler(lenderRepo),
		Reminder:   handlers.NewReminderHandler(reminderClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
