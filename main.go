package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devikasuresh/go-stories/config"
	"github.com/devikasuresh/go-stories/controllers"
	"github.com/devikasuresh/go-stories/mailer"
	"github.com/devikasuresh/go-stories/middleware"
	"github.com/devikasuresh/go-stories/services"
	"github.com/devikasuresh/go-stories/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, db, err := config.ConnectMongo(cfg)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	log.Println("Connected to MongoDB:", cfg.MongoDB)

	// Wire collaborators into the auth service; no package-level state.
	users := store.NewMongoUserStore(db)
	smtp := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	authSvc := services.NewAuthService(users, smtp, []byte(cfg.JWTSecret), cfg.TokenTTL, cfg.OTPTTL)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(users)
	categoryCtl := controllers.NewCategoryController(db)
	storyCtl := controllers.NewStoryController(db)

	router := gin.Default()

	router.POST("/login", authCtl.Login)
	router.POST("/register", authCtl.Register)
	router.POST("/forgot-password", authCtl.ForgotPassword)
	router.POST("/verify-otp", authCtl.VerifyOTP)
	router.POST("/reset-password", authCtl.ResetPassword)

	protected := router.Group("/", middleware.Auth([]byte(cfg.JWTSecret), users))
	{
		protected.GET("/users", userCtl.List)
		protected.GET("/users/profile", userCtl.Profile)

		protected.GET("/categories", categoryCtl.List)
		protected.POST("/categories", categoryCtl.Create)
		protected.GET("/categories/:categoryId/stories", categoryCtl.ListStories)
		protected.POST("/categories/:categoryId/stories", storyCtl.Create)

		protected.GET("/stories", storyCtl.List)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Printf("Server started on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}
}
