package main

import (
	"fmt"
	"log"

	"majlis/internal/config"
	"majlis/internal/handler"
	"majlis/internal/repository/postgres"
	"majlis/internal/router"
	"majlis/internal/service"
	s3storage "majlis/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	memberRepo := postgres.NewMemberRepo(db)
	groupRepo := postgres.NewGroupRepo(db)
	occasionRepo := postgres.NewOccasionRepo(db)
	attendanceRepo := postgres.NewAttendanceRepo(db)
	analyticsRepo := postgres.NewAnalyticsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	memberSvc := service.NewMemberService(memberRepo, s3Client, cfg.S3)
	groupSvc := service.NewGroupService(groupRepo)
	occasionSvc := service.NewOccasionService(occasionRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, memberRepo, occasionRepo)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo)
	uploadSvc := service.NewUploadService(cfg.S3)
	photoSvc := service.NewPhotoService(memberRepo, s3Client, cfg.S3)
	reportSvc := service.NewReportService(memberRepo, occasionRepo, attendanceRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	memberH := handler.NewMemberHandler(memberSvc, photoSvc)
	groupH := handler.NewGroupHandler(groupSvc)
	occasionH := handler.NewOccasionHandler(occasionSvc)
	attendanceH := handler.NewAttendanceHandler(attendanceSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	reportH := handler.NewReportHandler(reportSvc)
	uploadH := handler.NewUploadHandler(authSvc, uploadSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, memberH, groupH, occasionH,
		attendanceH, analyticsH, reportH, uploadH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
