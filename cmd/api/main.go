package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "bfsi-los-backend/internal/adapter/http"
	"bfsi-los-backend/internal/adapter/middleware"
	"bfsi-los-backend/internal/adapter/repository/mysql"
	"bfsi-los-backend/internal/aml"
	"bfsi-los-backend/internal/config"
	"bfsi-los-backend/internal/infrastructure/cache"
	"bfsi-los-backend/internal/infrastructure/db"
	"bfsi-los-backend/internal/infrastructure/mail"
	analysisuc "bfsi-los-backend/internal/usecase/analysis"
	dashboarduc "bfsi-los-backend/internal/usecase/dashboard"
	leaduc "bfsi-los-backend/internal/usecase/lead"
	memouc "bfsi-los-backend/internal/usecase/memo"
	notificationuc "bfsi-los-backend/internal/usecase/notification"
	qcuc "bfsi-los-backend/internal/usecase/qc"
	riskuc "bfsi-los-backend/internal/usecase/risk"
	summaryuc "bfsi-los-backend/internal/usecase/summary"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	leads := mysql.NewLeadRepository(gdb)
	extracted := mysql.NewExtractedValuesRepository(gdb)
	ratios := mysql.NewRatiosRepository(gdb)
	risks := mysql.NewRiskRepository(gdb)
	summaries := mysql.NewSummaryRepository(gdb)
	memos := mysql.NewMemoRepository(gdb)
	notifications := mysql.NewNotificationRepository(gdb)
	qcRecords := mysql.NewQCRepository(gdb)
	dashboards := mysql.NewDashboardRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// AML screening coordinator
	coordinator := aml.NewCoordinator(
		&aml.SimulatedVerifier{PassRate: 0.9, Delay: 2 * time.Second},
		leads,
		aml.Config{AttemptTimeout: cfg.AMLAttemptTimeout, MaxAttempts: cfg.AMLMaxAttempts},
	)
	defer coordinator.Shutdown()

	var mailer notificationuc.Mailer
	if cfg.MailEnabled() {
		mailer = mail.NewMailer(cfg)
	}

	handlers := httpadp.Handlers{
		Base:     httpadp.NewHandler(),
		Lead:     httpadp.NewLeadHandler(leaduc.NewUsecase(leads, unit, coordinator)),
		Analysis: httpadp.NewAnalysisHandler(analysisuc.NewUsecase(extracted, ratios, risks, summaries)),
		Risk:     httpadp.NewRiskHandler(riskuc.NewUsecase(risks, extracted, qcRecords)),
		Summary:  httpadp.NewSummaryHandler(summaryuc.NewUsecase(summaries)),
		Memo:     httpadp.NewMemoHandler(memouc.NewUsecase(memos, summaries, qcRecords, unit)),
		Notification: httpadp.NewNotificationHandler(
			notificationuc.NewUsecase(notifications, leads, mailer), cfg.ReminderAge),
		QC:        httpadp.NewQCHandler(qcuc.NewUsecase(qcRecords)),
		Dashboard: httpadp.NewDashboardHandler(dashboarduc.NewUsecase(dashboards)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Principal())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.RegisterRoutes(e, handlers)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
