package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/config"
	appHTTP "github.com/chronnix/chronnix-backend-go/internal/handler/http"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/cron"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/email"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/jwt"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/storage"
	"github.com/chronnix/chronnix-backend-go/internal/repository/postgresql"
	accountService "github.com/chronnix/chronnix-backend-go/internal/service/account"
	assignmentService "github.com/chronnix/chronnix-backend-go/internal/service/assignment"
	authService "github.com/chronnix/chronnix-backend-go/internal/service/auth"
	clientService "github.com/chronnix/chronnix-backend-go/internal/service/client"
	dashboardService "github.com/chronnix/chronnix-backend-go/internal/service/dashboard"
	exportService "github.com/chronnix/chronnix-backend-go/internal/service/export"
	projectService "github.com/chronnix/chronnix-backend-go/internal/service/project"
	teamService "github.com/chronnix/chronnix-backend-go/internal/service/team"
	timesheetService "github.com/chronnix/chronnix-backend-go/internal/service/timesheet"
	workerService "github.com/chronnix/chronnix-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	loginCodeRepo := postgresql.NewLoginCodeRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	clientRepo := postgresql.NewClientRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, loginCodeRepo, accountRepo, jwtService, emailService)
	accountSvc := accountService.NewAccountService(accountRepo, fileStorage)
	workerSvc := workerService.NewWorkerService(workerRepo, accountRepo, fileStorage)
	projectSvc := projectService.NewProjectService(projectRepo, workerRepo, assignmentRepo, accountRepo)
	assignmentSvc := assignmentService.NewAssignmentService(db, assignmentRepo, projectRepo, workerRepo, timeEntryRepo)
	timesheetSvc := timesheetService.NewTimesheetService(projectRepo, workerRepo, assignmentRepo, timeEntryRepo, teamRepo, accountRepo)
	exportSvc := exportService.NewExportService(projectRepo, workerRepo, assignmentRepo, timeEntryRepo)
	teamSvc := teamService.NewTeamService(teamRepo, workerRepo)
	clientSvc := clientService.NewClientService(clientRepo, projectRepo)
	dashboardSvc := dashboardService.NewDashboardService(projectRepo, workerRepo, assignmentRepo, timeEntryRepo, accountRepo)

	scheduler := cron.NewScheduler()
	cron.NewDocumentJobs(workerRepo).RegisterJobs(scheduler)
	cron.NewAuthJobs(loginCodeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(jwtService, authSvc),
		Account:   appHTTP.NewAccountHandler(accountSvc),
		Worker:    appHTTP.NewWorkerHandler(workerSvc),
		Project:   appHTTP.NewProjectHandler(projectSvc, assignmentSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc, exportSvc),
		Team:      appHTTP.NewTeamHandler(teamSvc),
		Client:    appHTTP.NewClientHandler(clientSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}, cfg.App.Env, cfg.App.FrontendURL)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error: ", err)
	}
}
