package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analytics"
	"ats-backend/internal/applications"
	"ats-backend/internal/calls"
	"ats-backend/internal/extract"
	"ats-backend/internal/interviewers"
	"ats-backend/internal/interviews"
	"ats-backend/internal/llm"
	openai "ats-backend/internal/llm/openai"
	"ats-backend/internal/mailer"
	"ats-backend/internal/questions"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/shared/storage/object"
	localstore "ats-backend/internal/shared/storage/object/local"
	s3store "ats-backend/internal/shared/storage/object/s3"
	"ats-backend/internal/voice"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client
	Voice  voice.Client

	ApplicationsRepo applications.Repo
	InterviewsRepo   interviews.Repo
	QuestionsRepo    questions.Repo
	InterviewersRepo interviewers.Repo

	ApplicationsService *applications.Service
	QuestionsService    *questions.Service
	InterviewersService *interviewers.Service
	CallsService        *calls.Service
	AnalyticsService    *analytics.Service

	ApplicationsHandler *applications.Handler
	InterviewsHandler   *interviews.Handler
	QuestionsHandler    *questions.Handler
	InterviewersHandler *interviewers.Handler
	CallsHandler        *calls.Handler
	AnalyticsHandler    *analytics.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	localFilesDir := ""
	if cfg.ObjectStoreType == "local" {
		localFilesDir = cfg.LocalStoreDir
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		ApplicationsHandler: app.ApplicationsHandler,
		InterviewsHandler:   app.InterviewsHandler,
		QuestionsHandler:    app.QuestionsHandler,
		InterviewersHandler: app.InterviewersHandler,
		CallsHandler:        app.CallsHandler,
		AnalyticsHandler:    app.AnalyticsHandler,
		LocalFilesDir:       localFilesDir,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	cfg := app.Config

	if app.DB != nil {
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.InterviewsRepo = &interviews.PGRepo{DB: app.DB}
		app.QuestionsRepo = &questions.PGRepo{DB: app.DB}
		app.InterviewersRepo = &interviewers.PGRepo{DB: app.DB}
	} else {
		app.ApplicationsRepo = applications.NewMemoryRepo()
		app.InterviewsRepo = interviews.NewMemoryRepo()
		app.QuestionsRepo = questions.NewMemoryRepo()
		app.InterviewersRepo = interviewers.NewMemoryRepo()
	}

	app.LLM = llm.PlaceholderClient{}
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		llmClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return err
		}
		app.LLM = llmClient
	} else if !isDevLike(cfg.Env) {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	app.Voice = voice.PlaceholderClient{}
	if strings.TrimSpace(cfg.VoiceAPIKey) != "" {
		voiceClient, err := voice.NewRetellClient(cfg.VoiceAPIKey, cfg.VoiceBaseURL)
		if err != nil {
			return err
		}
		app.Voice = voiceClient
	} else if !isDevLike(cfg.Env) {
		return fmt.Errorf("RETELL_API_KEY is required")
	}

	app.QuestionsService = &questions.Service{
		Repo:       app.QuestionsRepo,
		Apps:       app.ApplicationsRepo,
		Interviews: app.InterviewsRepo,
		LLM:        app.LLM,
	}

	smtpPort, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}
	inviteMailer := &mailer.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     smtpPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	}

	app.ApplicationsService = &applications.Service{
		Repo:             app.ApplicationsRepo,
		Store:            app.Store,
		Extractor:        extract.PDFExtractor{},
		LLM:              app.LLM,
		Inviter:          app.QuestionsService,
		Mailer:           inviteMailer,
		InterviewBaseURL: cfg.InterviewBase,
	}

	app.InterviewersService = &interviewers.Service{
		Repo:  app.InterviewersRepo,
		Voice: app.Voice,
	}

	app.CallsService = &calls.Service{
		Interviewers: app.InterviewersRepo,
		Questions:    app.QuestionsService,
		Voice:        app.Voice,
	}

	app.AnalyticsService = &analytics.Service{LLM: app.LLM}

	app.ApplicationsHandler = applications.NewHandler(app.ApplicationsService)
	app.InterviewsHandler = interviews.NewHandler(app.InterviewsRepo)
	app.QuestionsHandler = questions.NewHandler(app.QuestionsService)
	app.InterviewersHandler = interviewers.NewHandler(app.InterviewersService)
	app.CallsHandler = calls.NewHandler(app.CallsService)
	app.AnalyticsHandler = analytics.NewHandler(app.AnalyticsService)

	return nil
}
