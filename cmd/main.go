package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	agentapp "github.com/buildestate/backend/application/agent"
	appointmentapp "github.com/buildestate/backend/application/appointment"
	leadapp "github.com/buildestate/backend/application/lead"
	propertyapp "github.com/buildestate/backend/application/property"
	savedapp "github.com/buildestate/backend/application/savedproperty"
	statsapp "github.com/buildestate/backend/application/stats"
	userapp "github.com/buildestate/backend/application/user"
	"github.com/buildestate/backend/cmd/config"
	redisclient "github.com/buildestate/backend/cmd/redis"
	_ "github.com/buildestate/backend/docs"
	"github.com/buildestate/backend/migrations"
	agentrepo "github.com/buildestate/backend/repository/agent"
	appointmentrepo "github.com/buildestate/backend/repository/appointment"
	leadrepo "github.com/buildestate/backend/repository/lead"
	propertyrepo "github.com/buildestate/backend/repository/property"
	redisrepo "github.com/buildestate/backend/repository/redis"
	savedrepo "github.com/buildestate/backend/repository/savedproperty"
	statsrepo "github.com/buildestate/backend/repository/stats"
	txrepo "github.com/buildestate/backend/repository/tx"
	userrepo "github.com/buildestate/backend/repository/user"
	"github.com/buildestate/backend/thirdparty/mail"
	"github.com/buildestate/backend/thirdparty/rabbitmq"
	"github.com/buildestate/backend/transport"
	"github.com/buildestate/backend/utils/logger"
	validatorx "github.com/buildestate/backend/utils/validator"
)

// @title BuildEstate API
// @version 1.0
// @description Real estate marketing and lead capture API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Apply schema migrations
	if err := migrations.Up(db.DB); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// SMTP dispatcher for transactional mail
	dispatcher, err := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	if err != nil {
		logger.Fatal("err init smtp sender", zap.Error(err))
	}

	// RabbitMQ publisher and consumer for queued mail
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, dispatcher)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start mail consumer", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userrepo.NewUserRepository(db)
	PropertyRepo := propertyrepo.NewPropertyRepository(db)
	AppointmentRepo := appointmentrepo.NewAppointmentRepository(db)
	AgentRepo := agentrepo.NewAgentRepository(db)
	ApplicationRepo := leadrepo.NewApplicationRepository(db)
	ContactRepo := leadrepo.NewContactRepository(db)
	NewsletterRepo := leadrepo.NewNewsletterRepository(db)
	SavedRepo := savedrepo.NewSavedPropertyRepository(db)
	StatsRepo := statsrepo.NewStatsRepository(db)
	TxRepo := txrepo.NewTxRepository(db)
	RedisRepo := redisrepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, dispatcher, publisher)
	PropertyApp := propertyapp.NewPropertyApp(PropertyRepo)
	AppointmentApp := appointmentapp.NewAppointmentApp(TxRepo, AppointmentRepo, PropertyRepo, publisher)
	AgentApp := agentapp.NewAgentApp(AgentRepo)
	LeadApp := leadapp.NewLeadApp(ApplicationRepo, ContactRepo, NewsletterRepo, publisher)
	SavedApp := savedapp.NewSavedPropertyApp(SavedRepo, PropertyRepo)
	StatsApp := statsapp.NewStatsApp(StatsRepo, PropertyRepo, UserRepo, AppointmentRepo)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:        UserApp,
		PropertyApp:    PropertyApp,
		AppointmentApp: AppointmentApp,
		AgentApp:       AgentApp,
		LeadApp:        LeadApp,
		SavedApp:       SavedApp,
		StatsApp:       StatsApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
