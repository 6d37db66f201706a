package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vicdevman/portfolio-api/config"
	httpapi "github.com/vicdevman/portfolio-api/internal/api/http"
	"github.com/vicdevman/portfolio-api/internal/bootstrap"
	"github.com/vicdevman/portfolio-api/internal/chat/llm"
	"github.com/vicdevman/portfolio-api/internal/chat/prompt"
	chatservice "github.com/vicdevman/portfolio-api/internal/chat/service"
	"github.com/vicdevman/portfolio-api/internal/contact/mail"
	contactservice "github.com/vicdevman/portfolio-api/internal/contact/service"
	"github.com/vicdevman/portfolio-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	bootstrap.SetGinMode(cfg.App.Environment)

	cat, err := bootstrap.LoadCatalog(cfg.App.CatalogPath)
	if err != nil {
		logger.Fatal("load catalog", zap.String("path", cfg.App.CatalogPath), zap.Error(err))
	}
	for _, w := range cat.Warnings() {
		logger.Warn("catalog", zap.String("warning", w))
	}

	completer := llm.NewOpenRouter(llm.Options{
		BaseURL:  cfg.Chat.BaseURL,
		APIKey:   cfg.Chat.APIKey,
		AppTitle: cfg.Chat.AppTitle,
		SiteURL:  cfg.Chat.SiteURL,
		Timeout:  cfg.Chat.Timeout,
	})
	if !cfg.ChatConfigured() {
		logger.Warn("OPENROUTER_API_KEY not set; /api/chat will answer with a configuration error")
	}

	transport := mail.NewSMTPTransport(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Secure:   cfg.Mail.Secure,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		Timeout:  cfg.Mail.Timeout,
	})
	if !cfg.MailConfigured() {
		logger.Warn("SMTP_HOST, SMTP_FROM or ADMIN_EMAIL not set; /api/contact will answer with a configuration error")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Integrations: httpapi.Integrations{
			Chat: cfg.ChatConfigured(),
			Mail: cfg.MailConfigured(),
		},
		Catalog: cat,
		Chat:    chatservice.NewChatService(completer, prompt.Build(cat)),
		Contact: contactservice.NewContactService(transport, contactservice.Settings{
			From:            cfg.Mail.From,
			OwnerAddress:    cfg.Mail.OwnerAddress,
			RelayConfigured: cfg.Mail.Host != "",
		}, cat.Owner()),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Serve(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
	logger.Info("server stopped")
}
