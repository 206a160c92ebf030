package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"promptvault/internal/api"
	"promptvault/internal/config"
	"promptvault/internal/llm"
	"promptvault/internal/model"
	"promptvault/internal/service"
	"promptvault/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Warn("failed to load .env")
	}

	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	// 初始化logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	defaultUser, err := model.SeedDefaults(context.Background(), repo, cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to seed default data")
		return
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}
	if store == nil {
		logrus.Warn("export storage disabled")
	}

	assistant, err := llm.NewAssistant(cfg)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			logrus.WithError(err).Error("failed to initialise language model provider")
			return
		}
		// AI 接口返回 503，其余功能不受影响
		logrus.WithError(err).Warn("language model provider not configured")
	} else {
		logrus.WithField("provider", assistant.Name()).Info("language model provider ready")
	}

	publicBase := api.NormalisePublicBase(cfg.StoragePublicBaseURL)
	promptService := service.NewPromptService(repo, defaultUser.ID)
	exportService := service.NewExportService(promptService, store, publicBase)
	httpHandler := api.NewHTTPHandler(promptService, assistant, exportService)

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(api.RequestIDMiddleware())
	r.Use(api.LoggingMiddleware())
	r.Use(api.CORSMiddleware())
	r.Use(gin.Recovery())

	httpHandler.RegisterRoutes(r)

	if prefix := api.MountLocalFiles(r, store, publicBase); prefix != "" {
		logrus.WithField("prefix", prefix).Info("serving exports from local storage")
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithField("host", serverHost).Info("服务器启动")
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  300 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("服务器启动失败")
	}
}
