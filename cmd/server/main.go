package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"edusport/internal/config"
	"edusport/internal/handlers"
	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/session"
	"edusport/internal/store"
	"edusport/pkg/logger"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log, logger.DefaultServiceName)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zl.Sync()

	db := store.New()
	if err := bootstrapAdmin(db, cfg, zl); err != nil {
		zl.Fatal("admin bootstrap failed", zap.Error(err))
	}

	sessions := session.NewStore(cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(zl)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			zl.Info("request", fields...)
			return nil
		},
	}))

	secure := cfg.Env == "production"
	handlers.Register(e, db, sessions, zl, secure)

	zl.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

// bootstrapAdmin creates an admin account from ADMIN_* env vars so a fresh
// instance is reachable. Skipped when the vars are unset or the username is
// already taken.
func bootstrapAdmin(db *store.Store, cfg config.Config, zl *zap.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" || cfg.AdminEmail == "" {
		return nil
	}
	if _, ok := db.GetUserByUsername(cfg.AdminUsername); ok {
		return nil
	}
	role, ok := db.GetRoleByName(models.RoleAdmin)
	if !ok {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user, err := db.CreateUser(models.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Email:    cfg.AdminEmail,
		FullName: "Administrator",
		RoleID:   role.ID,
		Language: "vi",
		Active:   true,
	})
	if err != nil {
		return err
	}
	zl.Info("admin account created", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return nil
}
