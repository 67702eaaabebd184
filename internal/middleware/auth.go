package middleware

import (
	"context"
	"time"

	"freqdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const authTimeout = 5 * time.Second

// Replies shared with the handlers
const (
	MsgError          = "Произошла ошибка. Попробуйте позже."
	MsgPasswordPrompt = "Привет! Этот бот закрыт паролем. Введи пароль:"
)

// AuthMiddleware lets only users that passed the password gate through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()

			// Ensure user exists
			if err := authService.EnsureUserExists(ctx, userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return deny(c, MsgError)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(ctx, userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return deny(c, MsgError)
			}

			if !authorized {
				logger.Debug("Unauthorized request rejected", zap.Int64("user_id", userID))
				return deny(c, MsgPasswordPrompt)
			}

			return next(c)
		}
	}
}

// deny answers pending callbacks before replying so the button stops spinning
func deny(c tele.Context, text string) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			return err
		}
	}
	return c.Send(text)
}
