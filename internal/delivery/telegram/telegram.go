package telegram

import (
	"context"
	"time"

	"vybevigil/config"
	"vybevigil/internal/chart"
	"vybevigil/internal/dto"
	"vybevigil/internal/repository"
	"vybevigil/internal/service"
	"vybevigil/pkg/logger"
	"vybevigil/pkg/telegram"
	"vybevigil/pkg/utils"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

type TelegramBotHandler struct {
	ctx       context.Context
	cfg       *config.Config
	bot       *telebot.Bot
	log       *logger.Logger
	telegram  *telegram.RateLimiter
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	vybeRepo  repository.VybeRepository
	chart     *chart.Renderer
	sessions  *SessionStore
	flows     map[dto.Flow]map[string]flowStep
}

func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	telegram *telegram.RateLimiter,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
	sessions *SessionStore,
	vybeRepo repository.VybeRepository) *TelegramBotHandler {
	t := &TelegramBotHandler{
		ctx:       ctx,
		cfg:       cfg,
		log:       log,
		bot:       bot,
		telegram:  telegram,
		echo:      echo,
		validator: validator,
		service:   service,
		vybeRepo:  vybeRepo,
		chart:     chart.NewRenderer(),
		sessions:  sessions,
	}
	t.registerFlows()
	return t
}

func (t *TelegramBotHandler) Start() {
	t.log.Info("Starting Telegram bot...")

	t.RegisterHandlers()

	if t.cfg.Telegram.WebhookURL != "" {
		t.log.Info("Setting webhook URL", logger.StringField("webhook_url", t.cfg.Telegram.WebhookURL))
		t.bot.SetWebhook(&telebot.Webhook{
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: t.cfg.Telegram.WebhookURL,
			},
		})
		return
	}

	t.log.Info("Telegram webhook is disabled, starting long polling")
	utils.GoSafe(func() {
		t.bot.Start()
	})
}

func (t *TelegramBotHandler) Stop() {
	t.log.Info("Stopping Telegram bot...")

	ctx, cancel := context.WithTimeout(t.ctx, 10*time.Second)
	defer cancel()

	stopDone := make(chan error, 1)
	go func() {
		t.bot.Stop()
		stopDone <- nil
	}()

	select {
	case <-stopDone:
		t.log.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.log.Warn("Timeout while stopping bot, forcing shutdown")
	}

	t.log.Info("Telegram bot shutdown completed")
}
