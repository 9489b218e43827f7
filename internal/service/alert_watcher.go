package service

import (
	"context"
	"fmt"

	"vybevigil/config"
	"vybevigil/internal/model"
	"vybevigil/internal/repository"
	"vybevigil/pkg/logger"
	"vybevigil/pkg/telegram"
	"vybevigil/pkg/utils"

	"github.com/robfig/cron/v3"
	telebot "gopkg.in/telebot.v3"
)

// AlertWatcher polls token prices on a schedule and notifies users whose
// thresholds were crossed. An alert fires once and is then removed.
type AlertWatcher interface {
	Start(ctx context.Context)
	Stop()
	CheckOnce(ctx context.Context)
}

type alertWatcher struct {
	cfg       *config.Config
	log       *logger.Logger
	cron      *cron.Cron
	alertRepo repository.AlertRepository
	vybeRepo  repository.VybeRepository
	telegram  *telegram.RateLimiter
}

func NewAlertWatcher(
	cfg *config.Config,
	log *logger.Logger,
	alertRepo repository.AlertRepository,
	vybeRepo repository.VybeRepository,
	telegram *telegram.RateLimiter,
) AlertWatcher {
	return &alertWatcher{
		cfg:       cfg,
		log:       log,
		cron:      cron.New(),
		alertRepo: alertRepo,
		vybeRepo:  vybeRepo,
		telegram:  telegram,
	}
}

func (w *alertWatcher) Start(ctx context.Context) {
	w.cron.Schedule(cron.Every(w.cfg.Alerts.CheckInterval), cron.FuncJob(func() {
		if !utils.ShouldContinue(ctx, w.log) {
			return
		}
		w.CheckOnce(ctx)
	}))
	w.cron.Start()
	w.log.Info("Price alert watcher started",
		logger.Field("interval", w.cfg.Alerts.CheckInterval))
}

func (w *alertWatcher) Stop() {
	<-w.cron.Stop().Done()
	w.log.Info("Price alert watcher stopped")
}

func (w *alertWatcher) CheckOnce(ctx context.Context) {
	alerts, err := w.alertRepo.GetAll(ctx)
	if err != nil {
		w.log.ErrorContext(ctx, "Failed to load price alerts", logger.ErrorField(err))
		return
	}

	for _, alert := range alerts {
		if err := w.checkAlert(ctx, alert); err != nil {
			w.log.ErrorContext(ctx, "Failed to check price alert",
				logger.Field("alert_id", alert.ID),
				logger.StringField("mint", alert.MintAddress),
				logger.ErrorField(err))
		}
	}
}

func (w *alertWatcher) checkAlert(ctx context.Context, alert model.PriceAlert) error {
	token, err := w.vybeRepo.GetTokenDetails(ctx, alert.MintAddress)
	if err != nil {
		return err
	}

	price := token.Price.Float64()
	if price < alert.Threshold {
		return nil
	}

	name := token.Symbol
	if name == "" {
		name = utils.ShortAddr(alert.MintAddress)
	}
	message := fmt.Sprintf("🚨 *%s Alert!*\nCurrent Price: %s (threshold %s)",
		name, utils.FormatUSD(price), utils.FormatUSD(alert.Threshold))

	if err := w.telegram.SendTo(ctx, alert.UserID, message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown}); err != nil {
		return err
	}

	return w.alertRepo.Delete(ctx, alert.ID)
}
