package telegram

import (
	"context"
	"sync"
	"time"

	"vybevigil/config"
	"vybevigil/pkg/logger"
	"vybevigil/pkg/utils"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

type userLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter serializes outbound Telegram traffic behind a global limiter
// plus one limiter per user, so one chatty flow can't starve the rest.
type RateLimiter struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	globalLimiter *rate.Limiter
	userLimiters  map[int64]*userLimiterEntry
	bot           *telebot.Bot
	mu            sync.Mutex
	wg            sync.WaitGroup
}

func NewRateLimiter(cfg *config.TelegramConfig, log *logger.Logger, bot *telebot.Bot) *RateLimiter {
	return &RateLimiter{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.MaxGlobalRequestPerSecond), cfg.MaxGlobalRequestPerSecond),
		userLimiters:  make(map[int64]*userLimiterEntry),
	}
}

func (t *RateLimiter) Send(ctx context.Context, c telebot.Context, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return nil, err
	}
	return t.bot.Send(c.Chat(), what, opts...)
}

// SendTo sends directly to a chat by ID, used by background watchers that
// have no inbound telebot context.
func (t *RateLimiter) SendTo(ctx context.Context, chatID int64, what interface{}, opts ...interface{}) error {
	if err := t.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	_, err := t.bot.Send(&telebot.User{ID: chatID}, what, opts...)
	return err
}

func (t *RateLimiter) Edit(ctx context.Context, c telebot.Context, msg *telebot.Message, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return nil, err
	}
	return t.bot.Edit(msg, what, opts...)
}

func (t *RateLimiter) Delete(ctx context.Context, c telebot.Context, msg *telebot.Message) error {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return err
	}
	return t.bot.Delete(msg)
}

func (t *RateLimiter) Respond(ctx context.Context, c telebot.Context, resp ...*telebot.CallbackResponse) error {
	if err := t.checkRateLimit(ctx, c.Sender().ID); err != nil {
		return err
	}
	return c.Respond(resp...)
}

func (r *RateLimiter) getUserLimiter(userID int64) *userLimiterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limiter, exists := r.userLimiters[userID]; exists {
		limiter.lastAccess = time.Now()
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(r.cfg.MaxUserRequestPerSecond), r.cfg.MaxUserRequestPerSecond)
	r.userLimiters[userID] = &userLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}
	return r.userLimiters[userID]
}

func (r *RateLimiter) checkRateLimit(ctx context.Context, senderID int64) error {
	userLimiter := r.getUserLimiter(senderID)

	if err := r.globalLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}
	if err := userLimiter.limiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for user rate limit", logger.ErrorField(err))
		return err
	}
	return nil
}

func (r *RateLimiter) StartCleanupExpired(ctx context.Context) {
	r.wg.Add(1)
	utils.GoSafe(func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.RateLimitCleanupDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.log.Info("Received signal to stop Telegram rate limiter cleanup")
				return
			case <-ticker.C:
				r.mu.Lock()
				now := time.Now()
				for userID, entry := range r.userLimiters {
					if now.Sub(entry.lastAccess) > r.cfg.RatelimitExpireDuration {
						delete(r.userLimiters, userID)
					}
				}
				r.mu.Unlock()
			}
		}
	})
}

func (r *RateLimiter) StopCleanupExpired() {
	r.wg.Wait()
	r.log.Info("Telegram rate limiter stopped")
}
