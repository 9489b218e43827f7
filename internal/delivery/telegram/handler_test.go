package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vybevigil/config"
	"vybevigil/internal/dto"
	"vybevigil/internal/repository"
	"vybevigil/internal/service"
	"vybevigil/pkg/cache"
	"vybevigil/pkg/logger"
	"vybevigil/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

var errVybeUnavailable = errors.New("vybe unavailable")

// stubVybeRepo satisfies repository.VybeRepository for handler tests that
// never reach the remote API.
type stubVybeRepo struct{}

func (stubVybeRepo) GetWalletBalance(context.Context, string) (*dto.WalletBalance, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetBalanceTS(context.Context, string) ([]dto.BalancePoint, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetKnownAccounts(context.Context) ([]dto.KnownAccount, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetTokens(context.Context, int) ([]dto.Token, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetTokenDetails(context.Context, string) (*dto.Token, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetTopHolders(context.Context, string, int) ([]dto.TokenHolder, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetHoldersTS(context.Context, string) ([]dto.HolderPoint, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetTransfers(context.Context) ([]dto.Transfer, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetOHLCV(context.Context, string, dto.OHLCVParams) ([]dto.OHLCVPoint, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetPythPrice(context.Context, string) (*dto.PythPrice, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetPythProduct(context.Context, string) (*dto.PythProduct, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetPythOHLC(context.Context, string, dto.OHLCVParams) ([]dto.PythPoint, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetPythTS(context.Context, string, dto.OHLCVParams) ([]dto.PythPoint, error) {
	return nil, errVybeUnavailable
}

func (stubVybeRepo) GetNFTCollectionOwners(context.Context, string) ([]dto.NFTOwner, error) {
	return nil, errVybeUnavailable
}

// fakeTransport answers every Bot API call with a minimal edited message, so
// an offline bot can run handlers without the network.
type fakeTransport struct{}

func (fakeTransport) RoundTrip(*http.Request) (*http.Response, error) {
	body := `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}, nil
}

// fakeContext records what a handler sends. Methods not overridden here are
// never reached by the handlers under test.
type fakeContext struct {
	telebot.Context
	sender *telebot.User
	args   []string
	msg    *telebot.Message
	cb     *telebot.Callback
	sent   []string
}

func (f *fakeContext) Sender() *telebot.User       { return f.sender }
func (f *fakeContext) Chat() *telebot.Chat         { return &telebot.Chat{ID: f.sender.ID} }
func (f *fakeContext) Message() *telebot.Message   { return f.msg }
func (f *fakeContext) Callback() *telebot.Callback { return f.cb }
func (f *fakeContext) Args() []string              { return f.args }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	if text, ok := what.(string); ok {
		f.sent = append(f.sent, text)
	}
	return nil
}

func (f *fakeContext) Respond(resp ...*telebot.CallbackResponse) error { return nil }

func newTestBotHandler(t *testing.T) *TelegramBotHandler {
	t.Helper()

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	cfg := &config.Config{
		Telegram: config.TelegramConfig{
			MaxGlobalRequestPerSecond: 30,
			MaxUserRequestPerSecond:   5,
		},
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Offline: true,
		Client:  &http.Client{Transport: fakeTransport{}},
	})
	require.NoError(t, err)

	favoritesRepo := repository.NewFavoritesRepository(filepath.Join(t.TempDir(), "favorites.json"))
	services := &service.Service{
		FavoritesService: service.NewFavoritesService(log, favoritesRepo, stubVybeRepo{}),
	}

	sessions := NewSessionStore(cache.NewCache(time.Minute, time.Minute), time.Minute)
	limiter := telegram.NewRateLimiter(&cfg.Telegram, log, bot)

	return NewTelegramBotHandler(context.Background(), cfg, log, bot, limiter,
		echo.New(), goValidator.New(), services, sessions, stubVybeRepo{})
}

func TestAddFavoriteTokenStoresArgumentVerbatim(t *testing.T) {
	handler := newTestBotHandler(t)
	ctx := context.Background()

	add := &fakeContext{sender: &telebot.User{ID: 42}, args: []string{"MINT123"}}
	require.NoError(t, handler.handleAddFavoriteToken(ctx, add))
	require.NotEmpty(t, add.sent)
	assert.Contains(t, add.sent[0], "MINT123")

	list := &fakeContext{sender: &telebot.User{ID: 42}}
	require.NoError(t, handler.handleFavoriteTokens(ctx, list))
	require.NotEmpty(t, list.sent)
	assert.Contains(t, list.sent[len(list.sent)-1], "MINT123")

	favorites, err := handler.service.FavoritesService.List(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"MINT123"}, favorites.Tokens)
}

func TestAddFavoriteAccountStoresArgumentVerbatim(t *testing.T) {
	handler := newTestBotHandler(t)
	ctx := context.Background()

	add := &fakeContext{sender: &telebot.User{ID: 7}, args: []string{"not-a-base58-address"}}
	require.NoError(t, handler.handleAddFavoriteAccount(ctx, add))

	favorites, err := handler.service.FavoritesService.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"not-a-base58-address"}, favorites.Accounts)
}

func TestMenuButtonsAbandonPendingFlow(t *testing.T) {
	handler := newTestBotHandler(t)
	ctx := context.Background()

	menus := map[string]func(context.Context, telebot.Context) error{
		"main":     handler.handleMainMenu,
		"prices":   handler.handlePricesMenu,
		"accounts": handler.handleAccountsMenu,
		"holders":  handler.handleHoldersMenu,
		"whale":    handler.handleWhaleMenu,
	}

	for name, open := range menus {
		t.Run(name, func(t *testing.T) {
			handler.sessions.Set(42, NewSession(dto.FlowWhale, stepWhaleThreshold))

			c := &fakeContext{
				sender: &telebot.User{ID: 42},
				msg:    &telebot.Message{ID: 1, Chat: &telebot.Chat{ID: 42}},
				cb:     &telebot.Callback{},
			}
			require.NoError(t, open(ctx, c))

			_, ok := handler.sessions.Get(42)
			assert.False(t, ok, "pending flow should be cleared by the menu")
		})
	}
}
