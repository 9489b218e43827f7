package telegram

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vybevigil/internal/dto"
	"vybevigil/pkg/logger"

	"github.com/agnivade/levenshtein"
	"gopkg.in/telebot.v3"
)

// flowStep is one question of a multi-step flow. validate rejects bad input
// without losing the user's place; run consumes accepted input and reports
// whether the flow is finished.
type flowStep struct {
	validate func(input string) error
	run      func(ctx context.Context, c telebot.Context, sess *Session, input string) (done bool, err error)
}

func (t *TelegramBotHandler) registerFlows() {
	t.flows = map[dto.Flow]map[string]flowStep{
		dto.FlowAccounts: t.accountSteps(),
		dto.FlowPrices:   t.priceSteps(),
		dto.FlowChart:    t.chartSteps(),
		dto.FlowHolders:  t.holderSteps(),
		dto.FlowNFT:      t.nftSteps(),
		dto.FlowPyth:     t.pythSteps(),
		dto.FlowWhale:    t.whaleSteps(),
	}
}

func (t *TelegramBotHandler) handleConversation(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	unlock := t.sessions.Lock(userID)
	defer unlock()

	sess, ok := t.sessions.Get(userID)
	if !ok {
		return t.handleTextMessage(ctx, c)
	}

	steps, flowKnown := t.flows[sess.Flow]
	step, stepKnown := steps[sess.Step]
	if !flowKnown || !stepKnown {
		// Dangling session, likely from an old version of the flow.
		t.ResetUserState(userID)
		_, err := t.telegram.Send(ctx, c, msgNoActiveConversation)
		return err
	}

	input := strings.TrimSpace(c.Text())
	if step.validate != nil {
		if err := step.validate(input); err != nil {
			// Keep the session so the user can just retype the answer.
			_, sendErr := t.telegram.Send(ctx, c,
				fmt.Sprintf("❌ %s\nPlease try again:", err.Error()), cancelMarkup())
			return sendErr
		}
	}

	done, err := step.run(ctx, c, sess, input)
	if err != nil {
		t.ResetUserState(userID)
		t.log.ErrorContext(ctx, "Flow step failed",
			logger.StringField("flow", string(sess.Flow)),
			logger.StringField("step", sess.Step),
			logger.ErrorField(err))
		_, sendErr := t.telegram.Send(ctx, c, fmt.Sprintf(commonErrorFetch, err.Error()))
		return sendErr
	}

	if done {
		t.ResetUserState(userID)
		return nil
	}
	t.sessions.Set(userID, sess)
	return nil
}

func (t *TelegramBotHandler) handleTextMessage(ctx context.Context, c telebot.Context) error {
	input := strings.TrimSpace(c.Text())

	suggestions := suggestCommands(input)
	if len(suggestions) > 0 {
		return c.Send(fmt.Sprintf("I don't recognize that. Did you mean %s?", strings.Join(suggestions, " or ")))
	}
	return c.Send("I don't recognize that. Use /help to see available commands.")
}

func (t *TelegramBotHandler) ResetUserState(userID int64) {
	t.sessions.Clear(userID)
}

// beginFlow stores a fresh session and asks the first question. Any flow
// the user was previously in gets replaced.
func (t *TelegramBotHandler) beginFlow(ctx context.Context, c telebot.Context, flow dto.Flow, step string, prompt string) error {
	userID := c.Sender().ID
	unlock := t.sessions.Lock(userID)
	sess := NewSession(flow, step)
	t.sessions.Set(userID, sess)
	unlock()

	_, err := t.telegram.Send(ctx, c, prompt, cancelMarkup(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return err
}

// askNext advances the session to the next step and sends its prompt. The
// caller still owns the session lock via handleConversation.
func (t *TelegramBotHandler) askNext(ctx context.Context, c telebot.Context, sess *Session, step string, prompt string) error {
	sess.Step = step
	_, err := t.telegram.Send(ctx, c, prompt, cancelMarkup(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return err
}

func (t *TelegramBotHandler) handleCancel(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	if _, ok := t.sessions.Get(userID); !ok {
		return c.Send(msgNoActiveConversation)
	}

	t.ResetUserState(userID)
	return c.Send(msgCancelled)
}

func (t *TelegramBotHandler) handleBtnCancel(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	_, err := t.telegram.Edit(ctx, c, c.Message(), msgCancelled)
	return err
}

// reply delivers text that may exceed Telegram's message cap, attaching the
// follow-up menu to the final chunk.
func (t *TelegramBotHandler) reply(ctx context.Context, c telebot.Context, text string) error {
	chunks := chunkMessage(text)
	for i, chunk := range chunks {
		opts := []interface{}{&telebot.SendOptions{ParseMode: telebot.ModeMarkdown}}
		if i == len(chunks)-1 {
			opts = append(opts, t.followupMarkup())
		}
		if _, err := t.telegram.Send(ctx, c, chunk, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (t *TelegramBotHandler) replyFetchError(ctx context.Context, c telebot.Context, err error) error {
	t.log.ErrorContext(ctx, "Vybe request failed", logger.ErrorField(err))
	_, sendErr := t.telegram.Send(ctx, c, fmt.Sprintf(commonErrorFetch, err.Error()))
	return sendErr
}

func (t *TelegramBotHandler) followupMarkup() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)))
	return menu
}

// commandAliases maps loose spellings to the command they most likely meant.
var commandAliases = map[string]string{
	"balance":    "/balance",
	"wallet":     "/balance",
	"prices":     "/prices",
	"price":      "/prices",
	"tokens":     "/prices",
	"details":    "/tokendetails",
	"token":      "/tokendetails",
	"holders":    "/topholders",
	"chart":      "/chart",
	"graph":      "/chart",
	"whale":      "/whalealert",
	"whales":     "/whalealert",
	"transfers":  "/whalealert",
	"nft":        "/nft",
	"collection": "/nft",
	"pyth":       "/pyth",
	"oracle":     "/pyth",
	"tutorial":   "/tutorial",
	"help":       "/help",
	"alert":      "/alert",
	"alerts":     "/myalerts",
	"favorites":  "/favoritetokens",
	"cancel":     "/cancel",
	"start":      "/start",
}

// suggestCommands ranks known command aliases by edit distance and returns
// up to two distinct commands within distance 2.
func suggestCommands(input string) []string {
	word := strings.ToLower(strings.TrimPrefix(input, "/"))
	if word == "" || strings.ContainsRune(word, ' ') {
		return nil
	}

	type match struct {
		command  string
		distance int
	}
	var matches []match
	for alias, command := range commandAliases {
		if d := levenshtein.ComputeDistance(word, alias); d <= 2 {
			matches = append(matches, match{command: command, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].command < matches[j].command
	})

	var suggestions []string
	seen := make(map[string]bool)
	for _, m := range matches {
		if seen[m.command] {
			continue
		}
		seen[m.command] = true
		suggestions = append(suggestions, m.command)
		if len(suggestions) == 2 {
			break
		}
	}
	return suggestions
}
