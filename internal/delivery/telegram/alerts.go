package telegram

import (
	"context"
	"fmt"
	"strings"

	"vybevigil/pkg/utils"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) handleAlertCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Send("Usage: /alert <token mint> <price threshold>\nExample: /alert So11111111111111111111111111111111111111112 200")
	}

	mint := args[0]
	if err := validateSolanaAddress(mint); err != nil {
		return c.Send("❌ " + err.Error())
	}
	threshold, err := parseThreshold(args[1])
	if err != nil {
		return c.Send("❌ " + err.Error())
	}

	alert, err := t.service.AlertService.Create(ctx, c.Sender().ID, mint, threshold)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}

	return c.Send(fmt.Sprintf("🚨 Alert #%d set: I'll ping you when `%s` reaches %s.",
		alert.ID, utils.ShortAddr(mint), utils.FormatUSD(threshold)),
		&telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleMyAlerts(ctx context.Context, c telebot.Context) error {
	alerts, err := t.service.AlertService.ListByUser(ctx, c.Sender().ID)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	if len(alerts) == 0 {
		return c.Send("You have no active alerts. Use /alert to set one.")
	}

	var b strings.Builder
	b.WriteString("🚨 *Your Active Alerts*\n\n")
	for _, alert := range alerts {
		b.WriteString(fmt.Sprintf("#%d `%s` at %s\n", alert.ID, utils.ShortAddr(alert.MintAddress), utils.FormatUSD(alert.Threshold)))
	}
	b.WriteString("\nAlerts fire once and are then removed.")
	return c.Send(b.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}
