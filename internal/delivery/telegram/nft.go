package telegram

import (
	"bytes"
	"context"

	"vybevigil/internal/dto"

	"gopkg.in/telebot.v3"
)

const (
	stepNFTCollection = "collection"

	promptNFTCollection = "Please send the NFT collection address:"
)

func (t *TelegramBotHandler) handleNFTMenu(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowNFT, stepNFTCollection, promptNFTCollection)
}

func (t *TelegramBotHandler) handleNFTCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return t.beginFlow(ctx, c, dto.FlowNFT, stepNFTCollection, promptNFTCollection)
	}

	collection := args[0]
	if err := validateSolanaAddress(collection); err != nil {
		return c.Send("❌ " + err.Error())
	}
	if err := t.sendNFTReport(ctx, c, collection); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) nftSteps() map[string]flowStep {
	return map[string]flowStep{
		stepNFTCollection: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				return true, t.sendNFTReport(ctx, c, input)
			},
		},
	}
}

// sendNFTReport sends the ownership summary plus a distribution chart of
// the biggest holders.
func (t *TelegramBotHandler) sendNFTReport(ctx context.Context, c telebot.Context, collection string) error {
	if _, err := t.telegram.Send(ctx, c, msgLoading); err != nil {
		return err
	}

	report, err := t.service.AnalyticsService.NFTDistribution(ctx, collection)
	if err != nil {
		return err
	}

	if err := t.reply(ctx, c, formatNFTReport(report)); err != nil {
		return err
	}

	png, err := t.chart.HolderChart(report.Distribution)
	if err != nil {
		// The text report already went out, keep the failure quiet.
		return nil
	}
	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(png)),
		Caption: "🖼 Holder distribution",
	}
	_, err = t.telegram.Send(ctx, c, photo)
	return err
}
