package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/statsboard/internal/service"
)

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, svc *service.DashboardService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(svc),
		chatID:  chatID,
	}, nil
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			chatID := update.Message.Chat.ID
			reply := t.handler.HandleCommand(ctx, update)
			if err := t.send(chatID, reply.Text); err != nil {
				slog.Error("Error sending message", "error", err)
			}
			if len(reply.Photo) > 0 {
				if err := t.sendPhoto(chatID, reply.Photo); err != nil {
					slog.Error("Error sending chart", "error", err)
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *TelegramBot) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramBot) sendPhoto(chatID int64, img []byte) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "chart.png", Bytes: img})
	_, err := t.bot.Send(photo)
	return err
}

// SendMessage posts to the configured chat.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	err := t.send(t.chatID, text)
	if err != nil {
		slog.Error("Error sending message", "error", err)
	}
	return err
}

func (t *TelegramBot) SendPhoto(img []byte) error {
	if t.chatID == 0 {
		return fmt.Errorf("chat ID not set")
	}
	err := t.sendPhoto(t.chatID, img)
	if err != nil {
		slog.Error("Error sending chart", "error", err)
	}
	return err
}
