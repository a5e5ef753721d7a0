package notify

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// TelegramNotifier отправляет оператору снимки найденных дефектов.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier создаёт оповещатель для указанного чата.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	log.Printf("Telegram alerts authorized on account %s", api.Self.UserName)

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
	}, nil
}

// NotifySnapshot отправляет снимок с подписью о найденном дефекте.
func (n *TelegramNotifier) NotifySnapshot(ctx context.Context, event entity.SnapshotEvent, image []byte) error {
	_ = ctx

	photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
		Name:  filepath.Base(event.Path),
		Bytes: image,
	})
	photo.Caption = fmt.Sprintf("%s: %.2f (track %d)", event.Label, event.Confidence, event.TrackID)

	if _, err := n.api.Send(photo); err != nil {
		return fmt.Errorf("send snapshot alert: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Notifier = (*TelegramNotifier)(nil)
