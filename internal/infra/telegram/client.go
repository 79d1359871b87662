// internal/infra/telegram/client.go
package telegram

import (
	"errors"
	"net/http"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string) error {
	_, err := tba.bot.Send(telebot.ChatID(recipientChatID), text)
	return err
}

// IsRejected reports whether err is a malformed-request rejection from
// the Bot API (HTTP 400 class). The notifier logs and swallows these
// instead of propagating them into the polling loop.
func IsRejected(err error) bool {
	var apiErr *telebot.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest
}
