package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
)

// TelegramBot pushes operational alerts to a private ops chat. It is an
// optional dependency: when no token is configured the dispatcher runs
// without an alerter.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// AlertNotificationFailed reports a delivery failure so an operator can
// decide whether to re-drive the entry.
func (b *TelegramBot) AlertNotificationFailed(ctx context.Context, entry entity.NotificationLogEntry, reason string) {
	text := fmt.Sprintf(
		"⚠️ <b>Notification delivery failed</b>\n\n"+
			"🆔 <b>Entry:</b> %s\n"+
			"📨 <b>Event:</b> %s\n"+
			"🤝 <b>Deal:</b> %s\n"+
			"👤 <b>Recipient:</b> %s\n"+
			"🔁 <b>Attempts:</b> %d\n\n"+
			"<b>Reason:</b> %s",
		entry.ID,
		entry.EventType,
		entry.DealID,
		entry.RecipientID,
		entry.Attempts,
		reason,
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		logger(ctx).Error("failed to send failure alert", "error", err, "entry_id", entry.ID)
	}
}

// SendText sends a plain text message to the ops chat.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
