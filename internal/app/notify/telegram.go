package notify

import (
	"context"
	"strconv"

	"servicedesk/internal/app/ds"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Directory - поиск принципалов по телефону и привязка чатов.
// Реализуется repository.Repository.
type Directory interface {
	GetClientByPhone(phone string) (*ds.Client, error)
	GetAdminByPhone(phone string) (*ds.Admin, error)
	UpdateClientTelegramID(clientID uint, chatID string) error
	UpdateAdminTelegramID(adminID uint, chatID string) error
}

// Telegram - шлюз уведомлений. Доставка best-effort: любой сбой
// логируется и превращается в delivered=false, наружу ошибки не уходят.
type Telegram struct {
	bot *tgbotapi.BotAPI
	dir Directory
}

// NewTelegram создаёт шлюз. Пустой токен - допустимая конфигурация:
// шлюз работает как выключенный (все доставки false).
func NewTelegram(token string, dir Directory) (*Telegram, error) {
	if token == "" {
		logrus.Warn("telegram bot token is empty, notifications disabled")
		return &Telegram{dir: dir}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logrus.Infof("telegram bot authorized as %s", bot.Self.UserName)

	return &Telegram{bot: bot, dir: dir}, nil
}

// chatIDByPhone ищет привязанный чат: сначала среди клиентов, затем среди администраторов
func (t *Telegram) chatIDByPhone(phone string) string {
	if client, err := t.dir.GetClientByPhone(phone); err == nil {
		if client.TelegramID != nil && *client.TelegramID != "" {
			return *client.TelegramID
		}
		return ""
	}
	if admin, err := t.dir.GetAdminByPhone(phone); err == nil {
		if admin.TelegramID != nil && *admin.TelegramID != "" {
			return *admin.TelegramID
		}
	}
	return ""
}

// Notify доставляет сообщение адресату по номеру телефона.
// Адресат без привязанного чата - не ошибка, просто false.
func (t *Telegram) Notify(_ context.Context, phone, message string) bool {
	if t.bot == nil {
		return false
	}

	chatStr := t.chatIDByPhone(phone)
	if chatStr == "" {
		logrus.Infof("notify: no linked telegram chat for %s", phone)
		return false
	}

	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		logrus.Warnf("notify: invalid chat id %q for %s: %v", chatStr, phone, err)
		return false
	}

	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, message)); err != nil {
		logrus.Warnf("notify: telegram send to %s failed: %v", phone, err)
		return false
	}
	return true
}

// Run запускает long-poll цикл бота для привязки чатов: пользователь
// делится контактом, и его telegram_id сохраняется по номеру телефона.
// Блокируется до отмены контекста. При пустом токене сразу выходит.
func (t *Telegram) Run(ctx context.Context) error {
	if t.bot == nil {
		return nil
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := t.bot.GetUpdatesChan(u)

	logrus.Info("telegram link bot started")

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			t.handleUpdate(update)
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			logrus.Info("telegram link bot stopped")
			return ctx.Err()
		}
	}
}

func (t *Telegram) handleUpdate(update tgbotapi.Update) {
	msg := update.Message

	if msg.Contact != nil {
		t.linkContact(msg.Chat.ID, msg.Contact.PhoneNumber)
		return
	}

	if msg.IsCommand() && msg.Command() == "start" {
		reply := tgbotapi.NewMessage(msg.Chat.ID,
			"Поделитесь контактом, чтобы получать уведомления по вашим заявкам")
		reply.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButtonContact("Поделиться контактом"),
			),
		)
		if _, err := t.bot.Send(reply); err != nil {
			logrus.Warnf("link bot: start reply failed: %v", err)
		}
	}
}

// linkContact сохраняет chat id по номеру телефона клиента либо администратора
func (t *Telegram) linkContact(chatID int64, phone string) {
	chatStr := strconv.FormatInt(chatID, 10)

	if client, err := t.dir.GetClientByPhone(phone); err == nil {
		if err := t.dir.UpdateClientTelegramID(client.ID, chatStr); err != nil {
			logrus.Warnf("link bot: client %d link failed: %v", client.ID, err)
			return
		}
		t.confirmLink(chatID)
		return
	}

	if admin, err := t.dir.GetAdminByPhone(phone); err == nil {
		if err := t.dir.UpdateAdminTelegramID(admin.ID, chatStr); err != nil {
			logrus.Warnf("link bot: admin %d link failed: %v", admin.ID, err)
			return
		}
		t.confirmLink(chatID)
		return
	}

	logrus.Infof("link bot: unknown phone %s", phone)
}

func (t *Telegram) confirmLink(chatID int64) {
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, "Уведомления подключены")); err != nil {
		logrus.Warnf("link bot: confirm failed: %v", err)
	}
}
