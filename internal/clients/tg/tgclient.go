package tg

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
	"github.com/ellavs/tg-finance-assistant/internal/model/messages"
)

// Размер очереди обновлений одного обработчика.
const shardQueueSize = 64

// HandlerFunc Функция обработки одного обновления (оборачивается в middleware).
type HandlerFunc func(ctx context.Context, tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model)

func (f HandlerFunc) RunFunc(ctx context.Context, tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	f(ctx, tgUpdate, c, msgModel)
}

type Client struct {
	client                *tgbotapi.BotAPI
	handlerProcessingFunc HandlerFunc // Функция обработки входящих сообщений.
	workers               int         // Количество параллельных обработчиков.
}

type TokenGetter interface {
	Token() string
}

func New(tokenGetter TokenGetter, handlerProcessingFunc HandlerFunc, workers int) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка NewBotAPI")
	}

	return &Client{
		client:                client,
		handlerProcessingFunc: handlerProcessingFunc,
		workers:               workers,
	}, nil
}

// SendMessage Отправка текста без разметки (в тексте могут быть названия категорий пользователя).
func (c *Client) SendMessage(text string, userID int64) error {
	msg := tgbotapi.NewMessage(userID, text)
	_, err := c.client.Send(msg)
	if err != nil {
		return errors.Wrap(err, "Ошибка отправки сообщения client.Send")
	}
	return nil
}

// ShowKeyboard Отправка сообщения с клавиатурой главного меню.
// Нажатие кнопки приходит обычным текстовым сообщением.
func (c *Client) ShowKeyboard(text string, buttons []types.TgRowButtons, userID int64) error {
	msg := tgbotapi.NewMessage(userID, text)
	msg.ReplyMarkup = replyKeyboard(buttons)
	_, err := c.client.Send(msg)
	if err != nil {
		logger.Error("Ошибка отправки сообщения", "err", err)
		return errors.Wrap(err, "client.Send with keyboard")
	}
	return nil
}

// ListenUpdates Получение обновлений до отмены контекста.
// Обновления одного пользователя обрабатываются по порядку, разных пользователей - параллельно.
func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Model) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)
	dispatcher := newDispatcher(c.workers, shardQueueSize)
	defer dispatcher.Stop()

	logger.Info("Start listening for tg messages", "workers", c.workers)

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for tg messages")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			userID, ok := updateUserID(update)
			if !ok {
				continue
			}
			queued := dispatcher.Dispatch(ctx, userID, func() {
				// Функция обработки сообщений (обернутая в middleware).
				c.handlerProcessingFunc.RunFunc(ctx, update, c, msgModel)
			})
			if !queued {
				c.client.StopReceivingUpdates()
				logger.Info("Stop listening for tg messages")
				return
			}
		}
	}
}

// ProcessingMessages Обработка текстового сообщения пользователя.
func ProcessingMessages(ctx context.Context, tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	if tgUpdate.Message == nil || tgUpdate.Message.From == nil {
		return
	}
	from := tgUpdate.Message.From
	logger.Info(fmt.Sprintf("[%s][%v] %s", from.UserName, from.ID, tgUpdate.Message.Text))
	err := msgModel.IncomingMessage(ctx, messages.Message{
		Text:            tgUpdate.Message.Text,
		UserID:          from.ID,
		UserName:        from.UserName,
		UserDisplayName: strings.TrimSpace(from.FirstName + " " + from.LastName),
	})
	if err != nil {
		logger.Error("error processing message:", "err", err)
	}
}

// updateUserID Пользователь, от которого пришло сообщение.
func updateUserID(update tgbotapi.Update) (int64, bool) {
	if update.Message == nil || update.Message.From == nil {
		return 0, false
	}
	return update.Message.From.ID, true
}

func replyKeyboard(buttons []types.TgRowButtons) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, len(buttons))
	for i, tgRowButtons := range buttons {
		rows[i] = make([]tgbotapi.KeyboardButton, len(tgRowButtons))
		for j, button := range tgRowButtons {
			rows[i][j] = tgbotapi.NewKeyboardButton(button.DisplayName)
		}
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	return keyboard
}
