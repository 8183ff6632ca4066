package messages

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
	"github.com/ellavs/tg-finance-assistant/internal/model/dialog"
	"github.com/ellavs/tg-finance-assistant/internal/model/exchangerates"
)

//go:generate mockgen -source=incoming_msg.go -destination=../../mocks/messages/messages_mocks.go -package=mocks

// Область "Константы и переменные": начало.

const (
	txtStart           = "Привет, %v! Я ваш личный финансовый помощник. Выберите одну из опций в меню:"
	txtUnknownCommand  = "К сожалению, данная команда мне неизвестна. Выберите одну из опций в меню или введите /start"
	txtHelp            = "Я помогаю вести учет личных финансов: регистрация, ввод трёх категорий расходов, курсы валют и советы по экономии. Для начала работы введите /start"
	txtRegistered      = "Вы успешно зарегистрированы!"
	txtAlreadyExists   = "Вы уже зарегистрированы!"
	txtRatesError      = "Не удалось получить данные о курсе валют!"
	txtRatesTimeout    = "Сервис курсов валют не ответил вовремя. Попробуйте позже."
	txtRates           = "1 USD - %v RUB\n1 EUR - %v RUB\n1 CNY - %v RUB"
	txtSummaryTitle    = "Ваши расходы:"
	txtSummaryEmpty    = "Расходы пока не введены. Нажмите «Личные финансы»."
	txtNothingToCancel = "Нет активного ввода расходов."
	defaultDisplayName = "друг"
)

// Кнопки главного меню.
const (
	BtnRegister = "Регистрация в телеграм-боте"
	BtnRates    = "Курс валют"
	BtnTips     = "Советы по экономии"
	BtnFinances = "Личные финансы"
	BtnSummary  = "Мои расходы"
)

// Клавиатура главного меню.
var btnMenu = []types.TgRowButtons{
	{types.TgKeyboardButton{DisplayName: BtnRegister}, types.TgKeyboardButton{DisplayName: BtnRates}},
	{types.TgKeyboardButton{DisplayName: BtnTips}, types.TgKeyboardButton{DisplayName: BtnFinances}},
	{types.TgKeyboardButton{DisplayName: BtnSummary}},
}

// Область "Константы и переменные": конец.

// Область "Внешний интерфейс": начало.

// MessageSender Интерфейс для работы с сообщениями.
type MessageSender interface {
	SendMessage(text string, userID int64) error
	ShowKeyboard(text string, buttons []types.TgRowButtons, userID int64) error
}

// UserDataStorage Интерфейс для работы с хранилищем пользователей.
type UserDataStorage interface {
	Register(ctx context.Context, userID int64, displayName string) (types.RegisterResult, error)
	GetUser(ctx context.Context, userID int64) (types.UserRecord, error)
}

// ExchangeRates Интерфейс для получения курсов валют.
type ExchangeRates interface {
	GetCrossRates(ctx context.Context) (exchangerates.CrossRates, error)
}

// Dialogue Интерфейс диалога ввода расходов.
type Dialogue interface {
	Begin(ctx context.Context, userID int64) dialog.Reply
	Continue(ctx context.Context, userID int64, text string) (dialog.Reply, bool)
}

// commandFunc Обработчик команды, когда диалог не активен.
type commandFunc func(s *Model, ctx context.Context, msg Message) error

// Model Модель бота (клиент, хранилище, курсы валют, диалог).
type Model struct {
	tgClient MessageSender   // Клиент.
	storage  UserDataStorage // Хранилище пользовательской информации.
	rates    ExchangeRates   // Курсы валют.
	dialogue Dialogue        // Диалог ввода расходов.
	tips     *Tips           // Советы по экономии.
	commands map[string]commandFunc
}

// New Генерация сущности для обработки входящих сообщений.
func New(tgClient MessageSender, storage UserDataStorage, rates ExchangeRates, dialogue Dialogue, tips *Tips) *Model {
	return &Model{
		tgClient: tgClient,
		storage:  storage,
		rates:    rates,
		dialogue: dialogue,
		tips:     tips,
		commands: commandTable(),
	}
}

// Message Структура сообщения для обработки.
type Message struct {
	Text            string
	UserID          int64
	UserName        string
	UserDisplayName string
}

// IncomingMessage Обработка входящего сообщения: сначала активный диалог, затем команды.
// На каждое сообщение отправляется ровно один ответ.
func (s *Model) IncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "IncomingMessage")
	defer span.Finish()

	if reply, handled := s.dialogue.Continue(ctx, msg.UserID, msg.Text); handled {
		return s.sendReply(msg.UserID, reply)
	}

	if handler, ok := s.commands[dialog.NormalizeCommand(msg.Text)]; ok {
		return handler(s, ctx, msg)
	}

	// Отправка ответа по умолчанию.
	return s.tgClient.SendMessage(txtUnknownCommand, msg.UserID)
}

// CommandLabel Имя команды для метрик.
func CommandLabel(text string) string {
	text = dialog.NormalizeCommand(text)
	for _, cmd := range commandList {
		for _, alias := range cmd.aliases {
			if text == dialog.NormalizeCommand(alias) {
				return cmd.label
			}
		}
	}
	return "text"
}

// Область "Внешний интерфейс": конец.

// Область "Служебные функции": начало.

type command struct {
	label   string
	aliases []string
	handler commandFunc
}

// Команды, доступные вне диалога (текст кнопки или slash-команда).
var commandList = []command{
	{label: "start", aliases: []string{"/start"}, handler: (*Model).onStart},
	{label: "help", aliases: []string{"/help"}, handler: (*Model).onHelp},
	{label: "register", aliases: []string{"/register", BtnRegister}, handler: (*Model).onRegister},
	{label: "rates", aliases: []string{"/rates", BtnRates}, handler: (*Model).onRates},
	{label: "tips", aliases: []string{"/tips", BtnTips}, handler: (*Model).onTips},
	{label: "finances", aliases: []string{"/finances", BtnFinances}, handler: (*Model).onFinances},
	{label: "summary", aliases: []string{"/summary", BtnSummary}, handler: (*Model).onSummary},
	{label: "cancel", aliases: dialog.CancelCommands, handler: (*Model).onCancelIdle},
}

func commandTable() map[string]commandFunc {
	table := make(map[string]commandFunc)
	for _, cmd := range commandList {
		for _, alias := range cmd.aliases {
			table[dialog.NormalizeCommand(alias)] = cmd.handler
		}
	}
	return table
}

// sendReply Отправка ответа диалога с записью причины отказа в лог.
func (s *Model) sendReply(userID int64, reply dialog.Reply) error {
	if reply.Err != nil {
		if errors.Is(reply.Err, types.ErrValidation) {
			logger.Debug("Некорректный ввод", "userID", userID, "err", reply.Err)
		} else {
			logger.Warn("Шаг диалога не выполнен", "userID", userID, "err", reply.Err)
		}
	}
	return s.tgClient.SendMessage(reply.Text, userID)
}

func (s *Model) onStart(ctx context.Context, msg Message) error {
	return s.tgClient.ShowKeyboard(fmt.Sprintf(txtStart, displayName(msg)), btnMenu, msg.UserID)
}

func (s *Model) onHelp(ctx context.Context, msg Message) error {
	return s.tgClient.SendMessage(txtHelp, msg.UserID)
}

// onRegister Регистрация пользователя.
func (s *Model) onRegister(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "onRegister")
	defer span.Finish()

	result, err := s.storage.Register(ctx, msg.UserID, registrationName(msg))
	if err != nil {
		logger.Error("Ошибка регистрации пользователя", "userID", msg.UserID, "err", err)
		return s.tgClient.SendMessage(dialog.TxtStorageError, msg.UserID)
	}
	if result == types.AlreadyExists {
		return s.tgClient.SendMessage(txtAlreadyExists, msg.UserID)
	}
	return s.tgClient.SendMessage(txtRegistered, msg.UserID)
}

// onRates Курсы USD, EUR и CNY к рублю.
func (s *Model) onRates(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "onRates")
	defer span.Finish()

	rates, err := s.rates.GetCrossRates(ctx)
	if err != nil {
		logger.Error("Ошибка получения курсов валют", "err", err)
		if errors.Is(err, types.ErrRateFetchTimeout) {
			return s.tgClient.SendMessage(txtRatesTimeout, msg.UserID)
		}
		return s.tgClient.SendMessage(txtRatesError, msg.UserID)
	}
	return s.tgClient.SendMessage(formatRates(rates), msg.UserID)
}

func (s *Model) onTips(ctx context.Context, msg Message) error {
	return s.tgClient.SendMessage(s.tips.Random(), msg.UserID)
}

func (s *Model) onFinances(ctx context.Context, msg Message) error {
	return s.sendReply(msg.UserID, s.dialogue.Begin(ctx, msg.UserID))
}

// onSummary Сохраненные категории и расходы пользователя.
func (s *Model) onSummary(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "onSummary")
	defer span.Finish()

	user, err := s.storage.GetUser(ctx, msg.UserID)
	if errors.Is(err, types.ErrNotRegistered) {
		return s.tgClient.SendMessage(dialog.TxtRegisterFirst, msg.UserID)
	}
	if err != nil {
		logger.Error("Ошибка получения данных пользователя", "userID", msg.UserID, "err", err)
		return s.tgClient.SendMessage(dialog.TxtStorageError, msg.UserID)
	}
	return s.tgClient.SendMessage(formatSummary(user), msg.UserID)
}

func (s *Model) onCancelIdle(ctx context.Context, msg Message) error {
	return s.tgClient.SendMessage(txtNothingToCancel, msg.UserID)
}

// Форматирование курсов (два знака после запятой).
func formatRates(rates exchangerates.CrossRates) string {
	return fmt.Sprintf(txtRates,
		formatAmount(rates.USDToRUB),
		formatAmount(rates.EURToRUB),
		formatAmount(rates.CNYToRUB),
	)
}

// formatAmount Два знака после запятой. decimal не принимает Inf и NaN.
func formatAmount(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(2)
}

// Форматирование сохраненных категорий.
func formatSummary(user types.UserRecord) string {
	var res strings.Builder
	for ind, slot := range user.Categories {
		if slot == nil {
			continue
		}
		res.WriteString(fmt.Sprintf("%v. %v - %v\n", ind+1, slot.Label, formatAmount(slot.Amount)))
	}
	if res.Len() == 0 {
		return txtSummaryEmpty
	}
	return txtSummaryTitle + "\n" + res.String()
}

// Имя для приветствия.
func displayName(msg Message) string {
	if name := registrationName(msg); name != "" {
		return name
	}
	return defaultDisplayName
}

// Имя для регистрации: полное имя, иначе имя пользователя.
func registrationName(msg Message) string {
	if msg.UserDisplayName != "" {
		return msg.UserDisplayName
	}
	return msg.UserName
}

// Область "Служебные функции": конец.
