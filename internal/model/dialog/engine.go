package dialog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ellavs/tg-finance-assistant/internal/helpers/timeutils"
	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

//go:generate mockgen -source=engine.go -destination=../../mocks/dialog/dialog_mocks.go -package=mocks

const (
	TxtRegisterFirst = "Сначала зарегистрируйтесь: нажмите «Регистрация в телеграм-боте»."
	TxtStorageError  = "Не удалось обратиться к хранилищу данных. Попробуйте позже."
	TxtSaved         = "Категории и расходы сохранены!"
	TxtSaveFailed    = "Не удалось сохранить данные. Отправьте сумму ещё раз, чтобы повторить, или /cancel, чтобы начать заново."
	TxtCancelled     = "Ввод расходов отменён."
	txtEmptyCategory = "Название категории не может быть пустым."
	txtBadAmount     = "Сумма должна быть числом, например 1500 или 350.50."
	txtNegative      = "Сумма не может быть отрицательной."
	txtOutOfRange    = "Сумма должна быть не больше 1000000000000 и записана не длиннее 32 символов."
)

// Подсказки для шагов ввода.
var stagePrompts = map[Stage]string{
	AwaitCategory1: "Введите первую категорию расходов:",
	AwaitExpenses1: "Введите расходы для категории 1:",
	AwaitCategory2: "Введите вторую категорию расходов:",
	AwaitExpenses2: "Введите расходы для категории 2:",
	AwaitCategory3: "Введите третью категорию расходов:",
	AwaitExpenses3: "Введите расходы для категории 3:",
}

// CancelCommands Команды отмены активного диалога.
var CancelCommands = []string{"/cancel", "Отмена"}

// UserStore Хранилище пользователей, нужное диалогу.
type UserStore interface {
	IsRegistered(ctx context.Context, userID int64) (bool, error)
	CommitFinances(ctx context.Context, userID int64, slots [types.CategoriesCount]types.CategorySlot) error
}

// EventPublisher Отправка события о сохранении расходов.
type EventPublisher interface {
	PublishFinancesCommitted(ctx context.Context, event types.FinancesCommittedEvent) error
}

// Reply Ответ пользователю на сообщение. Err - причина, если сообщение не привело к переходу.
type Reply struct {
	Text string
	Err  error
}

// Engine Машина состояний диалога ввода расходов.
type Engine struct {
	sessions  SessionStore
	store     UserStore
	publisher EventPublisher // Может быть nil.
	now       func() time.Time
}

// NewEngine Инициализация машины состояний.
func NewEngine(sessions SessionStore, store UserStore, publisher EventPublisher) *Engine {
	return &Engine{
		sessions:  sessions,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Prompt Подсказка для шага.
func Prompt(stage Stage) string {
	return stagePrompts[stage]
}

// NormalizeCommand Текст команды для сравнения: без пробелов по краям и без учета регистра.
func NormalizeCommand(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsCancelCommand Текст является командой отмены.
func IsCancelCommand(text string) bool {
	text = NormalizeCommand(text)
	for _, cmd := range CancelCommands {
		if text == NormalizeCommand(cmd) {
			return true
		}
	}
	return false
}

// Begin Начало диалога ввода расходов. Доступно только зарегистрированным пользователям.
func (e *Engine) Begin(ctx context.Context, userID int64) Reply {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dialog.Begin")
	defer span.Finish()

	lease := e.sessions.Acquire(userID)
	defer lease.Release()

	registered, err := e.store.IsRegistered(ctx, userID)
	if err != nil {
		logger.Error("Ошибка проверки регистрации", "userID", userID, "err", err)
		return Reply{Text: TxtStorageError, Err: err}
	}
	if !registered {
		return Reply{Text: TxtRegisterFirst, Err: types.ErrNotRegistered}
	}

	from := lease.Session().Stage
	lease.Save(Session{Stage: AwaitCategory1})
	e.logTransition(userID, from, AwaitCategory1)
	return Reply{Text: Prompt(AwaitCategory1)}
}

// Continue Обработка сообщения в активном диалоге.
// handled == false - диалог не активен, сообщение обрабатывается как команда.
func (e *Engine) Continue(ctx context.Context, userID int64, text string) (reply Reply, handled bool) {
	lease := e.sessions.Acquire(userID)
	defer lease.Release()

	session := lease.Session()
	if session.Stage == Idle {
		return Reply{}, false
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "dialog.Continue")
	span.SetTag("stage", session.Stage.String())
	defer span.Finish()

	if IsCancelCommand(text) {
		lease.Save(Session{})
		e.logTransition(userID, session.Stage, Idle)
		return Reply{Text: TxtCancelled}, true
	}

	switch {
	case session.Stage.IsCategory():
		return e.applyCategory(lease, userID, session, text), true
	case session.Stage.IsExpenses():
		return e.applyExpenses(ctx, lease, userID, session, text), true
	}
	// Недостижимо при корректном Stage; состояние сбрасывается.
	lease.Save(Session{})
	return Reply{Text: TxtCancelled, Err: errors.Errorf("unknown stage %v", session.Stage)}, true
}

// CurrentSession Текущее состояние пользователя (копия).
func (e *Engine) CurrentSession(userID int64) Session {
	lease := e.sessions.Acquire(userID)
	defer lease.Release()
	return lease.Session()
}

// applyCategory Шаг AwaitCategoryN.
func (e *Engine) applyCategory(lease SessionLease, userID int64, session Session, text string) Reply {
	label, err := ParseLabel(text)
	if err != nil {
		return Reply{Text: txtEmptyCategory + "\n" + Prompt(session.Stage), Err: err}
	}
	from := session.Stage
	session.Buffer[from.Slot()] = types.CategorySlot{Label: label}
	session.Stage = from.Next()
	lease.Save(session)
	e.logTransition(userID, from, session.Stage)
	return Reply{Text: Prompt(session.Stage)}
}

// applyExpenses Шаг AwaitExpensesN; на последнем шаге - сохранение.
func (e *Engine) applyExpenses(ctx context.Context, lease SessionLease, userID int64, session Session, text string) Reply {
	amount, err := ParseAmount(text)
	if err != nil {
		reason := txtBadAmount
		switch {
		case errors.Is(err, ErrNegativeAmount):
			reason = txtNegative
		case errors.Is(err, ErrAmountOutOfRange):
			reason = txtOutOfRange
		}
		return Reply{Text: reason + "\n" + Prompt(session.Stage), Err: err}
	}

	from := session.Stage
	if from != AwaitExpenses3 {
		session.Buffer[from.Slot()].Amount = amount
		session.Stage = from.Next()
		lease.Save(session)
		e.logTransition(userID, from, session.Stage)
		return Reply{Text: Prompt(session.Stage)}
	}

	slots := session.Buffer
	slots[from.Slot()].Amount = amount
	return e.commit(ctx, lease, userID, slots)
}

// commit Сохранение всех категорий. При недоступности хранилища состояние не меняется.
func (e *Engine) commit(ctx context.Context, lease SessionLease, userID int64, slots [types.CategoriesCount]types.CategorySlot) Reply {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dialog.commit")
	defer span.Finish()

	err := e.store.CommitFinances(ctx, userID, slots)
	switch {
	case err == nil:
		CommitsTotal.WithLabelValues("committed").Inc()
	case errors.Is(err, types.ErrNotRegistered):
		CommitsTotal.WithLabelValues("not_registered").Inc()
		lease.Save(Session{})
		e.logTransition(userID, AwaitExpenses3, Idle)
		return Reply{Text: TxtRegisterFirst, Err: err}
	default:
		CommitsTotal.WithLabelValues("storage_unavailable").Inc()
		logger.Error("Ошибка сохранения расходов", "userID", userID, "err", err)
		return Reply{Text: TxtSaveFailed, Err: err}
	}

	lease.Save(Session{})
	e.logTransition(userID, AwaitExpenses3, Idle)
	e.publish(ctx, userID, slots)
	return Reply{Text: TxtSaved}
}

// publish Отправка события о сохранении; ошибка отправки на ответ пользователю не влияет.
func (e *Engine) publish(ctx context.Context, userID int64, slots [types.CategoriesCount]types.CategorySlot) {
	if e.publisher == nil {
		return
	}
	now := e.now().UTC()
	event := types.FinancesCommittedEvent{
		EventID:     uuid.NewString(),
		UserID:      userID,
		Categories:  slots,
		CommittedAt: now,
		Period:      timeutils.BeginOfMonth(now),
	}
	if err := e.publisher.PublishFinancesCommitted(ctx, event); err != nil {
		logger.Warn("Ошибка отправки события о сохранении расходов", "userID", userID, "err", err)
	}
}

func (e *Engine) logTransition(userID int64, from Stage, to Stage) {
	TransitionsTotal.WithLabelValues(from.String(), to.String()).Inc()
	logger.DebugZap("dialog transition",
		zap.Int64("userID", userID),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
}

