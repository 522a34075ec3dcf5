package messages

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/navigation"
	"max.ks1230/expense-tracker/internal/model/rates"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/view"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	notHereMessage        = "That is not available on this screen. /dashboard takes you home."
	incorrectUsageMessage = "That is an incorrect command usage"
	notFoundMessage       = "No such expense"
	okMessage             = "Gotcha!"

	helpMessage = "/dashboard home · /expense add · /list expenses · /analytics charts\n" +
		"/edit <id> · /delete <id> · /category <name> · /categories · /delcategory <name>\n" +
		"/convert <amount> <currency> · /prev /next month · /back"
)

const (
	startCommand          = "/start"
	helpCommand           = "/help"
	continueCommand       = "/continue"
	skipCommand           = "/skip"
	backCommand           = "/back"
	dashboardCommand      = "/dashboard"
	homeCommand           = "/home"
	prevCommand           = "/prev"
	nextCommand           = "/next"
	expenseCommand        = "/expense"
	listCommand           = "/list"
	editCommand           = "/edit"
	deleteCommand         = "/delete"
	categoryCommand       = "/category"
	categoriesCommand     = "/categories"
	deleteCategoryCommand = "/delcategory"
	analyticsCommand      = "/analytics"
	convertCommand        = "/convert"
)

// MenuItem is a command advertised in the chat client's menu.
type MenuItem struct {
	Command     string
	Description string
}

// Menu lists the commands worth advertising, without their slash.
var Menu = []MenuItem{
	{"dashboard", "Today, this month and the calendar"},
	{"expense", "Add an expense"},
	{"list", "All expenses, optionally sorted"},
	{"analytics", "Monthly charts by category and week"},
	{"category", "Create a category"},
	{"categories", "List categories"},
	{"convert", "Convert an amount to the home currency"},
	{"help", "Every command"},
}

type expensesService interface {
	AddExpense(ctx context.Context, d expenses.Draft) (expense.Record, error)
	ModifyExpense(ctx context.Context, rec expense.Record) (expense.Record, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetExpense(ctx context.Context, id int64) (expense.Record, error)
	Expenses(ctx context.Context, opt expense.SortOption) ([]expense.Record, error)

	CreateCategory(ctx context.Context, name string) (category.Record, error)
	DeleteCategory(ctx context.Context, name string) error
	Categories(ctx context.Context) ([]category.Record, error)

	Onboarded(ctx context.Context) (bool, error)
	CompleteOnboarding(ctx context.Context) error
}

type reportGenerator interface {
	Dashboard(ctx context.Context, asOf time.Time, p reports.Period) (*reports.Dashboard, error)
	Analytics(ctx context.Context, p reports.Period, categories []string) (*reports.Analytics, error)
}

type converter interface {
	Convert(ctx context.Context, raw, code, accessKey string) rates.Result
}

type handler func(ctx context.Context, sess *navigation.Session, arg string) (string, error)

type handlerMap map[string]handler

// HandlerService keeps one navigation session per chat user and answers each
// command with the freshly recomputed screen.
type HandlerService struct {
	handlersMap handlerMap
	expenses    expensesService
	reports     reportGenerator
	converter   converter
	renderer    *view.Renderer
	now         func() time.Time

	mu       sync.Mutex
	sessions map[int64]*navigation.Session
}

func NewHandler(expenses expensesService, reports reportGenerator, converter converter, renderer *view.Renderer) *HandlerService {
	res := &HandlerService{
		expenses:  expenses,
		reports:   reports,
		converter: converter,
		renderer:  renderer,
		now:       time.Now,
		sessions:  make(map[int64]*navigation.Session),
	}
	res.handlersMap = newMap(res)
	return res
}

// WithClock replaces the time source for "today".
func (s *HandlerService) WithClock(now func() time.Time) *HandlerService {
	s.now = now
	return s
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[continueCommand] = s.event(navigation.Continue{})
	m[skipCommand] = s.event(navigation.Skip{})
	m[backCommand] = s.event(navigation.Back{})
	m[dashboardCommand] = s.event(navigation.Home{})
	m[homeCommand] = s.event(navigation.Home{})
	m[prevCommand] = s.event(navigation.PrevMonth{})
	m[nextCommand] = s.event(navigation.NextMonth{})
	m[analyticsCommand] = s.screen(navigation.Analytics{}, navigation.OpenAnalytics{})
	m[expenseCommand] = s.handleExpense
	m[listCommand] = s.handleList
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[categoryCommand] = s.handleCategory
	m[categoriesCommand] = s.handleCategories
	m[deleteCategoryCommand] = s.handleDeleteCategory
	m[convertCommand] = s.handleConvert

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, arg := parseCommand(text)
	handler, ok := s.handlersMap[cmd]
	countCommand(cmd, ok)
	if !ok {
		return dontUnderstandMessage + "\n" + helpMessage, nil
	}

	sess, err := s.session(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "handle message")
	}
	return handler(ctx, sess, arg)
}

func (s *HandlerService) session(ctx context.Context, userID int64) (*navigation.Session, error) {
	if sess, ok := s.sessions[userID]; ok {
		return sess, nil
	}
	onboarded, err := s.expenses.Onboarded(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.expenses.Categories(ctx)
	if err != nil {
		return nil, err
	}
	sess := navigation.NewSession(onboarded, cats, s.now())
	s.sessions[userID] = sess
	logger.Info("new session", zap.Int64("userID", userID), zap.Bool("onboarded", onboarded))
	return sess, nil
}

// apply moves the session and persists the first-run flag when the
// dashboard is reached for the first time.
func (s *HandlerService) apply(ctx context.Context, sess *navigation.Session, e navigation.Event) error {
	step, err := sess.Apply(e)
	if err != nil {
		return err
	}
	logger.Debug("navigate", zap.String("from", step.From.Name()), zap.String("to", step.To.Name()))
	if step.OnboardingDone {
		return s.expenses.CompleteOnboarding(ctx)
	}
	return nil
}

// open moves to target unless the session is already there. Screens not
// directly reachable are entered through the dashboard, except while
// onboarding.
func (s *HandlerService) open(ctx context.Context, sess *navigation.Session, target navigation.Screen, e navigation.Event) error {
	if sess.Screen.Name() == target.Name() {
		return nil
	}
	err := s.apply(ctx, sess, e)
	if !errors.Is(err, navigation.ErrInvalidTransition) || sess.InOnboarding() {
		return err
	}
	if err = s.apply(ctx, sess, navigation.Home{}); err != nil {
		return err
	}
	return s.apply(ctx, sess, e)
}

func (s *HandlerService) event(e navigation.Event) handler {
	return func(ctx context.Context, sess *navigation.Session, _ string) (string, error) {
		if err := s.apply(ctx, sess, e); err != nil {
			if errors.Is(err, navigation.ErrInvalidTransition) {
				return notHereMessage, nil
			}
			return "", err
		}
		return s.render(ctx, sess)
	}
}

func (s *HandlerService) screen(target navigation.Screen, e navigation.Event) handler {
	return func(ctx context.Context, sess *navigation.Session, _ string) (string, error) {
		if err := s.open(ctx, sess, target, e); err != nil {
			if errors.Is(err, navigation.ErrInvalidTransition) {
				return notHereMessage, nil
			}
			return "", err
		}
		return s.render(ctx, sess)
	}
}

// render recomputes the current screen from the store.
func (s *HandlerService) render(ctx context.Context, sess *navigation.Session) (string, error) {
	switch scr := sess.Screen.(type) {
	case navigation.NewUser:
		return view.WelcomeText, nil
	case navigation.NewUser2:
		return view.TourText, nil
	case navigation.Dashboard:
		dash, err := s.reports.Dashboard(ctx, s.now(), sess.CalendarPeriod)
		if err != nil {
			return "", errors.Wrap(err, "render dashboard")
		}
		return s.renderer.Dashboard(dash, sess.Categories), nil
	case navigation.AddExpense:
		return s.renderer.AddExpenseHelp(sess.CategoryNames()), nil
	case navigation.AllExpenses:
		list, err := s.expenses.Expenses(ctx, sess.Sort)
		if err != nil {
			return "", errors.Wrap(err, "render expenses")
		}
		return s.renderer.Expenses(list, sess.Categories, sess.Sort) + "\n" + view.SortHelp(), nil
	case navigation.Analytics:
		an, err := s.reports.Analytics(ctx, sess.AnalyticsPeriod, sess.CategoryNames())
		if err != nil {
			return "", errors.Wrap(err, "render analytics")
		}
		return s.renderer.Analytics(an), nil
	case navigation.CreateCategory:
		return s.renderer.CreateCategoryHelp(), nil
	case navigation.ModifyExpense:
		return s.renderer.Expense(scr.Expense, sess.Categories) + "\n" + s.renderer.EditHelp(scr.Expense), nil
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) refreshCategories(ctx context.Context, sess *navigation.Session) error {
	cats, err := s.expenses.Categories(ctx)
	if err != nil {
		return err
	}
	sess.Categories = cats
	return nil
}

func (s *HandlerService) handleStart(ctx context.Context, sess *navigation.Session, _ string) (string, error) {
	return s.render(ctx, sess)
}

func (s *HandlerService) handleHelp(_ context.Context, _ *navigation.Session, _ string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleExpense(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	if err := s.open(ctx, sess, navigation.AddExpense{}, navigation.OpenAddExpense{}); err != nil {
		return notHereMessage, nil
	}
	if arg == "" {
		return s.render(ctx, sess)
	}

	draft, err := parseDraft(arg, sess.CategoryNames())
	if err != nil {
		return incorrectUsageMessage + "\n" + s.renderer.AddExpenseHelp(sess.CategoryNames()), nil
	}

	rec, err := s.expenses.AddExpense(ctx, draft)
	if msg, ok := userError(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle expense")
	}

	if err = s.apply(ctx, sess, navigation.Saved{}); err != nil {
		return "", err
	}
	screen, err := s.render(ctx, sess)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Saved #%d\n\n%s", okMessage, rec.ID, screen), nil
}

func (s *HandlerService) handleList(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	if err := s.open(ctx, sess, navigation.AllExpenses{}, navigation.OpenAllExpenses{}); err != nil {
		return notHereMessage, nil
	}
	if arg != "" {
		opt := expense.SortOption(strings.ToLower(arg))
		if !isSortOption(opt) {
			return view.SortHelp(), nil
		}
		if err := s.apply(ctx, sess, navigation.SortBy{Option: opt}); err != nil {
			return "", err
		}
	}
	return s.render(ctx, sess)
}

func (s *HandlerService) handleEdit(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	id, rest, err := parseID(arg)
	if err != nil {
		return incorrectUsageMessage, nil
	}

	rec, err := s.expenses.GetExpense(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle edit")
	}

	if cur, ok := sess.Screen.(navigation.ModifyExpense); !ok || cur.Expense.ID != id {
		if _, onModify := sess.Screen.(navigation.ModifyExpense); onModify {
			if err = s.apply(ctx, sess, navigation.Back{}); err != nil {
				return "", err
			}
		}
		if err = s.open(ctx, sess, navigation.ModifyExpense{Expense: rec}, navigation.Edit{Expense: rec}); err != nil {
			return notHereMessage, nil
		}
	}
	if rest == "" {
		return s.render(ctx, sess)
	}

	edited, err := applyEdit(rec, rest, sess.CategoryNames())
	if errors.Is(err, errUsage) {
		return incorrectUsageMessage, nil
	}
	if err == nil {
		_, err = s.expenses.ModifyExpense(ctx, edited)
	}
	if msg, ok := userError(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle edit")
	}

	if err = s.apply(ctx, sess, navigation.Saved{}); err != nil {
		return "", err
	}
	screen, err := s.render(ctx, sess)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Updated #%d\n\n%s", okMessage, id, screen), nil
}

func (s *HandlerService) handleDelete(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	id, _, err := parseID(arg)
	if err != nil {
		return incorrectUsageMessage, nil
	}
	err = s.expenses.DeleteExpense(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle delete")
	}

	if _, ok := sess.Screen.(navigation.ModifyExpense); ok {
		if err = s.apply(ctx, sess, navigation.Saved{}); err != nil {
			return "", err
		}
	}
	screen, err := s.render(ctx, sess)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted #%d\n\n%s", id, screen), nil
}

func (s *HandlerService) handleCategory(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	if err := s.open(ctx, sess, navigation.CreateCategory{}, navigation.OpenCreateCategory{}); err != nil {
		return notHereMessage, nil
	}
	if arg == "" {
		return s.render(ctx, sess)
	}

	rec, err := s.expenses.CreateCategory(ctx, arg)
	if msg, ok := userError(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle category")
	}
	if err = s.refreshCategories(ctx, sess); err != nil {
		return "", errors.Wrap(err, "handle category")
	}

	if err = s.apply(ctx, sess, navigation.Saved{}); err != nil {
		return "", err
	}
	screen, err := s.render(ctx, sess)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Category created: %s %s\n\n%s", rec.Icon, rec.Name, screen), nil
}

func (s *HandlerService) handleCategories(ctx context.Context, sess *navigation.Session, _ string) (string, error) {
	if err := s.refreshCategories(ctx, sess); err != nil {
		return "", errors.Wrap(err, "handle categories")
	}
	return s.renderer.Categories(sess.Categories), nil
}

func (s *HandlerService) handleDeleteCategory(ctx context.Context, sess *navigation.Session, arg string) (string, error) {
	if arg == "" {
		return incorrectUsageMessage, nil
	}
	err := s.expenses.DeleteCategory(ctx, arg)
	if msg, ok := userError(err); ok {
		return msg, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return "No such category", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle delete category")
	}
	if err = s.refreshCategories(ctx, sess); err != nil {
		return "", errors.Wrap(err, "handle delete category")
	}
	return "Category deleted\n\n" + s.renderer.Categories(sess.Categories), nil
}

func (s *HandlerService) handleConvert(ctx context.Context, _ *navigation.Session, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectUsageMessage + "\n/convert <amount> <currency>", nil
	}
	res := s.converter.Convert(ctx, args[0], args[1], "")
	if res.Status != rates.Succeeded {
		return res.Reason(), nil
	}
	msg := fmt.Sprintf("%s %s ≈ %s", args[0], strings.ToUpper(args[1]), view.Money(s.renderer.Home(), res.Float()))
	if res.FromCache {
		msg += " (offline, last known rates)"
	}
	return msg, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ *navigation.Session, _ string) (string, error) {
	return dontUnderstandMessage + "\n" + helpMessage, nil
}

// userError turns validation and conversion failures into the text shown
// next to the form. ok is false for anything unexpected.
func userError(err error) (string, bool) {
	var convErr *expenses.ConversionError
	switch {
	case err == nil:
		return "", false
	case errors.As(err, &convErr):
		return convErr.Error(), true
	case errors.Is(err, expenses.ErrInvalidAmount):
		return "Your expense amount is incorrect", true
	case errors.Is(err, expenses.ErrInvalidDate):
		return "The date is incorrect. Should be YYYY-MM-DD", true
	case errors.Is(err, expenses.ErrEmptyCategory):
		return "Category name cannot be empty", true
	case errors.Is(err, expenses.ErrDuplicateCategory):
		return "That category already exists", true
	case errors.Is(err, expenses.ErrCategoryInUse):
		return "That category is still used by expenses", true
	}
	return "", false
}

func isSortOption(opt expense.SortOption) bool {
	for _, o := range expense.SortOptions {
		if o == opt {
			return true
		}
	}
	return false
}
