// Package cli implements the interactive terminal surface of the HisabKitab
// main app: a REPL over the typed backend services, gated by the session
// store and reporting outcomes through the notification bus.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/hisabkitab/cli/internal/client/api"
	"github.com/hisabkitab/cli/internal/client/config"
	"github.com/hisabkitab/cli/internal/client/guard"
	"github.com/hisabkitab/cli/internal/client/localdb"
	"github.com/hisabkitab/cli/internal/client/notify"
	"github.com/hisabkitab/cli/internal/client/services"
	"github.com/hisabkitab/cli/internal/client/session"
	"github.com/hisabkitab/cli/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	bus      *notify.Bus
	sessions *session.Store
	access   *guard.Guard

	expenses   *services.ExpenseService
	budgets    *services.BudgetService
	goals      *services.GoalService
	categories *services.CategoryService
	analytics  *services.AnalyticsService
	ai         *services.AIService
	dashboard  *services.DashboardService

	reader *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, cfg.CredentialDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing credential store: %w", err)
	}

	gateway := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	sessions := session.NewStore(services.NewAuthService(gateway), gateway, db, log)

	expenses := services.NewExpenseService(gateway)
	analytics := services.NewAnalyticsService(gateway)
	ai := services.NewAIService(gateway)

	return &App{
		config:     cfg,
		log:        log,
		db:         db,
		bus:        notify.NewBus(clockwork.NewRealClock()),
		sessions:   sessions,
		access:     guard.New(sessions),
		expenses:   expenses,
		budgets:    services.NewBudgetService(gateway),
		goals:      services.NewGoalService(gateway),
		categories: services.NewCategoryService(gateway),
		analytics:  analytics,
		ai:         ai,
		dashboard:  services.NewDashboardService(analytics, expenses, ai),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session from the stored credential and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Println("Welcome to HisabKitab (type 'help' for commands)")

	fmt.Println("Restoring session...")
	a.sessions.Initialize(ctx)
	if user := a.sessions.Current(); user != nil {
		fmt.Printf("Logged in as %s\n", user.Email)
	} else {
		fmt.Println("Not logged in. Use 'login' or 'register'.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.access.Evaluate, a.status, scanner)
}

// status renders the prompt suffix, e.g. "(alice@example.org)".
func (a *App) status() string {
	if user := a.sessions.Current(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

// flushNotifications prints and clears pending notifications. Called by the
// REPL after every command so outcomes reported through the bus reach the
// terminal in publish order.
func (a *App) flushNotifications() {
	for _, n := range a.bus.Drain() {
		printlnFn(fmt.Sprintf("[%s] %s", n.Severity, n.Message))
	}
}

// reportErr publishes err's backend detail (or fallback) as an error
// notification.
func (a *App) reportErr(err error, fallback string) {
	a.bus.Error(api.Detail(err, fallback))
}
