// ABOUTME: Root bubbletea model for the studio TUI
// ABOUTME: Manages screen state and routes messages to child components

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/debuglog"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/mediaforge/mediaforge-cli/internal/tui/history"
	"github.com/mediaforge/mediaforge-cli/internal/tui/icons"
	"github.com/mediaforge/mediaforge-cli/internal/tui/loginform"
	"github.com/mediaforge/mediaforge-cli/internal/tui/menu"
	"github.com/mediaforge/mediaforge-cli/internal/tui/styles"
	"github.com/mediaforge/mediaforge-cli/internal/tui/widgets"
	"github.com/mediaforge/mediaforge-cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenMenu
	ScreenWizard
	ScreenWorking
	ScreenResult
	ScreenHistory
	ScreenAccount
)

// Layout constants
const (
	minTerminalWidth = 80
	pollInterval     = 3 * time.Second
	historyPageSize  = 50
)

// sessionResumedMsg is sent after the startup token check
type sessionResumedMsg struct {
	ok  bool
	err error
}

// authDoneMsg is sent when a login or registration attempt finishes
type authDoneMsg struct {
	err error
}

// generationDoneMsg is sent when the backend answers a generation request
type generationDoneMsg struct {
	gen *api.Generation
	err error
}

// statusRefreshedMsg is sent when a status poll completes
type statusRefreshedMsg struct {
	gen *api.Generation
	err error
}

// pollTickMsg triggers the next status poll for a pending result
type pollTickMsg struct {
	id string
}

// historyLoadedMsg is sent when the account history fetch completes
type historyLoadedMsg struct {
	records []api.Generation
	err     error
}

// statsLoadedMsg is sent when the usage stats fetch completes
type statsLoadedMsg struct {
	stats *api.UsageStats
	err   error
}

// App is the root model for the TUI
type App struct {
	ctrl       *studio.Controller
	screen     Screen
	width      int
	height     int
	err        error
	result     *api.Generation
	stats      *api.UsageStats
	spin       spinner.Model
	working    string
	lastUpdate time.Time

	// Child models
	login  *loginform.Form
	menu   *menu.Menu
	wiz    *wizard.Wizard
	histVw *history.History
}

// New creates a new TUI application
func New(ctrl *studio.Controller) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		ctrl:    ctrl,
		screen:  ScreenWorking,
		working: "Checking session...",
		spin:    sp,
		menu:    menu.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.resumeSession())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.histVw != nil {
			a.histVw.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.menu != nil {
			a.menu.Update(msg)
		}
		if a.screen == ScreenLogin || a.screen == ScreenWizard {
			return a.forwardToActiveChild(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case sessionResumedMsg:
		return a.handleSessionResumed(msg)

	case loginform.SubmitMsg:
		return a.handleLoginSubmit(msg)

	case loginform.CancelledMsg:
		return a, tea.Quit

	case authDoneMsg:
		return a.handleAuthDone(msg)

	case menu.ActionSelectedMsg:
		return a.handleMenuAction(msg)

	case wizard.CompleteMsg:
		debuglog.Log("wizard complete: type=%s", msg.Type)
		a.wiz = nil
		a.screen = ScreenWorking
		a.working = "Generating..."
		return a, tea.Batch(a.spin.Tick, a.submitGeneration(msg))

	case wizard.CancelledMsg:
		a.wiz = nil
		a.screen = ScreenMenu
		return a, nil

	case generationDoneMsg:
		return a.handleGenerationDone(msg)

	case pollTickMsg:
		return a, a.refreshStatus(msg.id)

	case statusRefreshedMsg:
		return a.handleStatusRefreshed(msg)

	case history.SelectedMsg:
		selected := msg.Generation
		a.result = &selected
		a.screen = ScreenResult
		return a, nil

	case history.BackMsg:
		a.histVw = nil
		a.screen = ScreenMenu
		return a, nil

	case historyLoadedMsg:
		return a.handleHistoryLoaded(msg)

	case statsLoadedMsg:
		return a.handleStatsLoaded(msg)

	default:
		// huh forms need non-key messages too
		return a.forwardToActiveChild(msg)
	}
}

// routeKey dispatches a key press to the active screen
func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin, ScreenWizard:
		return a.forwardToActiveChild(msg)

	case ScreenMenu:
		if a.menu == nil {
			return a, nil
		}
		model, cmd := a.menu.Update(msg)
		a.menu = model.(*menu.Menu)
		return a, cmd

	case ScreenHistory:
		if a.histVw == nil {
			return a, nil
		}
		model, cmd := a.histVw.Update(msg)
		a.histVw = model.(*history.History)
		return a, cmd

	case ScreenResult:
		return a.updateResult(msg)

	case ScreenAccount:
		return a.updateAccount(msg)

	case ScreenWorking:
		if msg.String() == "q" {
			return a, tea.Quit
		}
	}
	return a, nil
}

// forwardToActiveChild passes a message to the login form or wizard
func (a *App) forwardToActiveChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.login == nil {
			return a, nil
		}
		model, cmd := a.login.Update(msg)
		a.login = model.(*loginform.Form)
		return a, cmd

	case ScreenWizard:
		if a.wiz == nil {
			return a, nil
		}
		model, cmd := a.wiz.Update(msg)
		a.wiz = model.(*wizard.Wizard)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "m", "esc":
		a.screen = ScreenMenu
		a.err = nil
		return a, nil
	case "r":
		if a.result != nil && !a.result.Terminal() {
			return a, a.refreshStatus(a.result.ID)
		}
	}
	return a, nil
}

func (a *App) updateAccount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		a.screen = ScreenMenu
		a.err = nil
		return a, nil
	case "l":
		a.ctrl.Logout()
		a.stats = nil
		return a.toLogin("")
	}
	return a, nil
}

func (a *App) handleSessionResumed(msg sessionResumedMsg) (tea.Model, tea.Cmd) {
	if msg.ok {
		debuglog.Log("session resumed for %s", a.userEmail())
		a.lastUpdate = time.Now()
		a.screen = ScreenMenu
		return a, nil
	}
	if msg.err != nil {
		debuglog.Error("session resume", msg.err)
	}
	return a.toLogin("")
}

func (a *App) handleLoginSubmit(msg loginform.SubmitMsg) (tea.Model, tea.Cmd) {
	a.screen = ScreenWorking
	if msg.Mode == loginform.ModeRegister {
		a.working = "Creating account..."
	} else {
		a.working = "Signing in..."
	}
	return a, tea.Batch(a.spin.Tick, a.authenticate(msg))
}

func (a *App) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("auth", msg.err)
		return a.toLogin(api.ErrorMessage(msg.err, "Authentication failed"))
	}
	a.lastUpdate = time.Now()
	a.screen = ScreenMenu
	return a, nil
}

func (a *App) handleMenuAction(msg menu.ActionSelectedMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case menu.ActionQuit:
		return a, tea.Quit

	case menu.ActionHistory:
		a.screen = ScreenWorking
		a.working = "Loading history..."
		return a, tea.Batch(a.spin.Tick, a.loadHistory())

	case menu.ActionAccount:
		a.screen = ScreenAccount
		return a, a.loadStats()

	default:
		a.wiz = wizard.New(generationType(msg.Action))
		a.screen = ScreenWizard
		return a, a.wiz.Init()
	}
}

func (a *App) handleGenerationDone(msg generationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("generation", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return a.toLogin("Session expired, please sign in again")
		}
		a.err = msg.err
		a.screen = ScreenMenu
		return a, nil
	}

	a.err = nil
	a.result = msg.gen
	a.lastUpdate = time.Now()
	a.screen = ScreenResult
	if !msg.gen.Terminal() {
		return a, a.schedulePoll(msg.gen.ID)
	}
	return a, nil
}

func (a *App) handleStatusRefreshed(msg statusRefreshedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("status poll", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return a.toLogin("Session expired, please sign in again")
		}
		// Keep showing the last known state; polling stops on error
		a.err = msg.err
		return a, nil
	}

	a.result = msg.gen
	a.lastUpdate = time.Now()
	if a.screen == ScreenResult && !msg.gen.Terminal() {
		return a, a.schedulePoll(msg.gen.ID)
	}
	return a, nil
}

func (a *App) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("history", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return a.toLogin("Session expired, please sign in again")
		}
		a.err = msg.err
		a.screen = ScreenMenu
		return a, nil
	}

	a.err = nil
	a.histVw = history.New(msg.records, a.contentWidth(), a.contentHeight())
	a.lastUpdate = time.Now()
	a.screen = ScreenHistory
	return a, nil
}

func (a *App) handleStatsLoaded(msg statsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("stats", msg.err)
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return a.toLogin("Session expired, please sign in again")
		}
		// Account screen renders without stats
		return a, nil
	}
	a.stats = msg.stats
	return a, nil
}

// toLogin switches to the login screen, optionally with an error banner
func (a *App) toLogin(errMsg string) (tea.Model, tea.Cmd) {
	a.login = loginform.New(loginform.ModeLogin)
	if errMsg != "" {
		a.login.SetError(errMsg)
	}
	a.screen = ScreenLogin
	a.err = nil
	return a, a.login.Init()
}

// generationType maps a menu action to a backend generation type
func generationType(action menu.Action) string {
	switch action {
	case menu.ActionBanner:
		return api.TypeBanner
	case menu.ActionLogo:
		return api.TypeLogo
	case menu.ActionRemoveBackground:
		return api.TypeBackgroundRemoval
	case menu.ActionVideo:
		return api.TypeVideo
	case menu.ActionPresenter:
		return api.TypePresenterVideo
	case menu.ActionVoiceover:
		return api.TypeVoiceover
	default:
		return api.TypeImage
	}
}

// Commands

func (a *App) resumeSession() tea.Cmd {
	return func() tea.Msg {
		ok, err := a.ctrl.Session().Resume(context.Background())
		return sessionResumedMsg{ok: ok, err: err}
	}
}

func (a *App) authenticate(msg loginform.SubmitMsg) tea.Cmd {
	return func() tea.Msg {
		var err error
		if msg.Mode == loginform.ModeRegister {
			err = a.ctrl.Session().Register(context.Background(), msg.Email, msg.Password, msg.FullName)
		} else {
			err = a.ctrl.Session().Login(context.Background(), msg.Email, msg.Password)
		}
		return authDoneMsg{err: err}
	}
}

func (a *App) submitGeneration(msg wizard.CompleteMsg) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var gen *api.Generation
		var err error

		switch req := msg.Request.(type) {
		case *api.ImageRequest:
			gen, err = a.ctrl.Image(ctx, req)
		case *api.BannerRequest:
			gen, err = a.ctrl.Banner(ctx, req)
		case *api.LogoRequest:
			gen, err = a.ctrl.Logo(ctx, req)
		case *api.RemoveBackgroundRequest:
			gen, err = a.ctrl.RemoveBackground(ctx, req)
		case *api.VideoRequest:
			gen, err = a.ctrl.Video(ctx, req)
		case *api.PresenterRequest:
			gen, err = a.ctrl.Presenter(ctx, req)
		case *api.VoiceoverRequest:
			gen, err = a.ctrl.Voiceover(ctx, req)
		default:
			err = fmt.Errorf("unsupported generation type %q", msg.Type)
		}

		return generationDoneMsg{gen: gen, err: err}
	}
}

func (a *App) refreshStatus(id string) tea.Cmd {
	return func() tea.Msg {
		gen, err := a.ctrl.RefreshStatus(context.Background(), id)
		return statusRefreshedMsg{gen: gen, err: err}
	}
}

func (a *App) schedulePoll(id string) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{id: id}
	})
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		page, err := a.ctrl.API().UserHistory(context.Background(), historyPageSize, 0)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{records: page.Items}
	}
}

func (a *App) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := a.ctrl.API().GetStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenMenu:
		content = a.viewMenu()
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenWorking:
		content = a.viewWorking()
	case ScreenResult:
		content = a.viewResult()
	case ScreenHistory:
		content = a.viewHistory()
	case ScreenAccount:
		content = a.viewAccount()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLogin() string {
	if a.login != nil {
		return a.login.View()
	}
	return ""
}

func (a *App) viewMenu() string {
	content := ""
	if a.err != nil {
		content = styles.StatusCritical.Render("Error: "+api.ErrorMessage(a.err, a.err.Error())) + "\n\n"
	}
	if a.menu != nil {
		content += a.menu.View()
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(content)
}

func (a *App) viewWizard() string {
	if a.wiz != nil {
		return a.wiz.View()
	}
	return ""
}

func (a *App) viewWorking() string {
	return styles.Panel.Width(a.contentWidth()).Render(a.spin.View() + " " + a.working)
}

func (a *App) viewResult() string {
	if a.result == nil {
		return ""
	}
	g := a.result

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Generation " + g.ID))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%-10s %s\n", "Type", g.Type))
	sb.WriteString(fmt.Sprintf("%-10s %s\n", "Status", widgets.GenerationBadge(g.Status)))
	sb.WriteString(fmt.Sprintf("%-10s %d\n", "Credits", g.CreditsUsed))
	if g.Prompt != "" {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", "Prompt", g.Prompt))
	}
	if g.OutputURL != "" {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", "Output", styles.ValueStyle.Render(g.OutputURL)))
	}
	if g.ThumbnailURL != "" {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", "Thumbnail", g.ThumbnailURL))
	}
	if g.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", "Error", styles.StatusCritical.Render(g.ErrorMessage)))
	}

	if !g.Terminal() {
		sb.WriteString("\n")
		sb.WriteString(a.spin.View() + " " + styles.Subtitle.Render("Waiting for completion..."))
	}

	if a.err != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(api.ErrorMessage(a.err, a.err.Error())))
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

func (a *App) viewHistory() string {
	if a.histVw != nil {
		return a.histVw.View()
	}
	return ""
}

func (a *App) viewAccount() string {
	user := a.ctrl.Session().User()
	if user == nil {
		return styles.Subtitle.Render("Not signed in.")
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Account.String() + " Account"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "Email", user.Email))
	if user.FullName != "" {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", "Name", user.FullName))
	}
	if user.Company != "" {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", "Company", user.Company))
	}
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "Role", user.Role))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s %d\n", icons.Credits.String(), "Credits", user.Credits))
	total := user.Credits
	if a.stats != nil {
		total += a.stats.CreditsUsed
	}
	sb.WriteString(styles.CreditsBar(user.Credits, total, 40))
	sb.WriteString("\n")

	if a.stats != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Usage"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-18s %d\n", "Generations", a.stats.TotalGenerations))
		sb.WriteString(fmt.Sprintf("%-18s %d\n", "Credits spent", a.stats.CreditsUsed))
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

// userEmail returns the signed-in user's email for header display
func (a *App) userEmail() string {
	if user := a.ctrl.Session().User(); user != nil {
		return user.Email
	}
	return ""
}

func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - 4
}

func (a *App) contentHeight() int {
	// Header, footer, panel borders and padding
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("MediaForge Studio"))

	rightText := ""
	if email := a.userEmail(); email != "" && a.screen != ScreenLogin {
		credits := 0
		if user := a.ctrl.Session().User(); user != nil {
			credits = user.Credits
		}
		rightText = contextStyle.Render(fmt.Sprintf("%s %s %d", email, icons.Credits.String(), credits)) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Tab Next", "Enter Submit", "ctrl+t Mode", "Esc Quit"}
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenWorking:
		shortcuts = []string{"q Quit"}
	case ScreenResult:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	case ScreenHistory:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "b Back"}
	case ScreenAccount:
		shortcuts = []string{"l Logout", "b Back", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}

	leftText := " " + strings.Join(styled, "  ")
	leftPlain := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlain := ""
	if !a.lastUpdate.IsZero() && a.screen != ScreenLogin && a.screen != ScreenWizard {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlain = "Updated " + elapsed + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlain) - lipgloss.Width(rightPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(ctrl *studio.Controller) error {
	app := New(ctrl)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
