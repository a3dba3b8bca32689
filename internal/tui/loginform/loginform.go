// ABOUTME: Sign-in and registration form as a bubbletea child model
// ABOUTME: Wraps huh forms and emits a SubmitMsg with the entered credentials

package loginform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mediaforge/mediaforge-cli/internal/tui/styles"
)

// Mode selects between signing in and creating an account
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

const minPasswordLength = 8

// SubmitMsg is sent when the form is completed
type SubmitMsg struct {
	Mode     Mode
	Email    string
	Password string
	FullName string
}

// CancelledMsg is sent when the user backs out
type CancelledMsg struct{}

// Form collects credentials for login or registration
type Form struct {
	mode     Mode
	form     *huh.Form
	email    string
	password string
	fullName string
	errMsg   string
	width    int
}

// New creates a credentials form in the given mode
func New(mode Mode) *Form {
	f := &Form{mode: mode}
	f.form = f.buildForm()
	return f
}

// Mode returns the form's current mode
func (f *Form) Mode() Mode {
	return f.mode
}

// SetError displays an error message under the form, used for
// backend rejections after submit
func (f *Form) SetError(msg string) {
	f.errMsg = msg
	// Rebuild so the form accepts input again after a failed submit
	f.form = f.buildForm()
}

func (f *Form) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&f.email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.password).
			Validate(f.validatePassword),
	}

	title := "Sign in"
	if f.mode == ModeRegister {
		title = "Create account"
		fields = append(fields, huh.NewInput().
			Title("Full name").
			Placeholder("Ada Lovelace").
			Value(&f.fullName).
			Validate(validateRequired("full name")))
	}

	return huh.NewForm(
		huh.NewGroup(fields...).Title(title),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+t":
			// Toggle between sign in and registration
			if f.mode == ModeLogin {
				f.mode = ModeRegister
			} else {
				f.mode = ModeLogin
			}
			f.errMsg = ""
			f.form = f.buildForm()
			return f, f.form.Init()
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		submit := SubmitMsg{
			Mode:     f.mode,
			Email:    strings.TrimSpace(f.email),
			Password: f.password,
			FullName: strings.TrimSpace(f.fullName),
		}
		return f, func() tea.Msg { return submit }
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	sb.WriteString(f.form.View())

	if f.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(f.errMsg))
	}

	sb.WriteString("\n")
	hint := "ctrl+t switch to registration"
	if f.mode == ModeRegister {
		hint = "ctrl+t switch to sign in"
	}
	sb.WriteString(styles.Help.Render(hint))

	return sb.String()
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}

func (f *Form) validatePassword(s string) error {
	if s == "" {
		return fmt.Errorf("password is required")
	}
	if f.mode == ModeRegister && len(s) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
