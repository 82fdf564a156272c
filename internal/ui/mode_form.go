package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/cairn/internal/domain"
)

// ModeFormResult contains the mode the user picked
type ModeFormResult struct {
	Cancelled bool
	Mode      string
}

// ModeForm is a Bubble Tea component for choosing the session length
type ModeForm struct {
	Completed bool
	form      *huh.Form
	result    ModeFormResult
}

// NewModeForm creates a mode chooser with current preselected
func NewModeForm(config domain.SessionConfig, current string) *ModeForm {
	mf := &ModeForm{
		result: ModeFormResult{Mode: current},
	}

	modes := config.Modes()
	options := make([]huh.Option[string], 0, len(modes))
	for _, m := range modes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  (%s)", m.Name, m.Label()), m.Name))
	}

	mf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session length").
				Description("The counter and the cairn are kept").
				Options(options...).
				Value(&mf.result.Mode),
		),
	)

	return mf
}

func (mf *ModeForm) Init() tea.Cmd {
	return mf.form.Init()
}

func (mf *ModeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			mf.result.Cancelled = true
			mf.Completed = true
			return mf, nil
		}
	}

	form, cmd := mf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		mf.form = f
	}

	if mf.form.State == huh.StateCompleted {
		mf.Completed = true
		return mf, nil
	}

	return mf, cmd
}

func (mf *ModeForm) View() string {
	if mf.form != nil {
		return mf.form.View()
	}
	return ""
}

// Result returns the form result
func (mf *ModeForm) Result() ModeFormResult {
	return mf.result
}
