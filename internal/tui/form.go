package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio/contactform/internal/contact"
)

// Message types for async operations
type dispatchResultMsg struct {
	outcome contact.Outcome
}

type resetMsg struct {
	reset *contact.Reset
}

// focusButton is the focus index of the submit button; 0-3 are the fields.
const focusButton = len(contact.AllFields)

// FormModel is the contact form screen. It is the only owner of its
// controller; every controller call happens inside Update.
type FormModel struct {
	ctrl *contact.Controller

	// inputs holds name, email and subject; message uses the textarea
	inputs  [3]textinput.Model
	message textarea.Model
	focus   int

	Spinner spinner.Model
	Help    help.Model
	keys    formKeyMap

	Width  int
	Height int

	// LastRefusal is the reason the last submit did not start a dispatch
	LastRefusal error
}

// NewFormModel creates the form around ctrl.
func NewFormModel(ctrl *contact.Controller) FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := FormModel{
		ctrl:    ctrl,
		Spinner: s,
		Help:    help.New(),
		keys:    newFormKeyMap(),
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = inputWidth(0)
		m.inputs[i] = in
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 5000
	ta.SetWidth(inputWidth(0))
	ta.SetHeight(MessageHeight)
	m.message = ta

	m.inputs[contact.FieldName].Focus()
	ctrl.Focus(contact.FieldName)
	m.applyView()
	return m
}

// Controller exposes the controller for the host (tests, shutdown).
func (m FormModel) Controller() *contact.Controller {
	return m.ctrl
}

// Focused returns the focus index: a contact.Field, or the button.
func (m FormModel) Focused() int {
	return m.focus
}

// Init starts the cursor blink
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			cmd = m.setFocus((m.focus + 1) % (focusButton + 1))

		case key.Matches(msg, m.keys.Prev):
			cmd = m.setFocus((m.focus + focusButton) % (focusButton + 1))

		case key.Matches(msg, m.keys.Submit):
			m.setFocus(focusButton)
			cmd = m.submit()

		case key.Matches(msg, m.keys.Press) && m.focus == focusButton:
			cmd = m.submit()

		case key.Matches(msg, m.keys.Press) && m.focus < int(contact.FieldMessage):
			cmd = m.setFocus(m.focus + 1)

		default:
			cmd = m.updateFocusedInput(msg)
		}

	case dispatchResultMsg:
		if reset := m.ctrl.Complete(msg.outcome); reset != nil {
			cmd = resetAfter(reset)
		}
		m.syncInputs()

	case resetMsg:
		m.ctrl.Expire(msg.reset)

	case spinner.TickMsg:
		if m.ctrl.Status() == contact.StatusSending {
			m.Spinner, cmd = m.Spinner.Update(msg)
		}

	default:
		cmd = m.updateFocusedInput(msg)
	}

	m.applyView()
	return m, cmd
}

// submit hands the current fields to the controller and, when it starts an
// attempt, runs the dispatch off the event loop.
func (m *FormModel) submit() tea.Cmd {
	attempt, err := m.ctrl.Submit()
	m.LastRefusal = err
	m.syncInputs()
	if err != nil {
		return nil
	}
	return tea.Batch(dispatch(attempt), m.Spinner.Tick)
}

func dispatch(attempt *contact.Attempt) tea.Cmd {
	return func() tea.Msg {
		return dispatchResultMsg{outcome: attempt.Run(context.Background())}
	}
}

func resetAfter(reset *contact.Reset) tea.Cmd {
	return tea.Tick(reset.Delay, func(time.Time) tea.Msg {
		return resetMsg{reset: reset}
	})
}

// setFocus moves focus and clears the error flag of a newly focused field.
func (m *FormModel) setFocus(target int) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
	m.focus = target

	if target == focusButton {
		return nil
	}

	field := contact.Field(target)
	m.ctrl.Focus(field)
	if field == contact.FieldMessage {
		return m.message.Focus()
	}
	return m.inputs[field].Focus()
}

// updateFocusedInput forwards a message to the focused input and stores the
// resulting value in the controller.
func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case m.focus == int(contact.FieldMessage):
		m.message, cmd = m.message.Update(msg)
		m.ctrl.SetField(contact.FieldMessage, m.message.Value())
	case m.focus < len(m.inputs):
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.ctrl.SetField(contact.Field(m.focus), m.inputs[m.focus].Value())
	}

	return cmd
}

// syncInputs copies controller values back into the widgets after the
// controller cleared some of them.
func (m *FormModel) syncInputs() {
	fields := m.ctrl.Fields()
	for i := range m.inputs {
		if v := fields.Get(contact.Field(i)); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
	if v := fields.Message; m.message.Value() != v {
		m.message.SetValue(v)
	}
}

// applyView pushes the derived placeholders into the widgets.
func (m *FormModel) applyView() {
	view := m.ctrl.View()

	for i := range m.inputs {
		fv := view.Field(contact.Field(i))
		m.inputs[i].Placeholder = fv.Placeholder
		m.inputs[i].PlaceholderStyle = placeholderStyle(fv.Errored)
	}

	fv := view.Field(contact.FieldMessage)
	m.message.Placeholder = fv.Placeholder
	m.message.FocusedStyle.Placeholder = placeholderStyle(fv.Errored)
	m.message.BlurredStyle.Placeholder = placeholderStyle(fv.Errored)
}

func (m *FormModel) resize() {
	w := inputWidth(m.Width)
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
	m.message.SetWidth(w)
}

// View renders the form
func (m FormModel) View() string {
	view := m.ctrl.View()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Send a Message"))
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(m.renderBox(view.Field(contact.Field(i)), m.inputs[i].View()))
		b.WriteString("\n")
	}
	b.WriteString(m.renderBox(view.Field(contact.FieldMessage), m.message.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderButton(view))

	return RenderApplicationContainer(b.String(), m.Help.View(m.keys), m.Width, m.Height)
}

func (m FormModel) renderBox(fv contact.FieldView, body string) string {
	style := InputStyle
	switch {
	case fv.Errored:
		style = ErrorInputStyle
	case m.focus == int(fv.Field):
		style = FocusedInputStyle
	}
	return style.Render(body)
}

func (m FormModel) renderButton(view contact.ViewState) string {
	label := view.Label
	if view.Status == contact.StatusSending {
		label = m.Spinner.View() + " " + label
	}

	switch {
	case view.Disabled:
		return DisabledButtonStyle.Render(label)
	case m.focus == focusButton:
		return FocusedButtonStyle.Render("› " + label)
	default:
		return ButtonStyle.Render(label)
	}
}

func placeholderStyle(errored bool) lipgloss.Style {
	if errored {
		return ErrorPlaceholderStyle
	}
	return PlaceholderStyle
}
