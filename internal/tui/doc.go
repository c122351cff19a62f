// Package tui implements the terminal contact form.
//
// The form is a single Bubble Tea screen. Bubble Tea's Update loop is the
// event loop the contact.Controller expects: keystrokes, focus changes,
// dispatch results and the reset timer all arrive there as messages, one at
// a time.
//
// # Flow
//
//	keystroke ──▶ Controller.SetField
//	tab       ──▶ Controller.Focus (clears that field's error)
//	ctrl+s    ──▶ Controller.Submit ──▶ tea.Cmd running Attempt.Run
//	                                      │
//	dispatchResultMsg ◀───────────────────┘
//	  └─▶ Controller.Complete ──▶ tea.Tick(reset delay) ──▶ resetMsg ──▶ Controller.Expire
//
// The button label, its disabled state and the input placeholders are taken
// from Controller.View on every render. Quitting closes the controller so a
// dispatch still in flight cannot touch the discarded form.
//
// # Usage Example
//
//	ctrl := contact.NewController(emailjs.NewClient())
//	program := tea.NewProgram(tui.NewFormModel(ctrl), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
