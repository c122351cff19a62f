// Package ui renders the styled output of the non-interactive commands.
//
// The send command prints a Header naming the submission, the button labels
// as the controller moves through them, and finally a Result box. Unlike
// the interactive form these components render once and exit.
//
//	fmt.Fprintln(w, ui.NewHeader("Send a Message", "contact-form send",
//	    ui.Detail{Key: "To", Value: serviceID}).Render())
//	...
//	fmt.Fprintln(w, ui.NewFailureResult("Message not sent", err, hints).Render())
//
// Logging is controlled separately via CONTACTFORM_LOG_LEVEL. When unset,
// zap is silent and only this output reaches the terminal.
package ui
