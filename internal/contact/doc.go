// Package contact implements the contact form core: the field store, the
// field validator, the submission state machine and the derived view state.
//
// The package has no UI dependency. A host (the terminal form in
// internal/tui, or the headless send command) owns one Controller and drives
// it from a single event loop:
//
//	ctrl := contact.NewController(client)
//	ctrl.SetField(contact.FieldName, "Ada")
//	...
//	attempt, err := ctrl.Submit()
//	if err != nil {
//	    // validation rejected, already sending, or misconfigured
//	}
//	outcome := attempt.Run(ctx)       // may run off the event loop
//	reset := ctrl.Complete(outcome)  // back on the event loop
//	// after reset.Delay:
//	ctrl.Expire(reset)
//
// # State Machine
//
//	Idle ──submit/valid──▶ Sending ──ok──▶ Success ──reset delay──▶ Idle
//	  │                       │
//	  └─submit/invalid─┐      └──fail──▶ Failed ──submit──▶ ...
//	                   ▼
//	                 Failed (field errors shown)
//
// Only the Controller mutates Fields, FieldErrors and Status. Attempt.Run is
// the only call that blocks; it works on a snapshot of the fields and never
// touches controller state, so the event loop stays responsive while a
// message is in flight.
//
// # Template Placeholders
//
// The keys returned by Field.Key ("name", "email", "subject", "message") are
// the placeholder names expected by the email template and must not change.
package contact
