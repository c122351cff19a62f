package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio/contactform/internal/logging"
)

const (
	// DefaultResetDelay is how long the sent confirmation stays up.
	DefaultResetDelay = 3000 * time.Millisecond

	// DefaultDispatchTimeout bounds a single dispatch call.
	DefaultDispatchTimeout = 15 * time.Second
)

// Request is the payload handed to the dispatch service.
type Request struct {
	ID         string
	ServiceID  string
	TemplateID string
	Fields     Fields
}

// Dispatcher delivers a submission. Dispatch is called off the event loop
// and must return once ctx is done.
type Dispatcher interface {
	// Ready reports whether the service was initialised.
	Ready() error
	Dispatch(ctx context.Context, req Request) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithIdentifiers sets the service and template ids sent with every request.
func WithIdentifiers(serviceID, templateID string) Option {
	return func(c *Controller) {
		c.serviceID = serviceID
		c.templateID = templateID
	}
}

// WithResetDelay sets how long Success lasts before reverting to Idle.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.resetDelay = d
	}
}

// WithDispatchTimeout bounds each dispatch. Zero disables the bound.
func WithDispatchTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithClearEmailOnReject controls whether the email value is cleared when a
// submission fails validation.
func WithClearEmailOnReject(clear bool) Option {
	return func(c *Controller) {
		c.clearEmailOnReject = clear
	}
}

// WithLogger sets the logger used for transitions and dispatch failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithContext ties the controller's lifetime to ctx in addition to Close.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.parent = ctx
	}
}

// Controller owns the form fields, the error flags and the submission
// status. It is not safe for concurrent use: all methods must be called from
// the host's event loop. Only Attempt.Run may run elsewhere.
type Controller struct {
	dispatcher         Dispatcher
	serviceID          string
	templateID         string
	resetDelay         time.Duration
	timeout            time.Duration
	clearEmailOnReject bool
	logger             *zap.Logger
	parent             context.Context

	fields Fields
	errs   FieldErrors
	status Status
	seq    uint64

	lifetime context.Context
	cancel   context.CancelFunc
}

// NewController creates a controller in the Idle state with empty fields.
func NewController(d Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		dispatcher:         d,
		serviceID:          "contact_service",
		templateID:         "contact_form",
		resetDelay:         DefaultResetDelay,
		timeout:            DefaultDispatchTimeout,
		clearEmailOnReject: true,
		parent:             context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Named("contact")
	}
	c.lifetime, c.cancel = context.WithCancel(c.parent)
	return c
}

// Fields returns a copy of the current values.
func (c *Controller) Fields() Fields {
	return c.fields
}

// Errors returns the current error flags.
func (c *Controller) Errors() FieldErrors {
	return c.errs
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	return c.status
}

// View projects the current state for rendering.
func (c *Controller) View() ViewState {
	return Project(c.status, c.errs)
}

// SetField replaces the value of one field.
func (c *Controller) SetField(f Field, value string) {
	c.fields = c.fields.With(f, value)
}

// SetFields replaces all four values at once.
func (c *Controller) SetFields(fs Fields) {
	c.fields = fs
}

// Focus clears the error flag of the focused field. Other flags are kept.
func (c *Controller) Focus(f Field) {
	c.errs = c.errs.Clear(f)
}

// Alive reports whether the controller has not been closed.
func (c *Controller) Alive() bool {
	return c.lifetime.Err() == nil
}

// Close ends the controller's lifetime. An in-flight dispatch is cancelled
// and its outcome, if it still arrives, is ignored.
func (c *Controller) Close() {
	c.cancel()
}

// Submit validates the fields and, if they are valid, moves to Sending and
// returns the attempt to run. A nil attempt always comes with an error.
func (c *Controller) Submit() (*Attempt, error) {
	if !c.Alive() {
		return nil, ErrClosed
	}

	switch c.status {
	case StatusSending:
		return nil, ErrSubmitInFlight
	case StatusSuccess:
		return nil, ErrAlreadySent
	}
	if c.errs.Any() {
		return nil, ErrFieldsFlagged
	}

	c.errs = Validate(c.fields)
	if c.errs.Any() {
		if c.clearEmailOnReject {
			c.fields = c.fields.With(FieldEmail, "")
		}
		c.transition(StatusFailed)
		return nil, &ValidationError{Errors: c.errs}
	}

	if c.dispatcher == nil {
		c.logger.Error("Contact form has no dispatch service")
		c.transition(StatusFailed)
		return nil, ErrNotConfigured
	}
	if err := c.dispatcher.Ready(); err != nil {
		c.logger.Error("Dispatch service is not initialized", zap.Error(err))
		c.transition(StatusFailed)
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}

	c.seq++
	attempt := &Attempt{
		seq: c.seq,
		req: Request{
			ID:         uuid.NewString(),
			ServiceID:  c.serviceID,
			TemplateID: c.templateID,
			Fields:     c.fields,
		},
		dispatcher: c.dispatcher,
		lifetime:   c.lifetime,
		timeout:    c.timeout,
	}
	c.transition(StatusSending)
	c.logger.Info("Dispatching contact message",
		zap.Uint64("attempt", attempt.seq),
		zap.String("request_id", attempt.req.ID),
	)
	return attempt, nil
}

// Complete applies the outcome of an attempt. On success it clears the
// fields and returns the Reset to fire after the reset delay. Outcomes of
// stale attempts, or arriving after Close, are dropped.
func (c *Controller) Complete(o Outcome) *Reset {
	if !c.Alive() {
		c.logger.Debug("Dropping dispatch outcome after close",
			zap.Uint64("attempt", o.attempt),
			zap.String("request_id", o.RequestID),
		)
		return nil
	}
	if o.attempt != c.seq || c.status != StatusSending {
		c.logger.Debug("Dropping stale dispatch outcome",
			zap.Uint64("attempt", o.attempt),
			zap.Uint64("current", c.seq),
			zap.Stringer("status", c.status),
		)
		return nil
	}

	if o.Err != nil {
		c.logger.Error("Failed to send message",
			zap.Uint64("attempt", o.attempt),
			zap.String("request_id", o.RequestID),
			zap.Duration("elapsed", o.Elapsed),
			zap.Error(o.Err),
		)
		c.transition(StatusFailed)
		return nil
	}

	c.logger.Info("Message sent",
		zap.Uint64("attempt", o.attempt),
		zap.String("request_id", o.RequestID),
		zap.Duration("elapsed", o.Elapsed),
	)
	c.fields = Fields{}
	c.transition(StatusSuccess)
	return &Reset{attempt: c.seq, Delay: c.resetDelay}
}

// Expire reverts Success to Idle. It reports false when the reset is stale,
// i.e. a newer attempt started or the state already moved on.
func (c *Controller) Expire(r *Reset) bool {
	if r == nil || !c.Alive() {
		return false
	}
	if r.attempt != c.seq || c.status != StatusSuccess {
		return false
	}
	c.transition(StatusIdle)
	return true
}

func (c *Controller) transition(to Status) {
	if c.status == to {
		return
	}
	c.logger.Debug("Submission status changed",
		zap.Stringer("from", c.status),
		zap.Stringer("to", to),
		zap.Uint64("attempt", c.seq),
	)
	c.status = to
}

// Attempt is a single dispatch started by Submit.
type Attempt struct {
	seq        uint64
	req        Request
	dispatcher Dispatcher
	lifetime   context.Context
	timeout    time.Duration
}

// Request returns the payload this attempt sends.
func (a *Attempt) Request() Request {
	return a.req
}

// Run performs the dispatch and returns its outcome. It blocks until the
// dispatcher returns, ctx is done, the timeout elapses or the controller is
// closed. Run does not touch controller state; hand the outcome to
// Controller.Complete on the event loop.
func (a *Attempt) Run(ctx context.Context) Outcome {
	runCtx, cancel := context.WithCancel(a.lifetime)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if a.timeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, a.timeout)
		defer cancelTimeout()
	}

	start := time.Now()
	err := a.dispatcher.Dispatch(runCtx, a.req)
	return Outcome{
		attempt:   a.seq,
		RequestID: a.req.ID,
		Err:       err,
		Elapsed:   time.Since(start),
	}
}

// Outcome is the result of Attempt.Run.
type Outcome struct {
	attempt   uint64
	RequestID string
	Err       error
	Elapsed   time.Duration
}

// OK reports whether the dispatch succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Reset is the one-shot token that returns Success to Idle.
type Reset struct {
	attempt uint64
	Delay   time.Duration
}
