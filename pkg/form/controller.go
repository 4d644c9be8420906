package form

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
)

// Predictor performs the network half of a submission.
type Predictor interface {
	Predict(ctx context.Context, values model.Values) (predict.Result, error)
}

// PredictorFunc adapts a function into a Predictor.
type PredictorFunc func(ctx context.Context, values model.Values) (predict.Result, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, values model.Values) (predict.Result, error) {
	return f(ctx, values)
}

// Observer is notified with a lifecycle snapshot after every transition.
type Observer func(Lifecycle)

// Controller owns one form session: the field values and the request
// lifecycle. All methods are safe for concurrent use; the predictor runs
// outside the lock.
type Controller struct {
	schema    model.Schema
	predictor Predictor
	logger    *slog.Logger
	observers []Observer

	mu     sync.Mutex
	values model.Values
	state  Lifecycle
	epoch  uint64
}

// New constructs a controller and initializes its session.
func New(schema model.Schema, predictor Predictor, options ...Option) *Controller {
	c := &Controller{
		schema:    schema,
		predictor: predictor,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.Initialize()
	return c
}

// Initialize resets every numeric field to unset, every categorical field to
// its default and the lifecycle to idle. An outstanding submission's outcome
// will be discarded.
func (c *Controller) Initialize() {
	c.mu.Lock()
	c.values = model.NewValues(c.schema)
	c.state = idle()
	c.epoch++
	snapshot := c.state
	c.mu.Unlock()

	c.logger.Debug("form initialized", "fields", c.schema.Len())
	c.notify(snapshot)
}

// SetField stores raw input verbatim. No coercion or bounds check happens
// here; empty input makes the field unset.
func (c *Controller) SetField(name, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := c.values.With(name, model.Raw(raw))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	c.values = next
	return nil
}

// Values returns a snapshot of the current field values.
func (c *Controller) Values() model.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Schema returns the schema the controller was built with.
func (c *Controller) Schema() model.Schema {
	return c.schema
}

// Lifecycle returns a snapshot of the request state.
func (c *Controller) Lifecycle() Lifecycle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit is false while a submission is outstanding.
func (c *Controller) CanSubmit() bool {
	return !c.Lifecycle().Loading()
}

// SubmitLabel is the text the submit control should show right now.
func (c *Controller) SubmitLabel() string {
	return c.Lifecycle().SubmitLabel()
}

// Validate checks the controller's current values. See Validate.
func (c *Controller) Validate() error {
	return Validate(c.Values())
}

// Submit runs one submission: it enters Loading, clears any previous result
// or error, validates, and asks the predictor. A submit while Loading returns
// ErrSubmitInFlight and changes nothing. The returned error is the one that
// put the lifecycle into Failed, nil on success.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading() {
		c.mu.Unlock()
		c.logger.Debug("submit rejected while loading")
		return ErrSubmitInFlight
	}
	c.epoch++
	epoch := c.epoch
	c.state = loading()
	values := c.values.Clone()
	c.mu.Unlock()

	c.logger.Debug("submit started", "epoch", epoch)
	c.notify(loading())

	if err := Validate(values); err != nil {
		return c.settle(epoch, failed(err))
	}
	if c.predictor == nil {
		return c.settle(epoch, failed(ErrNoPredictor))
	}

	result, err := c.predictor.Predict(ctx, values)
	if err != nil {
		return c.settle(epoch, failed(err))
	}
	return c.settle(epoch, succeeded(result))
}

func (c *Controller) settle(epoch uint64, next Lifecycle) error {
	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		c.logger.Debug("stale submission outcome dropped", "epoch", epoch, "status", next.Status.String())
		return ErrStaleResponse
	}
	c.state = next
	c.mu.Unlock()

	if next.Status == StatusFailed {
		c.logger.Info("submit failed", "epoch", epoch, "error", next.Err)
	} else {
		c.logger.Debug("submit succeeded", "epoch", epoch, "price", next.Result.PredictedPrice)
	}
	c.notify(next)
	return next.Err
}

func (c *Controller) notify(state Lifecycle) {
	for _, observer := range c.observers {
		observer(state)
	}
}

// Validate passes iff every schema field holds a value. It scans all fields
// and reports a single shared error; numeric text is not checked here.
func Validate(values model.Values) error {
	missing := 0
	for _, name := range values.Schema().Names() {
		value, ok := values.Get(name)
		if !ok || !value.IsSet() {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w (%d unset)", ErrMissingFields, missing)
	}
	return nil
}
