package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/text"
)

// Session drives a form controller from the terminal: one prompt per field,
// then a submission and the printed outcome.
type Session struct {
	controller *form.Controller
	driver     PromptDriver
	panel      render.Renderer
	repeat     bool
	logger     *slog.Logger
}

// New builds a session around controller. Without WithPromptDriver the
// interactive survey driver writing to stdout is used.
func New(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, ErrNoController
	}
	s := &Session{
		controller: controller,
		repeat:     true,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.panel == nil {
		panel, err := text.New()
		if err != nil {
			return nil, err
		}
		s.panel = panel
	}
	return s, nil
}

// Run prompts, submits and prints until the user declines another round.
// Submission failures are printed, not returned; only prompt and output
// errors end the session early.
func (s *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		if err := s.promptFields(ctx); err != nil {
			return err
		}
		if err := s.submit(ctx); err != nil {
			return err
		}
		if !s.repeat {
			return nil
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Predict again?",
			Help:    "Current answers are kept as defaults.",
		})
		if err != nil {
			return err
		}
		if !again {
			s.logger.Debug("tui session finished", "rounds", round)
			return nil
		}
	}
}

func (s *Session) promptFields(ctx context.Context) error {
	values := s.controller.Values()
	for _, def := range s.controller.Schema().Fields() {
		current, _ := values.Get(def.Name)

		var (
			raw string
			err error
		)
		if def.Kind == model.FieldKindCategorical {
			raw, err = s.promptChoice(ctx, def, current)
		} else {
			raw, err = s.driver.Input(ctx, InputConfig{
				Message: label(def),
				Default: current.String(),
				Help:    rangeHelp(def),
			})
		}
		if err != nil {
			return err
		}
		if err := s.controller.SetField(def.Name, strings.TrimSpace(raw)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptChoice(ctx context.Context, def model.FieldDefinition, current model.Value) (string, error) {
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      label(def),
		Options:      def.Options,
		DefaultIndex: indexOf(def.Options, current.String()),
		PageSize:     10,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(def.Options) {
		return "", fmt.Errorf("%w: %s index %d", ErrInvalidChoice, def.Name, idx)
	}
	return def.Options[idx], nil
}

func (s *Session) submit(ctx context.Context) error {
	if err := s.driver.Info(ctx, form.LabelLoading); err != nil {
		return err
	}

	err := s.controller.Submit(ctx)
	switch {
	case err == nil:
	case errors.Is(err, form.ErrSubmitInFlight), errors.Is(err, form.ErrStaleResponse):
		s.logger.Debug("submission outcome not shown", "error", err)
		return nil
	default:
		s.logger.Debug("submission failed", "error", err)
	}

	out, err := s.panel.Render(ctx, render.FromController(s.controller), render.RenderOptions{})
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

func label(def model.FieldDefinition) string {
	if def.Label != "" {
		return def.Label
	}
	return def.Name
}

// rangeHelp describes the advisory bounds. Nothing enforces them.
func rangeHelp(def model.FieldDefinition) string {
	switch {
	case def.Min != nil && def.Max != nil:
		return fmt.Sprintf("Whole number from %d to %d", *def.Min, *def.Max)
	case def.Min != nil:
		return fmt.Sprintf("Whole number, at least %d", *def.Min)
	case def.Max != nil:
		return fmt.Sprintf("Whole number, at most %d", *def.Max)
	default:
		return "Whole number"
	}
}
