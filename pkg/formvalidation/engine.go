package formvalidation

import (
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/t4thdd/aid-efrh/pkg/logger"
)

// Engine holds the validation state of one form instance: per-field errors,
// warnings and success flags, the set of touched fields, and pending
// debounced validations. Create one per mounted form and Close it when the
// form goes away.
type Engine struct {
	id       string
	rules    RuleSet
	opts     Options
	checker  checker
	sched    Scheduler
	listener func(string, FieldState)
	log      *slog.Logger

	mu        sync.Mutex
	errors    map[string]string
	warnings  map[string]string
	successes map[string]bool
	touched   map[string]struct{}
	pending   map[string]pendingValidation
	seq       uint64
	closed    bool
}

type pendingValidation struct {
	seq   uint64
	timer Timer
}

// New creates an engine for rules. The rule set must not be modified while
// the engine is in use.
func New(rules RuleSet, opts ...Option) *Engine {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	id := uuid.NewString()
	return &Engine{
		id:    id,
		rules: rules,
		opts:  s.Options,
		checker: checker{
			formats:       s.formats,
			messages:      NewMessages(s.catalogue, s.Language),
			strictNumeric: s.StrictNumeric,
		},
		sched:     s.scheduler,
		listener:  s.listener,
		log:       s.logger.With(logger.Component("formvalidation"), logger.FormID(id)),
		errors:    make(map[string]string),
		warnings:  make(map[string]string),
		successes: make(map[string]bool),
		touched:   make(map[string]struct{}),
		pending:   make(map[string]pendingValidation),
	}
}

// ID identifies the engine instance in logs.
func (e *Engine) ID() string {
	return e.id
}

// Options returns the behaviour switches in effect.
func (e *Engine) Options() Options {
	return e.opts
}

// ValidateField validates one value without touching engine state.
func (e *Engine) ValidateField(field string, value any, form Snapshot) Result {
	return e.checker.check(e.rules, field, value, form)
}

// ValidateFieldOnChange schedules validation of field after the debounce
// period. A newer call for the same field replaces a pending one, so only
// the latest value is ever applied. It does nothing when on-change
// validation is disabled or the engine is closed.
func (e *Engine) ValidateFieldOnChange(field string, value any, form Snapshot) {
	if !e.opts.ValidateOnChange {
		return
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.seq++
	seq := e.seq
	if p, ok := e.pending[field]; ok {
		p.timer.Stop()
		e.log.Debug("pending validation superseded", logger.Field(field))
	}

	if e.opts.Debounce <= 0 {
		delete(e.pending, field)
		e.mu.Unlock()
		e.run(field, seq, value, form, false)
		return
	}

	form = maps.Clone(form)
	timer := e.sched.AfterFunc(e.opts.Debounce, func() {
		e.run(field, seq, value, form, true)
	})
	e.pending[field] = pendingValidation{seq: seq, timer: timer}
	e.mu.Unlock()
}

// ValidateFieldOnBlur marks field as touched and, when on-blur validation
// is enabled, validates it immediately. A pending on-change validation for
// the field is cancelled.
func (e *Engine) ValidateFieldOnBlur(field string, value any, form Snapshot) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.touched[field] = struct{}{}
	if !e.opts.ValidateOnBlur {
		e.mu.Unlock()
		return
	}
	e.cancelLocked(field)
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	e.run(field, seq, value, form, false)
}

// run validates outside the lock and applies the result. Debounced runs
// apply only while they are still the pending validation for the field.
func (e *Engine) run(field string, seq uint64, value any, form Snapshot, debounced bool) {
	if debounced && !e.isCurrent(field, seq) {
		return
	}

	res := e.checker.check(e.rules, field, value, form)

	e.mu.Lock()
	if e.closed || (debounced && !e.isCurrentLocked(field, seq)) {
		e.mu.Unlock()
		e.log.Debug("stale validation dropped", logger.Field(field))
		return
	}
	if debounced {
		delete(e.pending, field)
	}
	st := e.applyLocked(field, value, res)
	e.mu.Unlock()

	e.log.Debug("field validated", logger.Field(field), logger.Outcome(res.Error, res.Warning))
	if e.listener != nil {
		e.listener(field, st)
	}
}

func (e *Engine) isCurrent(field string, seq uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.isCurrentLocked(field, seq)
}

func (e *Engine) isCurrentLocked(field string, seq uint64) bool {
	p, ok := e.pending[field]
	return ok && p.seq == seq
}

func (e *Engine) applyLocked(field string, value any, res Result) FieldState {
	setOrDelete(e.errors, field, res.Error)
	setOrDelete(e.warnings, field, res.Warning)
	if e.opts.ShowSuccessStates && res.OK() && !IsBlank(value) {
		e.successes[field] = true
	} else {
		delete(e.successes, field)
	}
	return e.stateLocked(field)
}

func setOrDelete(m map[string]string, key, val string) {
	if val == "" {
		delete(m, key)
		return
	}
	m[key] = val
}

func (e *Engine) cancelLocked(field string) {
	if p, ok := e.pending[field]; ok {
		p.timer.Stop()
		delete(e.pending, field)
	}
}

func (e *Engine) cancelAllLocked() {
	for field, p := range e.pending {
		p.timer.Stop()
		delete(e.pending, field)
	}
}

// ValidateForm validates every field of the rule set against form without
// debouncing and replaces the engine's errors, warnings and successes with
// the result. Pending on-change validations are cancelled. IsValid is true
// when no field has an error; warnings do not block.
func (e *Engine) ValidateForm(form Snapshot) FormResult {
	res := FormResult{
		Errors:    make(map[string]string),
		Warnings:  make(map[string]string),
		Successes: make(map[string]bool),
	}

	for _, field := range e.rules.Fields() {
		value := form.Get(field)
		r := e.checker.check(e.rules, field, value, form)
		switch {
		case r.Error != "":
			res.Errors[field] = r.Error
		case r.Warning != "":
			res.Warnings[field] = r.Warning
		case e.opts.ShowSuccessStates && !IsBlank(value):
			res.Successes[field] = true
		}
	}
	res.IsValid = len(res.Errors) == 0

	e.mu.Lock()
	e.cancelAllLocked()
	e.errors = maps.Clone(res.Errors)
	e.warnings = maps.Clone(res.Warnings)
	e.successes = maps.Clone(res.Successes)
	e.mu.Unlock()

	e.log.Debug("form validated",
		slog.Bool("valid", res.IsValid),
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res
}

// FieldState returns the current display state of field. It does not
// change engine state.
func (e *Engine) FieldState(field string) FieldState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked(field)
}

func (e *Engine) stateLocked(field string) FieldState {
	_, touched := e.touched[field]
	st := FieldState{
		Error:      e.errors[field],
		Warning:    e.warnings[field],
		HasSuccess: e.successes[field],
		Touched:    touched,
	}
	st.Status = statusOf(st.Error, st.Warning, st.HasSuccess)
	return st
}

// IsFormValid is the lenient, display-time validity signal: no field holds
// an error, and every required field is either successful or untouched.
// Use ValidateForm to gate submission.
func (e *Engine) IsFormValid() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, msg := range e.errors {
		if msg != "" {
			return false
		}
	}
	for field, rule := range e.rules {
		if !rule.Required {
			continue
		}
		if _, touched := e.touched[field]; touched && !e.successes[field] {
			return false
		}
	}
	return true
}

// ClearAllErrors resets errors, warnings, successes and touched fields and
// cancels pending validations.
func (e *Engine) ClearAllErrors() {
	e.mu.Lock()
	e.cancelAllLocked()
	e.errors = make(map[string]string)
	e.warnings = make(map[string]string)
	e.successes = make(map[string]bool)
	e.touched = make(map[string]struct{})
	e.mu.Unlock()

	e.log.Debug("validation state cleared", logger.Event("reset"))
}

// Close cancels pending validations. Later change and blur calls are
// ignored. Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.cancelAllLocked()
	e.closed = true
}

// Errors returns a copy of the current field errors.
func (e *Engine) Errors() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.errors)
}

// Warnings returns a copy of the current field warnings.
func (e *Engine) Warnings() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.warnings)
}

// Successes returns a copy of the fields currently marked successful.
func (e *Engine) Successes() map[string]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.successes)
}

// TouchedFields returns the touched field names in lexical order.
func (e *Engine) TouchedFields() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	fields := make([]string, 0, len(e.touched))
	for f := range e.touched {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
