package formvalidation

import (
	"log/slog"
	"time"

	"github.com/t4thdd/aid-efrh/pkg/config"
	"github.com/t4thdd/aid-efrh/pkg/i18n"
	"github.com/t4thdd/aid-efrh/pkg/logger"
)

// Options are the engine behaviour switches. The env tags let a deployment
// override the defaults through LoadOptions.
type Options struct {
	ValidateOnChange  bool          `env:"FORM_VALIDATE_ON_CHANGE" envDefault:"true"`
	ValidateOnBlur    bool          `env:"FORM_VALIDATE_ON_BLUR" envDefault:"true"`
	ShowSuccessStates bool          `env:"FORM_SHOW_SUCCESS_STATES" envDefault:"true"`
	Debounce          time.Duration `env:"FORM_DEBOUNCE" envDefault:"300ms"`
	Language          string        `env:"FORM_LANGUAGE" envDefault:"ar"`
	// StrictNumeric rejects non-numeric values in fields with Min or Max.
	// By default such values skip the bound checks.
	StrictNumeric bool `env:"FORM_STRICT_NUMERIC" envDefault:"false"`
}

// DefaultOptions returns the defaults used when no option is given.
func DefaultOptions() Options {
	return Options{
		ValidateOnChange:  true,
		ValidateOnBlur:    true,
		ShowSuccessStates: true,
		Debounce:          300 * time.Millisecond,
		Language:          DefaultLanguage,
	}
}

// LoadOptions reads Options from the environment (and an optional .env file).
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.Load(&opts); err != nil {
		return DefaultOptions(), err
	}
	return opts, nil
}

type settings struct {
	Options
	catalogue *i18n.Translator
	formats   Formats
	logger    *slog.Logger
	scheduler Scheduler
	listener  func(field string, state FieldState)
}

// Option configures an Engine.
type Option func(*settings)

// WithOptions replaces all behaviour switches at once.
func WithOptions(o Options) Option {
	return func(s *settings) { s.Options = o }
}

func WithValidateOnChange(v bool) Option {
	return func(s *settings) { s.ValidateOnChange = v }
}

func WithValidateOnBlur(v bool) Option {
	return func(s *settings) { s.ValidateOnBlur = v }
}

func WithShowSuccessStates(v bool) Option {
	return func(s *settings) { s.ShowSuccessStates = v }
}

// WithDebounce sets the on-change quiet period. Zero or negative validates
// immediately.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) { s.Debounce = d }
}

func WithLanguage(lang string) Option {
	return func(s *settings) {
		if lang != "" {
			s.Language = lang
		}
	}
}

func WithStrictNumeric(v bool) Option {
	return func(s *settings) { s.StrictNumeric = v }
}

// WithCatalogue renders messages through tr instead of the bundled catalogue.
func WithCatalogue(tr *i18n.Translator) Option {
	return func(s *settings) {
		if tr != nil {
			s.catalogue = tr
		}
	}
}

// WithFormats overrides the e-mail, phone and national id expressions. Nil
// members keep their defaults.
func WithFormats(f Formats) Option {
	return func(s *settings) { s.formats = f.withDefaults() }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScheduler replaces the timer source used for debouncing.
func WithScheduler(sch Scheduler) Option {
	return func(s *settings) {
		if sch != nil {
			s.scheduler = sch
		}
	}
}

// WithStateListener registers fn to be called after every applied
// single-field update. fn runs without the engine lock held.
func WithStateListener(fn func(field string, state FieldState)) Option {
	return func(s *settings) { s.listener = fn }
}

func defaultSettings() *settings {
	return &settings{
		Options:   DefaultOptions(),
		formats:   DefaultFormats(),
		logger:    logger.Discard(),
		scheduler: timeScheduler{},
	}
}
