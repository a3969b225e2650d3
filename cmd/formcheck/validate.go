package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/t4thdd/aid-efrh/modules/forms"
	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
	"github.com/t4thdd/aid-efrh/pkg/i18n"
	"github.com/t4thdd/aid-efrh/pkg/logger"
)

var (
	ErrUnknownForm = errors.New("unknown form")
	ErrReadingFile = errors.New("failed to read snapshot file")
	ErrParsingFile = errors.New("failed to parse snapshot file")
)

type validateInput struct {
	form     string
	file     string
	lang     string
	messages string
}

func newValidateCmd() *cobra.Command {
	var in validateInput

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a form snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			log := newLogger(s, cmd.ErrOrStderr())
			logger.SetAsDefault(log)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			res, err := runValidate(withSnapshotFile(ctx, in.file), log, in)
			if err != nil {
				return err
			}
			if err := writeResult(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			return res.Err()
		},
	}

	cmd.Flags().StringVarP(&in.form, "form", "f", "", "form name, see 'formcheck forms'")
	cmd.Flags().StringVar(&in.file, "file", "", "snapshot file (YAML or JSON)")
	cmd.Flags().StringVar(&in.lang, "lang", "", "message language (default from FORM_LANGUAGE)")
	cmd.Flags().StringVar(&in.messages, "messages", "", "catalogue file overriding bundled messages")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runValidate(ctx context.Context, log *slog.Logger, in validateInput) (formvalidation.FormResult, error) {
	opts, err := formvalidation.LoadOptions()
	if err != nil {
		return formvalidation.FormResult{}, err
	}
	if in.lang != "" {
		opts.Language = in.lang
	}

	tr, err := loadCatalogue(ctx, in.messages)
	if err != nil {
		return formvalidation.FormResult{}, err
	}

	rules, ok := forms.New(forms.WithMessages(formvalidation.NewMessages(tr, opts.Language))).Lookup(in.form)
	if !ok {
		return formvalidation.FormResult{}, fmt.Errorf("%w: %q", ErrUnknownForm, in.form)
	}

	snapshot, err := readSnapshot(in.file)
	if err != nil {
		return formvalidation.FormResult{}, err
	}

	engine := formvalidation.New(rules,
		formvalidation.WithOptions(opts),
		formvalidation.WithCatalogue(tr),
		formvalidation.WithLogger(log),
	)
	defer engine.Close()

	start := time.Now()
	res := engine.ValidateForm(snapshot)
	log.InfoContext(ctx, "form checked",
		logger.FormName(in.form),
		logger.FormID(engine.ID()),
		slog.Bool("valid", res.IsValid),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

// loadCatalogue returns nil when no override file is given, which selects
// the bundled catalogue.
func loadCatalogue(ctx context.Context, path string) (*i18n.Translator, error) {
	if path == "" {
		return nil, nil
	}
	return formvalidation.NewCatalogue(ctx, i18n.NewFileAdapter(path))
}

func writeResult(w io.Writer, res formvalidation.FormResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}
