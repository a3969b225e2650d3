package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FormID records the form instance identifier under "form_id".
func FormID(id string) slog.Attr {
	return slog.String("form_id", id)
}

// FormName records the form type under "form".
func FormName(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a form field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records a list of field names under "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Outcome groups the outcome of a field validation under "outcome".
// Empty messages are omitted.
func Outcome(errMsg, warning string) slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if errMsg != "" {
		attrs = append(attrs, slog.String("error", errMsg))
	}
	if warning != "" {
		attrs = append(attrs, slog.String("warning", warning))
	}
	return slog.Attr{Key: "outcome", Value: slog.GroupValue(attrs...)}
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Event records the event name under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
