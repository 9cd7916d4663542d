package report

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/model"
)

// entryDocument is one entry as it appears in a report file.
type entryDocument struct {
	Task     string        `mapstructure:"task" validate:"required"`
	Duration time.Duration `mapstructure:"duration" validate:"gte=0s"`
	Status   string        `mapstructure:"status" validate:"omitempty,oneof=executed skipped delegated"`
	Category string        `mapstructure:"category" validate:"omitempty,oneof=task setup teardown"`
}

// reportDocument is the top level of a report file.
type reportDocument struct {
	Entries []entryDocument `mapstructure:"entries" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	return v
}

// LoadFile reads a YAML or JSON report file.
func LoadFile(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("report file", path)
		}
		return nil, errors.Wrap(err, "failed to read report file")
	}
	r, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Decode reads a YAML or JSON report document. The document is either a
// mapping with an "entries" list or the list itself. An empty document
// yields an empty report.
func Decode(r io.Reader) (*model.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read report")
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Validationf("failed to parse report: %v", err)
	}
	if list, ok := raw.([]interface{}); ok {
		raw = map[string]interface{}{"entries": list}
	}
	if raw == nil {
		return model.NewReport(), nil
	}

	var doc reportDocument
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  durationHook,
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create report decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Validationf("invalid report: %v", err)
	}

	for i := range doc.Entries {
		doc.Entries[i].Status = strings.ToLower(strings.TrimSpace(doc.Entries[i].Status))
		doc.Entries[i].Category = strings.ToLower(strings.TrimSpace(doc.Entries[i].Category))
	}
	if err := validate.Struct(doc); err != nil {
		return nil, validationError(err)
	}

	return buildReport(doc)
}

func buildReport(doc reportDocument) (*model.Report, error) {
	report := model.NewReport()
	for i, d := range doc.Entries {
		entry := model.ReportEntry{
			TaskName: d.Task,
			Duration: d.Duration,
		}
		if d.Status != "" {
			entry.ExecutionStatus, _ = model.ParseExecutionStatus(d.Status)
		}
		if d.Category != "" {
			entry.Category, _ = model.ParseCategory(d.Category)
		}
		if err := report.Append(entry); err != nil {
			return nil, errors.Validationf("entries[%d]: %v", i, err)
		}
	}
	return report, nil
}

// validationError turns the first validator failure into a readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Validationf("invalid report: %v", err)
	}
	fe := verrs[0]
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return errors.Validationf("%s: is required", field)
	case "oneof":
		return errors.Validationf("%s: must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gte":
		return errors.Validationf("%s: must not be negative, got %v", field, fe.Value())
	default:
		return errors.Validationf("%s: failed %q check", field, fe.Tag())
	}
}

var durationType = reflect.TypeOf(time.Duration(0))

// durationHook decodes durations from Go duration strings, the
// H:MM:SS.fffffff form, or plain numbers of seconds.
func durationHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != durationType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ParseDuration(strings.TrimSpace(v))
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case uint64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	default:
		return data, nil
	}
}
