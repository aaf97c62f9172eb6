// Package bind provides JSON bind and validation helpers for handlers.
// Failures come back as 422 errors carrying FastAPI-style issues
// (loc/msg/type) so clients of the prediction API see a familiar shape.
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerPresent(v, trans)
		registerShort(v, trans, "required", "Field required")
		registerShort(v, trans, "max", "String should have at most {1} characters")
		registerShort(v, trans, "min", "String should have at least {1} characters")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 64KiB
	DisallowUnknown bool  // default false, extra fields are ignored
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 64 << 10}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("failed to close request body")
		}
	}()

	var src io.Reader = r.Body
	if o.MaxBytes > 0 {
		src = io.LimitReader(r.Body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read request body")
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("request body exceeds %d bytes", o.MaxBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, perr.Invalid(perr.Issue{Loc: []any{"body"}, Msg: "Field required", Type: "missing"})
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, decodeIssue(err)
	}
	if jsonMore(dec) {
		return zero, perr.Invalid(perr.Issue{Loc: []any{"body", dec.InputOffset()}, Msg: "JSON decode error", Type: "json_invalid"})
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.Wrap(inv, perr.ErrorCodeUnknown, "validator misuse")
		}
		return zero, perr.Invalid(Issues(err)...)
	}

	return dst, nil
}

// decodeIssue turns an encoding/json failure into a single body issue
func decodeIssue(err error) error {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syn):
		return perr.Invalid(perr.Issue{Loc: []any{"body", syn.Offset}, Msg: "JSON decode error", Type: "json_invalid"})
	case errors.Is(err, io.ErrUnexpectedEOF):
		return perr.Invalid(perr.Issue{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"})
	case errors.As(err, &typ):
		loc := []any{"body"}
		if typ.Field != "" {
			for _, p := range strings.Split(typ.Field, ".") {
				loc = append(loc, p)
			}
		}
		msg, kind := typeMessage(typ.Type)
		return perr.Invalid(perr.Issue{Loc: loc, Msg: msg, Type: kind})
	}
	if strings.HasPrefix(err.Error(), "json: unknown field") {
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return perr.Invalid(perr.Issue{Loc: []any{"body", field}, Msg: "Extra inputs are not permitted", Type: "extra_forbidden"})
	}
	return perr.Invalid(perr.Issue{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"})
}

func typeMessage(t reflect.Type) (msg, kind string) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "Input is invalid", "value_error"
	}
	switch t.Kind() {
	case reflect.String:
		return "Input should be a valid string", "string_type"
	case reflect.Bool:
		return "Input should be a valid boolean", "bool_type"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Input should be a valid integer", "int_type"
	case reflect.Float32, reflect.Float64:
		return "Input should be a valid number", "float_type"
	case reflect.Slice, reflect.Array:
		return "Input should be a valid list", "list_type"
	default:
		return "Input should be a valid dictionary or object to extract fields from", "model_attributes_type"
	}
}

// Issues converts validator errors into body issues, one per failing field
func Issues(err error) []perr.Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []perr.Issue{{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]perr.Issue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, perr.Issue{
			Loc:  fieldLoc(fe.Namespace()),
			Msg:  fe.Translate(Get().Translator),
			Type: issueType(fe.Tag()),
		})
	}
	return out
}

// fieldLoc drops the root struct name from a validator namespace ("TweetRequest.tweet")
func fieldLoc(ns string) []any {
	loc := []any{"body"}
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for _, p := range parts {
		loc = append(loc, p)
	}
	return loc
}

func issueType(tag string) string {
	switch tag {
	case "required", "present":
		return "missing"
	case "max":
		return "string_too_long"
	case "min":
		return "string_too_short"
	default:
		return "value_error"
	}
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// registerPresent adds the "present" tag: a pointer field must be sent,
// but an empty value is acceptable. Nil pointers fail before the func runs
func registerPresent(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("present", func(validator.FieldLevel) bool { return true })
	registerShort(v, trans, "present", "Field required")
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
