package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ghuser/plantcatalog/pkg/httpx"
)

// Response messages for bodies that never reach struct validation.
const (
	MsgInvalidJSON      = "Invalid JSON"
	MsgBodyNotObject    = "Request body must be a JSON object"
	MsgBodyTooLarge     = "Request body too large"
	MsgValidationFailed = "Validation failed"
)

// messageTag names the struct tag holding a client-facing message used when a
// presence check (required, notblank) fails on that field.
const messageTag = "errmsg"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// DecodeError is returned by custom JSON unmarshalers that reject a field's
// value. ValidateRequest reports it as a 400 against that field.
type DecodeError struct {
	Field   string
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name to human-readable message.
func FormatValidationErrors(err error) map[string]string {
	_, fields := Messages(nil, err)
	return fields
}

// Messages renders err for the client. It returns the first failing field's
// message (struct field order) and a map of every failing field. When s is a
// struct or pointer to one, errmsg tags on its fields override the default
// message for presence checks.
func Messages(s any, err error) (string, map[string]string) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "", fields
	}

	var typ reflect.Type
	if s != nil {
		typ = reflect.TypeOf(s)
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
	}

	first := ""
	for _, e := range ve {
		msg := fieldMessage(typ, e)
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = msg
		}
		if first == "" {
			first = msg
		}
	}
	return first, fields
}

func fieldMessage(typ reflect.Type, e validator.FieldError) string {
	if typ != nil && typ.Kind() == reflect.Struct && isPresenceTag(e.Tag()) {
		if f, ok := typ.FieldByName(e.StructField()); ok {
			if m := f.Tag.Get(messageTag); m != "" {
				return m
			}
		}
	}
	return formatFieldError(e)
}

func isPresenceTag(tag string) bool {
	return tag == "required" || tag == "notblank"
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "url":
		return "Must be a valid URL"
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "dive":
		return "Invalid list entry"
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// Decode reads a JSON object body into dst. An empty body leaves dst at its
// zero value so field validation reports what is missing. It returns the
// status and message to send on failure.
func Decode(r *http.Request, dst any) (int, string, map[string]string, bool) {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return 0, "", nil, true
	}
	status, msg, fields := DescribeDecodeError(err)
	return status, msg, fields, false
}

// DescribeDecodeError maps a JSON decoding error to a status, a client
// message and the offending field, if one is known.
func DescribeDecodeError(err error) (int, string, map[string]string) {
	var (
		decErr  *DecodeError
		typeErr *json.UnmarshalTypeError
		maxErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, MsgBodyTooLarge, nil
	case errors.As(err, &decErr):
		if decErr.Field == "" {
			return http.StatusBadRequest, decErr.Message, nil
		}
		return http.StatusBadRequest, decErr.Message, map[string]string{decErr.Field: decErr.Message}
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return http.StatusBadRequest, MsgBodyNotObject, nil
	case errors.As(err, &typeErr):
		msg := fmt.Sprintf("Invalid value for field %s", typeErr.Field)
		return http.StatusBadRequest, msg, map[string]string{typeErr.Field: msg}
	default:
		return http.StatusBadRequest, MsgInvalidJSON, nil
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes a 400 {error, fields} response if either step fails. error carries
// the first failing field's message.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if status, msg, fields, ok := Decode(r, &req); !ok {
		WriteError(w, status, msg, fields)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		msg, fields := Messages(&req, err)
		if msg == "" {
			msg = MsgValidationFailed
		}
		WriteError(w, http.StatusBadRequest, msg, fields)
		return nil, false
	}
	return &req, true
}

// WriteError writes a {error, fields} body, omitting fields when empty.
func WriteError(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	if len(fields) == 0 {
		httpx.JSONError(w, status, msg)
		return
	}
	httpx.JSON(w, status, map[string]any{
		"error":  msg,
		"fields": fields,
	})
}
