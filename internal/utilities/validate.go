package utilities

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON name so clients can map errors to inputs.
		validate.RegisterTagNameFunc(jsonName)
	})
	return validate
}

// ValidatePayload checks the `validate` tags of v and returns an
// *apperr.ValidationError naming every offending field.
func ValidatePayload(v any) error {
	err := payloadValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if !Contains(fields, fe.Field()) {
			fields = append(fields, fe.Field())
		}
	}
	return apperr.NewValidation(fields...)
}

// BindJSON decodes the request body into obj, a pointer to a struct.
// It answers 400 and returns false when the body cannot be decoded. Fields
// holding a value of the wrong type are listed in the response.
func BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil {
		return true
	}

	if verr := decodeError(c, obj, err); verr != nil {
		WriteError(c, verr, "")
		return false
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request body",
	})
	return false
}

// decodeError turns a decoding failure into an *apperr.ValidationError when
// the offending fields can be named, nil otherwise.
func decodeError(c *gin.Context, obj any, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.NewValidation(typeErr.Field)
	}

	// Text unmarshalers such as uuid.UUID fail without naming the field,
	// so decode each top-level member on its own to find the culprits.
	body, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return nil
	}
	raw, ok := body.([]byte)
	if !ok {
		return nil
	}
	var members map[string]json.RawMessage
	if json.Unmarshal(raw, &members) != nil {
		return nil
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []string
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := jsonName(fld)
		member, present := members[name]
		if !fld.IsExported() || name == "" || !present {
			continue
		}
		if json.Unmarshal(member, reflect.New(fld.Type).Interface()) != nil {
			fields = append(fields, name)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return apperr.NewValidation(fields...)
}
