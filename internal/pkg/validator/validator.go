package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/heritage-archive/content-service/internal/domain"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError - нарушение одного ограничения
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError перечисляет все нарушенные ограничения запроса
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

// ToAppError конвертирует в ошибку API (400) с деталями по полям
func (e *RequestValidationError) ToAppError() *apperrors.AppError {
	return apperrors.ErrValidation.
		WithMessage(e.Error()).
		WithDetails(map[string]interface{}{"fields": e.Fields})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonTagName)
		validate.RegisterCustomTypeFunc(filmItemRefValue, domain.FilmItemRef{})
		if err := validate.RegisterValidation("film_ref", validateFilmRef); err != nil {
			panic(fmt.Sprintf("register film_ref validation: %v", err))
		}
	})
	return validate
}

// ValidateStruct - валидация структуры; nil если ограничения соблюдены
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "body",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		path := fieldPath(fe.Namespace())
		fields = append(fields, FieldError{
			Field:   path,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe, path),
		})
	}
	return &RequestValidationError{Fields: fields}
}

// DecodeAndValidate разбирает JSON-тело в dst и проверяет ограничения.
// Тело разбирается поле за полем: каждое несоответствие типа становится ошибкой
// поля с тегом "type" и не прерывает разбор и проверку остальных полей.
func DecodeAndValidate(body []byte, dst interface{}) *RequestValidationError {
	if !json.Valid(body) {
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "body",
			Tag:     "json",
			Message: "body must be a valid JSON object",
		}}}
	}

	var fields []FieldError
	decodeValue(body, reflect.ValueOf(dst).Elem(), "", &fields)
	if len(fields) == 1 && fields[0].Field == "body" {
		return &RequestValidationError{Fields: fields}
	}

	if verr := ValidateStruct(dst); verr != nil {
		for _, fe := range verr.Fields {
			if !coveredBy(fe.Field, fields) {
				fields = append(fields, fe)
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &RequestValidationError{Fields: fields}
}

// decodeValue повторяет семантику json.Unmarshal для v, но продолжает разбор
// после несоответствия типа, добавляя ошибку поля в errs
func decodeValue(raw json.RawMessage, v reflect.Value, path string, errs *[]FieldError) {
	if strings.TrimSpace(string(raw)) == "null" {
		switch v.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			v.Set(reflect.Zero(v.Type()))
		}
		return
	}

	if v.CanAddr() {
		if _, ok := v.Addr().Interface().(json.Unmarshaler); ok {
			decodeLeaf(raw, v, path, errs)
			return
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		decodeValue(raw, v.Elem(), path, errs)

	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			*errs = append(*errs, typeError(path, v.Type(), raw))
			return
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := jsonTagName(f)
			if !f.IsExported() || name == "" {
				continue
			}
			if fieldRaw, ok := lookupKey(obj, name); ok {
				decodeValue(fieldRaw, v.Field(i), joinPath(path, name), errs)
			}
		}

	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			*errs = append(*errs, typeError(path, v.Type(), raw))
			return
		}
		out := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			decodeValue(item, out.Index(i), fmt.Sprintf("%s[%d]", path, i), errs)
		}
		v.Set(out)

	default:
		decodeLeaf(raw, v, path, errs)
	}
}

func decodeLeaf(raw json.RawMessage, v reflect.Value, path string, errs *[]FieldError) {
	if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
		*errs = append(*errs, typeError(path, v.Type(), raw))
	}
}

// lookupKey ищет ключ объекта; как и encoding/json, допускает другой регистр
func lookupKey(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, ok := obj[name]; ok {
		return raw, true
	}
	for k, raw := range obj {
		if strings.EqualFold(k, name) {
			return raw, true
		}
	}
	return nil, false
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func typeError(path string, t reflect.Type, raw json.RawMessage) FieldError {
	got := jsonKind(raw)
	if path == "" {
		return FieldError{
			Field:   "body",
			Tag:     "type",
			Message: fmt.Sprintf("body must be a JSON object, got %s", got),
		}
	}
	want := describeType(t)
	return FieldError{
		Field:   path,
		Tag:     "type",
		Param:   want,
		Message: fmt.Sprintf("%s must be %s, got %s", path, want, got),
	}
}

// jsonKind - тип JSON-значения для сообщений об ошибках
func jsonKind(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "nothing"
	}
	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// coveredBy - ошибка поля уже описана ошибкой типа этого поля или его родителя
func coveredBy(field string, typeErrors []FieldError) bool {
	for _, te := range typeErrors {
		if field == te.Field ||
			strings.HasPrefix(field, te.Field+".") ||
			strings.HasPrefix(field, te.Field+"[") {
			return true
		}
	}
	return false
}

// fieldPath убирает имя корневой структуры из namespace валидатора
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func filmItemRefValue(field reflect.Value) interface{} {
	if ref, ok := field.Interface().(domain.FilmItemRef); ok {
		return ref.Kind().String()
	}
	return nil
}

func validateFilmRef(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String && fl.Field().String() != ""
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// errorMessageTemplates - шаблоны сообщений по тегам
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"url":      "%s must be a valid absolute URL",
	"film_ref": "%s must be a string or an integer",
}

func translateError(fe validator.FieldError, field string) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}

	isString := fe.Kind() == reflect.String
	param := fe.Param()

	switch fe.Tag() {
	case "len":
		if isString {
			return fmt.Sprintf("%s must be exactly %s characters", field, param)
		}
		return fmt.Sprintf("%s must contain exactly %s items", field, param)
	case "min":
		if isString && param == "1" {
			return fmt.Sprintf("%s must not be empty", field)
		}
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
