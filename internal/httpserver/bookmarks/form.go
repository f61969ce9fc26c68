package bookmarks

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
)

// FieldErrorSink accepts error messages for one form field.
type FieldErrorSink interface {
	AddErrors(msgs ...string)
}

// Field is one input of an HTML form.
type Field struct {
	Name   string
	Label  string
	Type   string
	Data   string
	Errors []string
}

func (f *Field) AddErrors(msgs ...string) {
	f.Errors = append(f.Errors, msgs...)
}

// CreateBookmarkForm is the "new bookmark" form.
type CreateBookmarkForm struct {
	Name Field
	URL  Field

	fields map[string]*Field
}

// createBookmarkInput carries the validation rules of the form.
type createBookmarkInput struct {
	Name string `form:"name" validate:"required,max=255"`
	URL  string `form:"url" validate:"required,url,max=2048"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report form input names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return v
}

func NewCreateBookmarkForm() *CreateBookmarkForm {
	f := &CreateBookmarkForm{
		Name: Field{Name: usecase.FieldName, Label: "Name", Type: "text"},
		URL:  Field{Name: usecase.FieldURL, Label: "URL", Type: "url"},
	}
	f.fields = map[string]*Field{
		f.Name.Name: &f.Name,
		f.URL.Name:  &f.URL,
	}
	return f
}

// Field looks up a field by its input name. Unknown names report false.
func (f *CreateBookmarkForm) Field(name string) (FieldErrorSink, bool) {
	field, ok := f.fields[name]
	return field, ok
}

// Fields lists the fields in display order.
func (f *CreateBookmarkForm) Fields() []*Field {
	return []*Field{&f.Name, &f.URL}
}

// HasErrors reports whether any field carries an error.
func (f *CreateBookmarkForm) HasErrors() bool {
	for _, field := range f.Fields() {
		if len(field.Errors) > 0 {
			return true
		}
	}
	return false
}

// ValidateOnSubmit binds and validates a POST body. It returns false for any
// other method, or when validation attached errors to the fields.
func (f *CreateBookmarkForm) ValidateOnSubmit(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	if err := r.ParseForm(); err != nil {
		f.Name.AddErrors("The form could not be read.")
		return false
	}

	f.Name.Data = strings.TrimSpace(r.PostForm.Get(f.Name.Name))
	f.URL.Data = strings.TrimSpace(r.PostForm.Get(f.URL.Name))

	err := validate.Struct(createBookmarkInput{Name: f.Name.Data, URL: f.URL.Data})
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.Name.AddErrors("The form could not be validated.")
		return false
	}
	for _, fe := range verrs {
		if sink, ok := f.Field(fe.Field()); ok {
			sink.AddErrors(validationMessage(fe))
		}
	}
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Invalid URL."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
