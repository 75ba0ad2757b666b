package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends the non-nil field errors.
func (e *Errs) Add(fs ...*ErrField) {
	for _, f := range fs {
		if f != nil {
			*e = append(*e, *f)
		}
	}
}

// Err returns nil when nothing was collected.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinLen(field, value string, n int) *ErrField {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		return &ErrField{Field: field, Msg: "must be at least " + strconv.Itoa(n) + " characters"}
	}
	return nil
}

func Email(field, value string) *ErrField {
	if !models.ValidEmail(models.NormalizeEmail(value)) {
		return &ErrField{Field: field, Msg: "must be a valid email"}
	}
	return nil
}

func MinFloat(field string, v, min float64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatFloat(min, 'f', -1, 64)}
	}
	return nil
}
