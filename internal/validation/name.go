// Package validation holds the input validation rules for product fields.
// Every create and update path goes through these rules before any storage
// access happens.
package validation

import "github.com/go-playground/validator/v10"

// Kind classifies a validation violation.
type Kind int

const (
	// KindMalformed means the field is absent or has the wrong type.
	KindMalformed Kind = iota
	// KindTooShort means the field fails the minimum length constraint.
	KindTooShort
)

// Error is a validation violation. The message is part of the API contract
// and must not be reworded.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const minNameRule = "min=5"

var validate = validator.New()

// Name checks a product name candidate as decoded from a JSON body.
// It returns nil when the candidate is acceptable.
func Name(candidate any) *Error {
	if candidate == nil {
		return &Error{Kind: KindMalformed, Message: `"name" is required`}
	}
	name, ok := candidate.(string)
	if !ok {
		return &Error{Kind: KindMalformed, Message: `"name" must be a string`}
	}
	if err := validate.Var(name, minNameRule); err != nil {
		return &Error{Kind: KindTooShort, Message: `"name" length must be at least 5 characters long`}
	}
	return nil
}
