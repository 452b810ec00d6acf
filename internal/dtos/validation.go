package dtos

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mmehta29/backend/internal/models"
)

// ValidationProblem classifies why a request body failed binding.
type ValidationProblem int

const (
	ProblemMalformed ValidationProblem = iota
	ProblemMissingField
	ProblemInvalidStatus
	ProblemInvalidDate
)

var registerOnce sync.Once

// Binding a DTO with an unregistered tag panics, so registration happens as
// soon as the package is loaded.
func init() {
	RegisterValidators()
}

// RegisterValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
			return models.Status(fl.Field().String()).IsValid()
		})
	})
}

// Classify reports the most relevant problem in a binding error. Missing fields
// take precedence over invalid values.
func Classify(err error) ValidationProblem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ProblemMalformed
	}

	problem := ProblemMalformed
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return ProblemMissingField
		case "application_status":
			problem = ProblemInvalidStatus
		case "datetime":
			if problem != ProblemInvalidStatus {
				problem = ProblemInvalidDate
			}
		}
	}
	return problem
}
