// Package forms holds the client-side form models and their validation.
// Validation here is the first line of the error taxonomy: a payload that
// fails it never reaches the network.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
)

var validate = validator.New()

// RegisterForm mirrors the registration form fields as entered: skills and
// certificates are raw comma-separated text, price is raw text.
type RegisterForm struct {
	Name         string `form:"name" validate:"required"`
	Email        string `form:"email" validate:"required,email"`
	Password     string `form:"password" validate:"required"`
	Role         string `form:"role" validate:"required,oneof=worker employer"`
	Price        string `form:"price" validate:"required_if=Role worker"`
	Skills       string `form:"skills"`
	Certificates string `form:"certificates"`
}

// Parse validates the form and shapes it into the wire payload:
// comma-separated fields become trimmed lists (an empty field becomes a
// single empty element, matching the API's expectations) and price becomes
// numeric for workers only.
func (f RegisterForm) Parse() (ports.RegisterInput, error) {
	if err := validate.Struct(f); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return ports.RegisterInput{}, errors.New(joinFieldErrors(ve))
		}
		return ports.RegisterInput{}, err
	}

	in := ports.RegisterInput{
		Name:         f.Name,
		Email:        f.Email,
		Password:     f.Password,
		Role:         f.Role,
		Skills:       SplitList(f.Skills),
		Certificates: SplitList(f.Certificates),
	}

	if f.Role == domain.RoleWorker {
		price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
		if err != nil {
			return ports.RegisterInput{}, errors.New("price must be a number")
		}
		in.Price = &price
	}

	return in, nil
}

// JobForm is the employer's job-creation form. Both fields are required;
// an empty one blocks the request before any network call.
type JobForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// Parse validates the form.
func (f JobForm) Parse() error {
	if err := validate.Struct(f); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return domain.ErrEmptyJobForm
		}
		return err
	}
	return nil
}

// SplitList splits comma-separated input into trimmed elements. Empty input
// yields a single empty element, which is what the registration endpoint
// expects for an omitted field.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func joinFieldErrors(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "required_if":
			msgs = append(msgs, field+" is required for this role")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
