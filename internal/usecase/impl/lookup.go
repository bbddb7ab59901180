// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"strings"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the validate tags of an input DTO.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// findCustomer resolves a customer ID against the registry.
func findCustomer(ctx context.Context, repo repository.CustomerRepository, customerID int) (*entity.Customer, error) {
	customer, err := repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithDetails(fmt.Sprintf("id %d", customerID))
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// findSalesRep resolves a sales representative ID against the registry.
func findSalesRep(ctx context.Context, repo repository.SalesRepRepository, repID int) (*entity.SalesRepresentative, error) {
	rep, err := repo.FindByID(ctx, repID)
	if err != nil {
		if errors.Is(err, repository.ErrSalesRepNotFound) {
			return nil, domainerrors.ErrSalesRepNotFound.WithDetails(fmt.Sprintf("id %d", repID))
		}

		return nil, errors.Wrap(err, "failed to find sales representative")
	}

	return rep, nil
}
