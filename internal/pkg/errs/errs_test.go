package errs_test

import (
	"errors"
	"testing"

	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("progress", 150, 0, 100)

		assert.Equal(t, "progress", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is progress, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("shipmentCompany")

		assert.Equal(t, "shipmentCompany", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: shipmentCompany", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("shipmentCompany", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: shipmentCompany (cause: missing required field)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Submitted", "Completed")

		assert.Equal(t, "Submitted", err.From)
		assert.Equal(t, "Completed", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: Submitted -> Completed", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is terminal")
		err := errs.NewInvalidTransitionErrorWithCause("Cancelled", "Designing", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid transition: Cancelled -> Designing (cause: order is terminal)", err.Error())
	})
}

func TestPreconditionNotMetError(t *testing.T) {
	err := errs.NewPreconditionNotMetError("prepress sub-processes incomplete")

	assert.Equal(t, "prepress sub-processes incomplete", err.Reason)
	assert.Equal(t, "precondition not met: prepress sub-processes incomplete", err.Error())
	assert.Equal(t, errs.ErrPreconditionNotMet, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("Courier", "transition to Designing")

	assert.Equal(t, "Courier", err.Role)
	assert.Equal(t, "transition to Designing", err.Action)
	assert.Equal(t, "unauthorized: role Courier cannot transition to Designing", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", "abc", 3)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "abc", err.ID)
	assert.Equal(t, int64(3), err.Version)
	assert.Equal(t, "concurrent modification: order abc at version 3", err.Error())
	assert.Equal(t, errs.ErrConcurrentModification, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("progress", 150, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("mode"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("test")), errs.ErrVersionIsInvalid)
		require.ErrorIs(t, errs.NewInvalidTransitionError("Submitted", "Completed"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewPreconditionNotMetError("reason"), errs.ErrPreconditionNotMet)
		require.ErrorIs(t, errs.NewUnauthorizedError("Client", "assign"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewConcurrentModificationError("order", "abc", 1), errs.ErrConcurrentModification)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "precondition not met", errs.ErrPreconditionNotMet.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	})
}
