package gerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewErrAlreadyExists("device already exists")
	err = err.Wrap(fmt.Errorf("unique constraint failed"))
	require.Equal(t, "device already exists: unique constraint failed", err.Error())
	require.Equal(t, "device already exists", err.Message())

	err = err.EDetail("mac", "AA:BB")
	require.Equal(t, "device already exists [mac=AA:BB]: unique constraint failed", err.Error())
	require.Equal(t, "device already exists", err.Message())

	err = err.IDetail("table", "devices")
	require.Equal(t, "device already exists [mac=AA:BB, table=devices]: unique constraint failed", err.Error())
	require.Len(t, err.Details(), 2)
	require.Equal(t, AudienceInternal, err.Details()["table"].Audience())
}

func TestErrorChain(t *testing.T) {
	inner := NewErrNotFound("device not found").EDetail("mac", "CC")
	err := pkgerrors.Wrap(inner, "error reading uplink")

	require.True(t, IsNotFound(err))
	require.False(t, IsAlreadyExists(err))
	require.True(t, HasHTTPStatusCode(err, http.StatusNotFound))
	require.Equal(t, "device not found", ToNotFound(err).Message())

	cause := errors.New("connection reset")
	wrapped := NewErrInternal().Wrap(cause)
	require.Equal(t, ErrCodeInternal, wrapped.Code())
	require.ErrorIs(t, wrapped, cause)
}

func TestNewErrorWithDetailsKeepsInner(t *testing.T) {
	inner := errors.New("boom")
	err := NewErrorWithDetails("failed", Details{"k": NewDetail(AudienceExternal, "k", 1)}, AudienceExternal, ErrCodeValidationFailed, http.StatusBadRequest, inner)
	require.ErrorIs(t, err, inner)
	require.Equal(t, "failed [k=1]: boom", err.Error())
}

func TestMultiError(t *testing.T) {
	var results *multierror.Error

	results = multierror.Append(results, fmt.Errorf("error 1: %w", errors.New("1")))
	results = multierror.Append(results, NewErrCycleDetected("cycle").Wrap(errors.New("2")))
	results = multierror.Append(results, fmt.Errorf("error 3: %w", errors.New("3")))

	err := results.ErrorOrNil()
	require.True(t, IsCycleDetected(err))

	var outerResults *multierror.Error
	outerResults = multierror.Append(err, fmt.Errorf("outer error 1: %w", errors.New("11")))

	outerErr := outerResults.ErrorOrNil()
	require.True(t, IsCycleDetected(outerErr))
}
