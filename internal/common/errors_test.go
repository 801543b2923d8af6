package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
)

func TestToStatusError(t *testing.T) {
	dup := &common.DuplicateFileError{UserID: uuid.New().String(), Checksum: "abc", FileID: uuid.New().String()}

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"nil", nil, codes.OK},
		{"duplicate", dup, codes.AlreadyExists},
		{"illegal state", common.NewIllegalStateError("Cannot approve from state %s", "CREATED"), codes.FailedPrecondition},
		{"illegal argument", common.NewIllegalArgumentError("amount must be greater than zero"), codes.InvalidArgument},
		{"not found", &common.NotFoundError{Kind: "bill", ID: uuid.New().String()}, codes.NotFound},
		{"unknown status", &constants.UnknownStatusError{Raw: "garbage"}, codes.Internal},
		{"plain error", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := common.ToStatusError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.code, status.Code(got))
		})
	}
}

func TestToStatusError_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("approve inbox item: %w", common.NewIllegalStateError("Cannot approve from state %s", "FAILED"))
	assert.Equal(t, codes.FailedPrecondition, status.Code(common.ToStatusError(wrapped)))
}

func TestToStatusError_IllegalStateHidesDetail(t *testing.T) {
	got := common.ToStatusError(common.NewIllegalStateError("Cannot remove bill from state REMOVED"))
	st, ok := status.FromError(got)
	require.True(t, ok)
	assert.Equal(t, "cannot perform this action now", st.Message())
}

func TestIllegalArgumentErrorMessage(t *testing.T) {
	err := common.NewIllegalArgumentError("amount cannot be negative")
	assert.EqualError(t, err, "amount cannot be negative")
}
