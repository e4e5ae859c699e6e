package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/pkg/util"
)

func TestCatwayCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      CatwayCreateRequest
		want     CatwayCreate
		wantErrs []util.FieldError
	}{
		{
			name: "valid",
			req:  CatwayCreateRequest{CatwayNumber: "12", Type: "long", CatwayState: "bon état"},
			want: CatwayCreate{CatwayNumber: 12, Type: domain.CatwayTypeLong, CatwayState: "bon état"},
		},
		{
			name: "type case-normalized",
			req:  CatwayCreateRequest{CatwayNumber: "3", Type: "Long"},
			want: CatwayCreate{CatwayNumber: 3, Type: domain.CatwayTypeLong},
		},
		{
			name: "both fields invalid in declaration order",
			req:  CatwayCreateRequest{CatwayNumber: "x", Type: "bogus"},
			wantErrs: []util.FieldError{
				{Field: "catwayNumber", Message: "catwayNumber must be an integer"},
				{Field: "type", Message: `type must be "long" or "short"`},
			},
		},
		{
			name: "missing type",
			req:  CatwayCreateRequest{CatwayNumber: "7"},
			wantErrs: []util.FieldError{
				{Field: "type", Message: `type must be "long" or "short"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := tt.req.Validate()
			if tt.wantErrs != nil {
				assert.Equal(t, tt.wantErrs, errs)
				return
			}
			require.Nil(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A JSON number and a JSON string carrying the same digits validate the
// same way.
func TestCatwayCreateRequest_NumericBody(t *testing.T) {
	var req CatwayCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"catwayNumber":12,"type":"short","catwayState":"ok"}`), &req))

	got, errs := req.Validate()
	require.Nil(t, errs)
	assert.Equal(t, CatwayCreate{CatwayNumber: 12, Type: domain.CatwayTypeShort, CatwayState: "ok"}, got)
}

func TestCatwayUpdateRequest_Validate(t *testing.T) {
	t.Run("zero number ignored", func(t *testing.T) {
		patch, errs := CatwayUpdateRequest{CatwayNumber: "0"}.Validate()
		require.Nil(t, errs)
		assert.Nil(t, patch.CatwayNumber)
	})

	t.Run("blank fields absent", func(t *testing.T) {
		patch, errs := CatwayUpdateRequest{}.Validate()
		require.Nil(t, errs)
		assert.Nil(t, patch.CatwayNumber)
		assert.Nil(t, patch.Type)
		assert.Nil(t, patch.CatwayState)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		_, errs := CatwayUpdateRequest{Type: "medium"}.Validate()
		assert.Equal(t, []util.FieldError{
			{Field: "type", Message: `type must be "long" or "short"`},
		}, errs)
	})

	t.Run("state patched", func(t *testing.T) {
		patch, errs := CatwayUpdateRequest{CatwayNumber: "4", CatwayState: "réparation"}.Validate()
		require.Nil(t, errs)
		require.NotNil(t, patch.CatwayNumber)
		assert.Equal(t, 4, *patch.CatwayNumber)
		require.NotNil(t, patch.CatwayState)
		assert.Equal(t, "réparation", *patch.CatwayState)
	})
}
