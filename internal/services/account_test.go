package services

import (
	"encoding/json"
	"testing"

	"github.com/farellandr/ticketservice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountID(t *testing.T) {
	assert.NoError(t, ValidateAccountID(1))
	assert.ErrorIs(t, ValidateAccountID(0), models.ErrInvalidPurchase)
	assert.ErrorIs(t, ValidateAccountID(-1), models.ErrInvalidPurchase)
}

func TestParseAccountID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "integer", raw: `42`, want: 42},
		{name: "padded", raw: ` 7 `, want: 7},
		{name: "zero", raw: `0`, wantErr: true},
		{name: "negative", raw: `-3`, wantErr: true},
		{name: "fraction", raw: `1.5`, wantErr: true},
		{name: "string", raw: `"1"`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "boolean", raw: `true`, wantErr: true},
		{name: "missing", raw: ``, wantErr: true},
		{name: "overflow", raw: `92233720368547758070`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccountID(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.RuleAccountID.Message(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
