package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `12.5`, want: 12.5},
		{name: "integer", in: `3`, want: 3},
		{name: "numeric string", in: `"12.50"`, want: 12.5},
		{name: "padded string", in: `" 12.50 "`, want: 12.5},
		{name: "empty string", in: `""`, want: 0},
		{name: "null keeps zero", in: `null`, want: 0},
		{name: "negative", in: `"-4"`, want: -4},
		{name: "not a number", in: `"twelve"`, wantErr: true},
		{name: "boolean", in: `true`, wantErr: true},
		{name: "nan", in: `"NaN"`, wantErr: true},
		{name: "inf", in: `"Inf"`, wantErr: true},
		{name: "negative infinity", in: `"-Infinity"`, wantErr: true},
		{name: "overflow", in: `"1e400"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Price Amount `json:"price"`
			}
			err := json.Unmarshal([]byte(`{"price":`+tt.in+`}`), &got)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, got.Price)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Price.Float())
		})
	}
}

func TestAmount_NotFiniteIsSentinel(t *testing.T) {
	var a Amount
	err := a.UnmarshalJSON([]byte(`"NaN"`))
	assert.ErrorIs(t, err, ErrAmountNotFinite)
}

func TestAmount_PointerFieldStaysNilWhenAbsent(t *testing.T) {
	var got struct {
		Price *Amount `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &got))
	assert.Nil(t, got.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":"7.25"}`), &got))
	require.NotNil(t, got.Price)
	assert.Equal(t, 7.25, got.Price.Float())
}
