package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{"string", `"1"`, "1", false},
		{"number", `42`, "42", false},
		{"big number", `9007199254740993`, "9007199254740993", false},
		{"null", `null`, "", false},
		{"bool", `true`, "", true},
		{"object", `{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestUser_DecodesBothIDForms(t *testing.T) {
	var mock, real User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","email":"a@x.com","username":"u","name":"n"}`), &mock))
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"email":"a@x.com","username":"u","name":"n"}`), &real))
	assert.Equal(t, mock, real)
}
