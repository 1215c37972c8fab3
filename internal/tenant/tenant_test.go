package tenant_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kharcha-app/kharcha/internal/tenant"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "Valid", raw: "4f9b24a3-7c61-4f3e-9d2b-8a1f0c6e5d42", wantErr: false},
		{name: "Empty", raw: "", wantErr: true},
		{name: "NotAUUID", raw: "not-a-uuid", wantErr: true},
		{name: "Truncated", raw: "4f9b24a3-7c61-4f3e-9d2b", wantErr: true},
		{name: "Injection", raw: "'; DROP TABLE expenses; --", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tenant.Parse(tt.raw)

			if tt.wantErr {
				assert.ErrorIs(t, err, tenant.ErrInvalidID)
				assert.Equal(t, uuid.Nil, id)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}
