package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		requester uint
		owner     uint
		want      error
	}{
		{"anonymous", 0, 7, ErrAuthRequired},
		{"not owner", 3, 7, ErrNotAuthorized},
		{"owner", 7, 7, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.requester, tt.owner)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
