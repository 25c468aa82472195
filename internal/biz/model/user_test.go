package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProfileKey(t *testing.T) {
	tests := []struct {
		key    string
		wantID int64
		isID   bool
	}{
		{key: "3", wantID: 3, isID: true},
		{key: "0", wantID: 0, isID: true},
		{key: "-5", wantID: -5, isID: true},
		{key: "9223372036854775807", wantID: 9223372036854775807, isID: true},
		{key: "+7"},
		{key: "007"},
		{key: "-0"},
		{key: "9223372036854775808"},
		{key: "alice"},
		{key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, isID := ParseProfileKey(tt.key)
			assert.Equal(t, tt.isID, isID)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
