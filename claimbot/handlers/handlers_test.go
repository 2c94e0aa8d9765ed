package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_echoReply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{name: "Text", content: "hello there", want: "You said: hello there", wantOK: true},
		{name: "Command", content: "/dailyclaim", wantOK: false},
		{name: "Blank", content: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := echoReply(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_logResult(t *testing.T) {
	errBoom := errors.New("boom")

	assert.NoError(t, logResult(nil, time.Millisecond, nil))
	assert.NoError(t, logResult(nil, 3*time.Second, nil))
	assert.ErrorIs(t, logResult(errBoom, time.Millisecond, nil), errBoom)
}
