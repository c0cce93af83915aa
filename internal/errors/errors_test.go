package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "wrap", err: Wrap(errSentinel, "loading user"), msg: "loading user: sentinel"},
		{name: "wrapf", err: Wrapf(errSentinel, "loading user %d", 7), msg: "loading user 7: sentinel"},
		{name: "with stack", err: WithStack(errSentinel), msg: "sentinel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, errSentinel))
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.Contains(t, fmt.Sprintf("%+v", tt.err), "errors_test.go")
		})
	}
}

func TestErrorfHasStack(t *testing.T) {
	err := Errorf("unknown provider: %s", "kafka")

	assert.Equal(t, "unknown provider: kafka", err.Error())
	assert.False(t, Is(err, errSentinel))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorfHasStack")
}
