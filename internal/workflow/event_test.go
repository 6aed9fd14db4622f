package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend_NilChannel_NoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		Send(context.Background(), nil, DoneEvent{})
	})
}

func TestSend_Delivers(t *testing.T) {
	events := make(chan Event, 1)
	Send(context.Background(), events, ThinkingEvent{Round: 1})
	assert.Equal(t, ThinkingEvent{Round: 1}, <-events)
}

func TestSend_CancelledContext_DoesNotBlock(t *testing.T) {
	events := make(chan Event) // unbuffered, nobody reading
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Send(ctx, events, DoneEvent{})
}
