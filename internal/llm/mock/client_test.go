package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pranavj17/echo/internal/llm"
)

func TestClient_Complete(t *testing.T) {
	client := New().WithResponse("canned answer")

	result, err := client.Complete(context.Background(), "first")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if result != "canned answer" {
		t.Errorf("Complete() = %q, want canned answer", result)
	}

	client.Complete(context.Background(), "second")

	if client.CallCount != 2 {
		t.Errorf("CallCount = %d, want 2", client.CallCount)
	}
	if client.LastPrompt != "second" {
		t.Errorf("LastPrompt = %q, want second", client.LastPrompt)
	}
	if len(client.AllPrompts) != 2 || client.AllPrompts[0] != "first" {
		t.Errorf("AllPrompts = %v, want [first second]", client.AllPrompts)
	}
}

func TestClient_WithError(t *testing.T) {
	client := New().WithError(llm.ErrEmptyCompletion)

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, llm.ErrEmptyCompletion) {
		t.Errorf("Complete() error = %v, want ErrEmptyCompletion", err)
	}
}

func TestClient_DelayHonorsContext(t *testing.T) {
	client := New().WithDelay(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "prompt")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Complete() error = %v, want DeadlineExceeded", err)
	}
}

func TestClient_Reset(t *testing.T) {
	client := New()
	client.Complete(context.Background(), "prompt")
	client.Reset()

	if client.CallCount != 0 || client.LastPrompt != "" || client.AllPrompts != nil {
		t.Error("Reset() did not clear recorded calls")
	}
}
