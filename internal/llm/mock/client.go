package mock

import (
	"context"
	"time"

	"github.com/Pranavj17/echo/internal/llm"
)

type Client struct {
	Response string
	Error    error
	Delay    time.Duration

	CallCount  int
	LastPrompt string
	AllPrompts []string
}

func New() *Client {
	return &Client{
		Response: "This is a mock completion.",
	}
}

func (c *Client) WithResponse(response string) *Client {
	c.Response = response
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) WithDelay(delay time.Duration) *Client {
	c.Delay = delay
	return c
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.CallCount++
	c.LastPrompt = prompt
	c.AllPrompts = append(c.AllPrompts, prompt)

	if c.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	if c.Error != nil {
		return "", c.Error
	}

	return c.Response, nil
}

func (c *Client) Reset() {
	c.CallCount = 0
	c.LastPrompt = ""
	c.AllPrompts = nil
}

var _ llm.Client = (*Client)(nil)
