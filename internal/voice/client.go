package voice

import (
	"context"
	"errors"
)

// Agent is a provisioned voice agent on the calling platform.
type Agent struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	VoiceID   string `json:"voice_id"`
}

// RegisterCallInput carries everything needed to originate a web call.
type RegisterCallInput struct {
	AgentID          string
	DynamicVariables map[string]string
}

// RegisterCallResponse is the platform's response to call origination.
type RegisterCallResponse struct {
	CallID      string `json:"call_id"`
	AgentID     string `json:"agent_id"`
	AccessToken string `json:"access_token"`
	CallStatus  string `json:"call_status"`
}

// Client abstracts the voice-agent calling platform.
type Client interface {
	CreateWebCall(ctx context.Context, input RegisterCallInput) (RegisterCallResponse, error)
	ListAgents(ctx context.Context) ([]Agent, error)
	CreateAgent(ctx context.Context, name, voiceID, generalPrompt string) (Agent, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("voice platform not configured")

// PlaceholderClient stands in when no platform key is configured.
type PlaceholderClient struct{}

func (PlaceholderClient) CreateWebCall(ctx context.Context, input RegisterCallInput) (RegisterCallResponse, error) {
	_ = ctx
	_ = input
	return RegisterCallResponse{}, ErrNotConfigured
}

func (PlaceholderClient) ListAgents(ctx context.Context) ([]Agent, error) {
	_ = ctx
	return nil, ErrNotConfigured
}

func (PlaceholderClient) CreateAgent(ctx context.Context, name, voiceID, generalPrompt string) (Agent, error) {
	_, _, _ = name, voiceID, generalPrompt
	_ = ctx
	return Agent{}, ErrNotConfigured
}
