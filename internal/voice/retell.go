package voice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.retellai.com"

// RetellClient implements Client against the Retell HTTP API.
type RetellClient struct {
	http *resty.Client
}

// NewRetellClient constructs a RetellClient. baseURL may be empty for the
// production endpoint.
func NewRetellClient(apiKey, baseURL string) (*RetellClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("RETELL_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &RetellClient{http: client}, nil
}

type createWebCallRequest struct {
	AgentID          string            `json:"agent_id"`
	DynamicVariables map[string]string `json:"retell_llm_dynamic_variables,omitempty"`
}

// CreateWebCall originates a web call. Failures are never retried here: a
// duplicate live call is worse than a surfaced error.
func (c *RetellClient) CreateWebCall(ctx context.Context, input RegisterCallInput) (RegisterCallResponse, error) {
	var out RegisterCallResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createWebCallRequest{
			AgentID:          input.AgentID,
			DynamicVariables: input.DynamicVariables,
		}).
		SetResult(&out).
		Post("/v2/create-web-call")
	if err != nil {
		return RegisterCallResponse{}, fmt.Errorf("create web call: %w", err)
	}
	if resp.IsError() {
		return RegisterCallResponse{}, fmt.Errorf("create web call: status %d: %s", resp.StatusCode(), resp.String())
	}
	return out, nil
}

// ListAgents returns all provisioned agents.
func (c *RetellClient) ListAgents(ctx context.Context) ([]Agent, error) {
	var out []Agent
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/list-agents")
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list agents: status %d: %s", resp.StatusCode(), resp.String())
	}
	return out, nil
}

type createLLMRequest struct {
	Model         string `json:"model"`
	GeneralPrompt string `json:"general_prompt"`
}

type createLLMResponse struct {
	LLMID string `json:"llm_id"`
}

type createAgentRequest struct {
	ResponseEngine responseEngine `json:"response_engine"`
	VoiceID        string         `json:"voice_id"`
	AgentName      string         `json:"agent_name"`
}

type responseEngine struct {
	LLMID string `json:"llm_id"`
	Type  string `json:"type"`
}

// CreateAgent provisions a conversation model plus an agent wired to it.
func (c *RetellClient) CreateAgent(ctx context.Context, name, voiceID, generalPrompt string) (Agent, error) {
	var llmOut createLLMResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createLLMRequest{Model: "gpt-5", GeneralPrompt: generalPrompt}).
		SetResult(&llmOut).
		Post("/create-retell-llm")
	if err != nil {
		return Agent{}, fmt.Errorf("create llm: %w", err)
	}
	if resp.IsError() {
		return Agent{}, fmt.Errorf("create llm: status %d: %s", resp.StatusCode(), resp.String())
	}

	var agent Agent
	resp, err = c.http.R().
		SetContext(ctx).
		SetBody(createAgentRequest{
			ResponseEngine: responseEngine{LLMID: llmOut.LLMID, Type: "retell-llm"},
			VoiceID:        voiceID,
			AgentName:      name,
		}).
		SetResult(&agent).
		Post("/create-agent")
	if err != nil {
		return Agent{}, fmt.Errorf("create agent: %w", err)
	}
	if resp.IsError() {
		return Agent{}, fmt.Errorf("create agent: status %d: %s", resp.StatusCode(), resp.String())
	}
	return agent, nil
}

var _ Client = (*RetellClient)(nil)
