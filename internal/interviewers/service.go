package interviewers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/voice"
)

const agentGeneralPrompt = `You are an interviewer who is an expert in asking follow up questions to uncover deeper insights. You have to keep the interview for {{mins}} or short.

The name of the person you are interviewing is {{name}}.

The interview objective is {{objective}}.

These are some of the questions you can ask: {{questions}}

Once you ask a question, make sure you ask a follow up question on it. Keep the conversation professional and focused on the candidate's experience and skills.`

// Persona is a default interviewer to provision on first run.
type Persona struct {
	Name        string
	VoiceID     string
	Description string
	Empathy     int
	Rapport     int
	Exploration int
	Speed       int
}

var defaultPersonas = []Persona{
	{Name: "Lisa", VoiceID: "11labs-Chloe", Description: "Empathetic explorer focused on communication and motivation.", Empathy: 7, Rapport: 7, Exploration: 7, Speed: 3},
	{Name: "Bob", VoiceID: "11labs-Brian", Description: "Direct technical screener focused on depth and problem-solving.", Empathy: 3, Rapport: 3, Exploration: 9, Speed: 7},
}

// Service provisions interviewers against the voice platform.
type Service struct {
	Repo  Repo
	Voice voice.Client
}

// Sync ensures every default persona has a provisioned voice agent and a
// local interviewer record. Already-provisioned agents are skipped by name.
func (s *Service) Sync(ctx context.Context) ([]Interviewer, error) {
	existing, err := s.Voice.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	existingNames := make(map[string]struct{}, len(existing))
	for _, agent := range existing {
		existingNames[agent.AgentName] = struct{}{}
	}

	var created []Interviewer
	for _, persona := range defaultPersonas {
		if _, ok := existingNames[persona.Name]; ok {
			telemetry.Info("interviewers.sync.skipped", map[string]any{"name": persona.Name})
			continue
		}

		agent, err := s.Voice.CreateAgent(ctx, persona.Name, persona.VoiceID, agentGeneralPrompt)
		if err != nil {
			return created, fmt.Errorf("create agent %s: %w", persona.Name, err)
		}

		interviewer := Interviewer{
			ID:          uuid.NewString(),
			CreatedAt:   time.Now().UTC(),
			Name:        persona.Name,
			AgentID:     agent.AgentID,
			VoiceID:     persona.VoiceID,
			Description: persona.Description,
			Empathy:     persona.Empathy,
			Rapport:     persona.Rapport,
			Exploration: persona.Exploration,
			Speed:       persona.Speed,
		}
		if err := s.Repo.Create(ctx, interviewer); err != nil {
			return created, fmt.Errorf("save interviewer %s: %w", persona.Name, err)
		}
		created = append(created, interviewer)
	}
	return created, nil
}
