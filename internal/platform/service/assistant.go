package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/openintel/mdip/internal/platform/store"
)

// Domain labels the assistant (and the dashboard) group records under.
const (
	DomainCybersecurity = "Cybersecurity"
	DomainDataScience   = "Data Science"
	DomainITOperations  = "IT Operations"
)

// AssistantClient talks to a conversational AI endpoint following the Gemini
// generateContent wire shape. It keeps a running message history so follow-up
// questions see earlier turns.
type AssistantClient struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client

	mu      sync.Mutex
	history []AssistantMessage
}

type AssistantMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

func NewAssistantClient(endpoint, apiKey, model string) *AssistantClient {
	return &AssistantClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// wire types for the generateContent request/response
type genPart struct {
	Text string `json:"text"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genRequest struct {
	SystemInstruction *genContent  `json:"system_instruction,omitempty"`
	Contents          []genContent `json:"contents"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// SendMessage forwards the user message plus a delimited snapshot of the
// relevant table and returns the model's text reply. Both the question and
// the reply are appended to the history.
func (a *AssistantClient) SendMessage(ctx context.Context, userMessage, category, dataText string) (string, error) {
	a.mu.Lock()
	contents := make([]genContent, 0, len(a.history)+2)
	for _, m := range a.history {
		contents = append(contents, genContent{Role: m.Role, Parts: []genPart{{Text: m.Text}}})
	}
	a.mu.Unlock()

	contents = append(contents,
		genContent{Role: "user", Parts: []genPart{{Text: userMessage}}},
		genContent{Role: "user", Parts: []genPart{{Text: fmt.Sprintf("Here is the %s table:\n%s", category, dataText)}}},
	)

	reqBody := genRequest{
		SystemInstruction: &genContent{
			Parts: []genPart{{Text: fmt.Sprintf("You are an %s data analyst. Your name is Gem.", category)}},
		},
		Contents: contents,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.endpoint, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("assistant: endpoint returned %d: %s", resp.StatusCode, body)
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("assistant: decoding response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant: empty response")
	}

	var reply string
	for _, part := range out.Candidates[0].Content.Parts {
		reply += part.Text
	}

	a.mu.Lock()
	a.history = append(a.history,
		AssistantMessage{Role: "user", Text: userMessage},
		AssistantMessage{Role: "model", Text: reply},
	)
	a.mu.Unlock()

	return reply, nil
}

// ClearHistory drops all remembered turns.
func (a *AssistantClient) ClearHistory() {
	a.mu.Lock()
	a.history = nil
	a.mu.Unlock()
}

// History returns a copy of the remembered turns.
func (a *AssistantClient) History() []AssistantMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AssistantMessage, len(a.history))
	copy(out, a.history)
	return out
}

// AssistantService glues the store to the assistant client: it serializes the
// table for the requested domain to CSV and forwards it with the question.
type AssistantService struct {
	Store  store.Store
	Client *AssistantClient
}

// Ask answers a question about one domain's records.
func (s *AssistantService) Ask(ctx context.Context, message, domainLabel string) (string, error) {
	dataText, err := s.tableSnapshot(ctx, domainLabel)
	if err != nil {
		return "", err
	}
	return s.Client.SendMessage(ctx, message, domainLabel, dataText)
}

func (s *AssistantService) tableSnapshot(ctx context.Context, domainLabel string) (string, error) {
	switch domainLabel {
	case DomainCybersecurity:
		incidents, err := s.Store.Incidents().List(ctx)
		if err != nil {
			return "", err
		}
		return IncidentsCSV(incidents), nil
	case DomainDataScience:
		datasets, err := s.Store.Datasets().List(ctx)
		if err != nil {
			return "", err
		}
		return DatasetsCSV(datasets), nil
	case DomainITOperations:
		tickets, err := s.Store.Tickets().List(ctx)
		if err != nil {
			return "", err
		}
		return TicketsCSV(tickets), nil
	}
	return "", fmt.Errorf("assistant: unknown domain %q", domainLabel)
}
