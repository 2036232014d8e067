package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// CandidateGateway produces candidate dishes from an external model.
type CandidateGateway interface {
	GenerateCandidates(p CandidatePrompt) ([]CandidateDish, error)
}

type GeminiService struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   "gemini-2.0-flash",
		BaseURL: "https://generativelanguage.googleapis.com",
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type GeminiRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// CandidatePrompt is everything the model needs to invent dishes for one
// suggestion request.
type CandidatePrompt struct {
	MealType      string
	Cuisine       string
	MinCals       int
	MaxCals       int
	DietaryNotes  string
	RecentHistory []string
	Insight       string
}

func (s *GeminiService) prompt(text string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := GeminiRequest{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	resp, err := s.Client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	var gr GeminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %v", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// cleanLLMResponse strips markdown fences and trims to the outermost JSON
// array or object, since the model often wraps its answer in ```json blocks.
func cleanLLMResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexAny(cleaned, "[{")
	if start == -1 {
		return cleaned
	}
	var end int
	if cleaned[start] == '[' {
		end = strings.LastIndex(cleaned, "]")
	} else {
		end = strings.LastIndex(cleaned, "}")
	}
	if end > start {
		cleaned = cleaned[start : end+1]
	}
	return cleaned
}

func (s *GeminiService) GenerateCandidates(p CandidatePrompt) ([]CandidateDish, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggest 8 %s dishes", p.MealType))
	if p.Cuisine != "" {
		sb.WriteString(fmt.Sprintf(" from %s cuisine", p.Cuisine))
	}
	sb.WriteString(fmt.Sprintf(" between %d and %d calories per serving.\n", p.MinCals, p.MaxCals))
	if p.DietaryNotes != "" {
		sb.WriteString(fmt.Sprintf("Dietary notes: %s.\n", p.DietaryNotes))
	}
	if len(p.RecentHistory) > 0 {
		sb.WriteString(fmt.Sprintf("Recently eaten (avoid repeating): %s.\n", strings.Join(p.RecentHistory, ", ")))
	}
	if p.Insight != "" {
		sb.WriteString(fmt.Sprintf("What we know about this eater: %s\n", p.Insight))
	}
	sb.WriteString(`Respond with ONLY a JSON array, no markdown, where each element is {"dish": string, "estimated_cals": number, "focus": string}.`)

	raw, err := s.prompt(sb.String())
	if err != nil {
		return nil, err
	}

	var dishes []CandidateDish
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &dishes); err != nil {
		return nil, fmt.Errorf("failed to parse candidate list: %v", err)
	}
	for i := range dishes {
		if dishes[i].MealType == "" {
			dishes[i].MealType = p.MealType
		}
	}
	return dishes, nil
}

// GenerateCategoryIdeas asks the model for a few fresh dishes to add to one
// category of the menu, avoiding what is already there.
func (s *GeminiService) GenerateCategoryIdeas(category string, current []string, dietaryNotes string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggest 3 new dishes for a personal menu category called %q.\n", category))
	if len(current) > 0 {
		sb.WriteString(fmt.Sprintf("Already on the menu: %s.\n", strings.Join(current, ", ")))
	}
	if dietaryNotes != "" {
		sb.WriteString(fmt.Sprintf("Dietary notes: %s.\n", dietaryNotes))
	}
	sb.WriteString("Respond with ONLY a JSON array of dish name strings, no markdown.")

	raw, err := s.prompt(sb.String())
	if err != nil {
		return nil, err
	}
	var ideas []string
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &ideas); err != nil {
		return nil, fmt.Errorf("failed to parse idea list: %v", err)
	}
	return ideas, nil
}
