package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiStub(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":"boom"}`))
			return
		}
		resp := `{"candidates":[{"content":{"parts":[{"text":` + text + `}]}}]}`
		w.Write([]byte(resp))
	}))
}

func stubbedService(url string) *GeminiService {
	return &GeminiService{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: url,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerateCandidatesParsesFencedJSON(t *testing.T) {
	// model wraps the array in a markdown fence, which must be stripped
	text := `"` + "```json\\n[{\\\"dish\\\": \\\"Uttapam\\\", \\\"estimated_cals\\\": 320, \\\"focus\\\": \\\"south indian\\\"}]\\n```" + `"`
	srv := geminiStub(t, http.StatusOK, text)
	defer srv.Close()

	svc := stubbedService(srv.URL)
	dishes, err := svc.GenerateCandidates(CandidatePrompt{MealType: "breakfast", MinCals: 300, MaxCals: 500})
	require.NoError(t, err)

	require.Len(t, dishes, 1)
	assert.Equal(t, "Uttapam", dishes[0].Dish)
	assert.Equal(t, 320, dishes[0].EstimatedCals)
	assert.Equal(t, "breakfast", dishes[0].MealType) // backfilled from prompt
}

func TestGenerateCandidatesMalformedBody(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, `"this is not json at all"`)
	defer srv.Close()

	svc := stubbedService(srv.URL)
	_, err := svc.GenerateCandidates(CandidatePrompt{MealType: "lunch"})
	assert.Error(t, err)
}

func TestGenerateCandidatesNon200(t *testing.T) {
	srv := geminiStub(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	svc := stubbedService(srv.URL)
	_, err := svc.GenerateCandidates(CandidatePrompt{MealType: "lunch"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateCandidatesMissingKey(t *testing.T) {
	svc := &GeminiService{Model: "gemini-2.0-flash", Client: http.DefaultClient}
	_, err := svc.GenerateCandidates(CandidatePrompt{MealType: "dinner"})
	assert.Error(t, err)
}

func TestGenerateCategoryIdeas(t *testing.T) {
	text := `"[\"Tiramisu\", \"Rasmalai\", \"Baklava\"]"`
	srv := geminiStub(t, http.StatusOK, text)
	defer srv.Close()

	svc := stubbedService(srv.URL)
	ideas, err := svc.GenerateCategoryIdeas("Desserts", []string{"Brownie"}, "no eggs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tiramisu", "Rasmalai", "Baklava"}, ideas)
}

func TestCleanLLMResponse(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n[1,2]\n```", "[1,2]"},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`Sure! Here you go: [{"dish":"x"}] hope that helps`, `[{"dish":"x"}]`},
		{"[1,2]", "[1,2]"},
		{"no json here", "no json here"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanLLMResponse(tc.in), tc.in)
	}
}
