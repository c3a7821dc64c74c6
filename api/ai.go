package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// AIService calls the platform's AI endpoints. Scoring and generation
// are entirely server-side; the client only ships prompts and renders
// replies.
type AIService struct {
	client *Client
}

// InterviewQuestionsRequest asks for practice interview questions.
type InterviewQuestionsRequest struct {
	Role     string `json:"role"`
	Level    string `json:"level"`
	Language string `json:"language,omitempty"`
}

// InterviewQuestionsResponse is the generated question set.
type InterviewQuestionsResponse struct {
	Questions []string `json:"questions"`
	Scenario  string   `json:"scenario"`
}

// InterviewQuestions generates practice interview questions for a role.
func (s *AIService) InterviewQuestions(ctx context.Context, req InterviewQuestionsRequest) (InterviewQuestionsResponse, error) {
	var out InterviewQuestionsResponse
	if err := s.client.do(ctx, http.MethodPost, "/ai/interview-questions", req, &out); err != nil {
		return InterviewQuestionsResponse{}, fmt.Errorf("failed to generate interview questions: %w", err)
	}
	return out, nil
}

// ApplicationAnalysisRequest asks for feedback on a task application.
type ApplicationAnalysisRequest struct {
	TaskID   string `json:"task_id"`
	Proposal string `json:"proposal"`
}

// ApplicationAnalysis is the server's scored feedback.
type ApplicationAnalysis struct {
	Feedback        string      `json:"feedback"`
	Score           json.Number `json:"score,omitempty"`
	Recommendations string      `json:"recommendations,omitempty"`
}

// AnalyzeApplication scores a proposal against a task.
func (s *AIService) AnalyzeApplication(ctx context.Context, req ApplicationAnalysisRequest) (ApplicationAnalysis, error) {
	var out ApplicationAnalysis
	if err := s.client.do(ctx, http.MethodPost, "/ai/analyze-application", req, &out); err != nil {
		return ApplicationAnalysis{}, fmt.Errorf("failed to analyze application: %w", err)
	}
	return out, nil
}

// TaskRecommendations fetches tasks the backend thinks fit the caller.
func (s *AIService) TaskRecommendations(ctx context.Context) ([]models.Task, error) {
	var out struct {
		Recommendations []models.Task `json:"recommendations"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/ai/task-recommendations", struct{}{}, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch task recommendations: %w", err)
	}
	return out.Recommendations, nil
}

// AssistantRequest is one turn of the smart-assistant chat.
type AssistantRequest struct {
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
	Language string `json:"language,omitempty"`
}

// AssistantResponse is the assistant's reply text.
type AssistantResponse struct {
	Reply string `json:"reply"`
}

// SmartAssistant sends one chat message and returns the reply.
func (s *AIService) SmartAssistant(ctx context.Context, req AssistantRequest) (AssistantResponse, error) {
	var out AssistantResponse
	if err := s.client.do(ctx, http.MethodPost, "/ai/smart-assistant", req, &out); err != nil {
		return AssistantResponse{}, fmt.Errorf("assistant request failed: %w", err)
	}
	return out, nil
}

// ComplexityRequest describes a task for complexity scoring.
type ComplexityRequest struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	SkillsRequired []string    `json:"skills_required"`
	Deadline       string      `json:"deadline,omitempty"`
	BudgetMin      json.Number `json:"budget_min,omitempty"`
	BudgetMax      json.Number `json:"budget_max,omitempty"`
}

// ComplexityAnalysis is the server's estimate of task difficulty.
type ComplexityAnalysis struct {
	ComplexityLevel   int         `json:"complexity_level"`
	EstimatedHours    json.Number `json:"estimated_hours"`
	SuggestedMinPrice json.Number `json:"suggested_min_price"`
	SuggestedMaxPrice json.Number `json:"suggested_max_price"`
	RequiredSkills    []string    `json:"required_skills"`
	RiskFactors       []string    `json:"risk_factors"`
	MarketDemand      string      `json:"market_demand"`
	ConfidenceScore   json.Number `json:"confidence_score"`
}

// AnalyzeTaskComplexity scores a task draft.
func (s *AIService) AnalyzeTaskComplexity(ctx context.Context, req ComplexityRequest) (ComplexityAnalysis, error) {
	var out ComplexityAnalysis
	if err := s.client.do(ctx, http.MethodPost, "/ai/analyze-task-complexity", req, &out); err != nil {
		return ComplexityAnalysis{}, fmt.Errorf("failed to analyze task complexity: %w", err)
	}
	return out, nil
}

// TimelineRequest asks for a generated project plan.
type TimelineRequest struct {
	TaskID      string `json:"task_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// TimelinePhase is one phase of a generated plan.
type TimelinePhase struct {
	Name     string `json:"name"`
	Days     int    `json:"days"`
	Deliver  string `json:"deliverable,omitempty"`
	StartDay int    `json:"start_day,omitempty"`
}

// Timeline is the generated project plan.
type Timeline struct {
	Phases    []TimelinePhase `json:"phases"`
	TotalDays int             `json:"total_days"`
}

// GenerateProjectTimeline builds a phased plan for a task.
func (s *AIService) GenerateProjectTimeline(ctx context.Context, req TimelineRequest) (Timeline, error) {
	var out Timeline
	if err := s.client.do(ctx, http.MethodPost, "/ai/generate-project-timeline", req, &out); err != nil {
		return Timeline{}, fmt.Errorf("failed to generate project timeline: %w", err)
	}
	return out, nil
}

// Health reports whether the AI backend is reachable.
func (s *AIService) Health(ctx context.Context) error {
	if err := s.client.do(ctx, http.MethodGet, "/ai/health", nil, nil); err != nil {
		return fmt.Errorf("ai health check failed: %w", err)
	}
	return nil
}
