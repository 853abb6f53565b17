package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/prompts"
)

// Client is the Gemini generation adapter. Structured operations request
// JSON output constrained by a response schema and unmarshal it directly;
// bounds the schema cannot express are checked after decoding.
type Client struct {
	client  *genai.Client
	config  *Config
	prompts prompts.PromptProvider
}

func NewClient(config *Config, promptManager prompts.PromptProvider) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client:  client,
		config:  config,
		prompts: promptManager,
	}, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

var questionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"difficulty":        {Type: genai.TypeString, Enum: []string{"Easy", "Medium", "Hard"}},
		"estimatedDuration": {Type: genai.TypeString},
	},
	Required: []string{"questions", "difficulty", "estimatedDuration"},
}

var evaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":            {Type: genai.TypeInteger},
		"feedback":         {Type: genai.TypeString},
		"strengths":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"improvements":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"followUpQuestion": {Type: genai.TypeString},
		"shouldContinue":   {Type: genai.TypeBoolean},
	},
	Required: []string{"score", "feedback", "strengths", "improvements", "shouldContinue"},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"totalScore": {Type: genai.TypeInteger},
		"categoryScores": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"score":    {Type: genai.TypeInteger},
					"feedback": {Type: genai.TypeString},
				},
				Required: []string{"name", "score", "feedback"},
			},
		},
		"strengths":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"areasForImprovement": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recommendations":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"overallFeedback":     {Type: genai.TypeString},
		"interviewDuration":   {Type: genai.TypeString},
		"questionsAnswered":   {Type: genai.TypeInteger},
	},
	Required: []string{"totalScore", "categoryScores", "strengths", "areasForImprovement", "recommendations", "overallFeedback", "questionsAnswered"},
}

var resumeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":           {Type: genai.TypeInteger},
		"summary":         {Type: genai.TypeString},
		"strengths":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"gaps":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"score", "summary", "strengths", "gaps", "recommendations"},
}

func (c *Client) GenerateQuestions(ctx context.Context, config models.InterviewConfig, count int) (*models.GenerationResult, error) {
	prompt, err := c.prompts.BuildPrompt("questions", map[string]string{
		"QuestionCount":   fmt.Sprintf("%d", count),
		"Role":            config.Role,
		"Level":           config.Level,
		"Mode":            config.Mode,
		"TechStack":       strings.Join(config.TechStack, ", "),
		"FocusAreas":      strings.Join(config.FocusAreas, ", "),
		"TechnicalWeight": fmt.Sprintf("%d", config.TechnicalWeight),
	})
	if err != nil {
		return nil, promptError(err)
	}

	var result models.GenerationResult
	if err := c.generateJSON(ctx, prompt, questionsSchema, &result); err != nil {
		return nil, err
	}

	// The schema cannot express array length bounds, so they are enforced
	// here. The count is not validated against the requested count.
	if len(result.Questions) < models.MinQuestions {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "Model returned no questions",
		}
	}
	if len(result.Questions) > models.MaxQuestions {
		result.Questions = result.Questions[:models.MaxQuestions]
	}
	if !models.ValidDifficulty(result.Difficulty) {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "Model returned an invalid difficulty",
		}
	}

	return &result, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string, config models.InterviewConfig) (*models.Evaluation, error) {
	prompt, err := c.prompts.BuildPrompt("evaluate", map[string]string{
		"Role":     config.Role,
		"Level":    config.Level,
		"Mode":     config.Mode,
		"Question": question,
		"Answer":   answer,
	})
	if err != nil {
		return nil, promptError(err)
	}

	var evaluation models.Evaluation
	if err := c.generateJSON(ctx, prompt, evaluationSchema, &evaluation); err != nil {
		return nil, err
	}

	if evaluation.Score < 0 || evaluation.Score > 10 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  fmt.Sprintf("Evaluation score %d outside [0,10]", evaluation.Score),
		}
	}

	return &evaluation, nil
}

func (c *Client) GenerateSummary(ctx context.Context, responses []models.InterviewResponse, config models.InterviewConfig, duration string) (*models.Summary, error) {
	prompt, err := c.prompts.BuildPrompt("summary", map[string]string{
		"Role":      config.Role,
		"Level":     config.Level,
		"Mode":      config.Mode,
		"Duration":  duration,
		"Responses": formatResponses(responses),
	})
	if err != nil {
		return nil, promptError(err)
	}

	var summary models.Summary
	if err := c.generateJSON(ctx, prompt, summarySchema, &summary); err != nil {
		return nil, err
	}

	// The 0-100 total is adapter-determined; only its bounds are checked,
	// never its relationship to the per-answer 0-10 scores.
	if summary.TotalScore < 0 || summary.TotalScore > 100 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  fmt.Sprintf("Summary score %d outside [0,100]", summary.TotalScore),
		}
	}

	return &summary, nil
}

func (c *Client) InterviewerLine(ctx context.Context, config models.InterviewConfig, lastAnswer, nextQuestion string) (string, error) {
	prompt, err := c.prompts.BuildPrompt("interviewer", map[string]string{
		"Role":         config.Role,
		"Level":        config.Level,
		"Mode":         config.Mode,
		"LastAnswer":   lastAnswer,
		"NextQuestion": nextQuestion,
	})
	if err != nil {
		return "", promptError(err)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate interviewer response",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "No response generated",
		}
	}

	return strings.TrimSpace(result.Text()), nil
}

func (c *Client) AnalyzeResume(ctx context.Context, resumeText, targetRole string) (*models.ResumeAnalysis, error) {
	prompt, err := c.prompts.BuildPrompt("resume", map[string]string{
		"ResumeText": resumeText,
		"TargetRole": targetRole,
	})
	if err != nil {
		return nil, promptError(err)
	}

	var analysis models.ResumeAnalysis
	if err := c.generateJSON(ctx, prompt, resumeSchema, &analysis); err != nil {
		return nil, err
	}

	if analysis.Score < 0 || analysis.Score > 100 {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  fmt.Sprintf("Resume score %d outside [0,100]", analysis.Score),
		}
	}

	return &analysis, nil
}

// generateJSON sends the prompt with a JSON response schema and decodes
// the model output into out.
func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out interface{}) error {
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "No response generated",
		}
	}

	text := result.Text()
	if text == "" {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "Empty response generated",
		}
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeBadOutput,
			Message:  "Failed to parse structured response",
			Err:      err,
		}
	}
	return nil
}

func promptError(err error) error {
	return &llm.ProviderError{
		Provider: "gemini",
		Code:     llm.ErrCodeInvalidInput,
		Message:  "Failed to build prompt",
		Err:      err,
	}
}

func formatResponses(responses []models.InterviewResponse) string {
	var b strings.Builder
	for _, r := range responses {
		fmt.Fprintf(&b, "Q%d: %s\nAnswer: %s\nScore: %d/10\nFeedback: %s\n\n",
			r.QuestionIndex+1, r.Question, r.Answer, r.Score, r.Feedback)
	}
	return b.String()
}
