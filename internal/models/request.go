package models

import (
	"strings"
)

// InterviewConfig describes the interview to generate. Mode is the
// discriminant: technical requires a tech stack, behavioral requires focus
// areas, mixed requires both plus a technical weight.
type InterviewConfig struct {
	Mode            string   `json:"mode"`
	Role            string   `json:"role"`
	Level           string   `json:"level"`
	TechStack       []string `json:"techStack,omitempty"`
	FocusAreas      []string `json:"focusAreas,omitempty"`
	TechnicalWeight int      `json:"technicalWeight,omitempty"`
}

func (c *InterviewConfig) validate() []FieldError {
	var details []FieldError
	if strings.TrimSpace(c.Role) == "" {
		details = append(details, FieldError{Field: "config.role", Message: "role is required"})
	}
	if !ValidLevel(c.Level) {
		details = append(details, FieldError{Field: "config.level", Message: "level must be one of Junior, Mid, Senior, Lead"})
	}
	if !ValidMode(c.Mode) {
		details = append(details, FieldError{Field: "config.mode", Message: "mode must be one of technical, behavioral, mixed"})
		return details
	}
	switch c.Mode {
	case ModeTechnical:
		if len(c.TechStack) == 0 {
			details = append(details, FieldError{Field: "config.techStack", Message: "techStack is required for technical interviews"})
		}
	case ModeBehavioral:
		if len(c.FocusAreas) == 0 {
			details = append(details, FieldError{Field: "config.focusAreas", Message: "focusAreas is required for behavioral interviews"})
		}
	case ModeMixed:
		if len(c.TechStack) == 0 {
			details = append(details, FieldError{Field: "config.techStack", Message: "techStack is required for mixed interviews"})
		}
		if c.TechnicalWeight < 0 || c.TechnicalWeight > 100 {
			details = append(details, FieldError{Field: "config.technicalWeight", Message: "technicalWeight must be between 0 and 100"})
		}
	}
	return details
}

type GenerateInterviewRequest struct {
	Config        InterviewConfig `json:"config"`
	QuestionCount int             `json:"questionCount"`
}

func (r *GenerateInterviewRequest) Validate() error {
	details := r.Config.validate()
	if r.QuestionCount < MinQuestions || r.QuestionCount > MaxQuestions {
		details = append(details, FieldError{Field: "questionCount", Message: "questionCount must be between 1 and 10"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid interview configuration", Details: details}
	}
	return nil
}

type EvaluateAnswerRequest struct {
	InterviewID   string `json:"interviewId"`
	QuestionIndex *int   `json:"questionIndex"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
}

func (r *EvaluateAnswerRequest) Validate() error {
	var details []FieldError
	if r.InterviewID == "" {
		details = append(details, FieldError{Field: "interviewId", Message: "interviewId is required"})
	}
	if r.QuestionIndex == nil {
		details = append(details, FieldError{Field: "questionIndex", Message: "questionIndex is required"})
	} else if *r.QuestionIndex < 0 {
		details = append(details, FieldError{Field: "questionIndex", Message: "questionIndex must not be negative"})
	}
	if strings.TrimSpace(r.Question) == "" {
		details = append(details, FieldError{Field: "question", Message: "question is required"})
	}
	if strings.TrimSpace(r.Answer) == "" {
		details = append(details, FieldError{Field: "answer", Message: "answer is required"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid evaluation request", Details: details}
	}
	return nil
}

type SummaryRequest struct {
	InterviewID string `json:"interviewId"`
	Duration    string `json:"duration"`
}

func (r *SummaryRequest) Validate() error {
	if r.InterviewID == "" {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid summary request",
			Details: []FieldError{{Field: "interviewId", Message: "interviewId is required"}},
		}
	}
	return nil
}

// UpdateInterviewRequest carries a partial update. Only the fields present
// are applied; updatedAt is always stamped. This is also the only path by
// which an interview can be paused.
type UpdateInterviewRequest struct {
	Status     *string  `json:"status,omitempty"`
	Role       *string  `json:"role,omitempty"`
	TechStack  []string `json:"techStack,omitempty"`
	FocusAreas []string `json:"focusAreas,omitempty"`
}

func (r *UpdateInterviewRequest) Validate() error {
	if r.Status != nil && !ValidStatus(*r.Status) {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid interview update",
			Details: []FieldError{{Field: "status", Message: "status must be one of not_started, in_progress, completed, paused"}},
		}
	}
	return nil
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
	TargetRole string `json:"targetRole"`
}

func (r *AnalyzeResumeRequest) Validate() error {
	var details []FieldError
	if strings.TrimSpace(r.ResumeText) == "" {
		details = append(details, FieldError{Field: "resumeText", Message: "resumeText is required"})
	}
	if strings.TrimSpace(r.TargetRole) == "" {
		details = append(details, FieldError{Field: "targetRole", Message: "targetRole is required"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid resume request", Details: details}
	}
	return nil
}

type VerifySubscriptionRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

func (r *VerifySubscriptionRequest) Validate() error {
	var details []FieldError
	if r.OrderID == "" {
		details = append(details, FieldError{Field: "orderId", Message: "orderId is required"})
	}
	if r.PaymentID == "" {
		details = append(details, FieldError{Field: "paymentId", Message: "paymentId is required"})
	}
	if r.Signature == "" {
		details = append(details, FieldError{Field: "signature", Message: "signature is required"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid subscription request", Details: details}
	}
	return nil
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid post",
			Details: []FieldError{{Field: "content", Message: "content is required"}},
		}
	}
	return nil
}

type UpdatePostRequest struct {
	Content string `json:"content"`
}

func (r *UpdatePostRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid post update",
			Details: []FieldError{{Field: "content", Message: "content is required"}},
		}
	}
	return nil
}

type CreateCommentRequest struct {
	Content         string  `json:"content"`
	ParentCommentID *string `json:"parentCommentId,omitempty"`
}

func (r *CreateCommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid comment",
			Details: []FieldError{{Field: "content", Message: "content is required"}},
		}
	}
	return nil
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r *UpdateCommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &ErrorResponse{
			Code:    "validation_error",
			Message: "Invalid comment update",
			Details: []FieldError{{Field: "content", Message: "content is required"}},
		}
	}
	return nil
}

type SharePostRequest struct {
	ShareType string `json:"shareType"`
	QuoteText string `json:"quoteText,omitempty"`
}

func (r *SharePostRequest) Validate() error {
	if r.ShareType == "" {
		r.ShareType = ShareTypeDirect
	}
	var details []FieldError
	if !ValidShareType(r.ShareType) {
		details = append(details, FieldError{Field: "shareType", Message: "shareType must be one of direct, repost, quote"})
	}
	if r.ShareType == ShareTypeQuote && strings.TrimSpace(r.QuoteText) == "" {
		details = append(details, FieldError{Field: "quoteText", Message: "quoteText is required for quote shares"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid share request", Details: details}
	}
	return nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var details []FieldError
	if strings.TrimSpace(r.Username) == "" {
		details = append(details, FieldError{Field: "username", Message: "username is required"})
	}
	if !strings.Contains(r.Email, "@") {
		details = append(details, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		details = append(details, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if len(details) > 0 {
		return &ErrorResponse{Code: "validation_error", Message: "Invalid registration", Details: details}
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return &ErrorResponse{Code: "validation_error", Message: "username and password are required"}
	}
	return nil
}
