package models

import "testing"

func intPtr(i int) *int { return &i }

func validConfig() InterviewConfig {
	return InterviewConfig{
		Mode:      ModeTechnical,
		Role:      "Backend Engineer",
		Level:     LevelMid,
		TechStack: []string{"Go", "Postgres"},
	}
}

func fieldNames(err error) map[string]bool {
	fields := map[string]bool{}
	if resp, ok := err.(*ErrorResponse); ok {
		for _, d := range resp.Details {
			fields[d.Field] = true
		}
	}
	return fields
}

func TestGenerateInterviewRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*GenerateInterviewRequest)
		wantField string
	}{
		{"valid", func(r *GenerateInterviewRequest) {}, ""},
		{"missing role", func(r *GenerateInterviewRequest) { r.Config.Role = "  " }, "config.role"},
		{"bad level", func(r *GenerateInterviewRequest) { r.Config.Level = "Principal" }, "config.level"},
		{"bad mode", func(r *GenerateInterviewRequest) { r.Config.Mode = "casual" }, "config.mode"},
		{"technical without stack", func(r *GenerateInterviewRequest) { r.Config.TechStack = nil }, "config.techStack"},
		{"behavioral without focus", func(r *GenerateInterviewRequest) {
			r.Config.Mode = ModeBehavioral
			r.Config.FocusAreas = nil
		}, "config.focusAreas"},
		{"mixed weight out of range", func(r *GenerateInterviewRequest) {
			r.Config.Mode = ModeMixed
			r.Config.TechnicalWeight = 120
		}, "config.technicalWeight"},
		{"too many questions", func(r *GenerateInterviewRequest) { r.QuestionCount = 11 }, "questionCount"},
		{"zero questions", func(r *GenerateInterviewRequest) { r.QuestionCount = 0 }, "questionCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &GenerateInterviewRequest{Config: validConfig(), QuestionCount: 5}
			tt.mutate(req)
			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid request, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !fieldNames(err)[tt.wantField] {
				t.Fatalf("expected detail for %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestEvaluateAnswerRequestValidate(t *testing.T) {
	valid := EvaluateAnswerRequest{
		InterviewID:   "interview-1",
		QuestionIndex: intPtr(0),
		Question:      "Tell me about Go channels.",
		Answer:        "They synchronize goroutines.",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	missingIndex := valid
	missingIndex.QuestionIndex = nil
	if err := missingIndex.Validate(); err == nil || !fieldNames(err)["questionIndex"] {
		t.Fatalf("expected questionIndex detail, got %v", err)
	}

	negativeIndex := valid
	negativeIndex.QuestionIndex = intPtr(-1)
	if err := negativeIndex.Validate(); err == nil || !fieldNames(err)["questionIndex"] {
		t.Fatalf("expected questionIndex detail, got %v", err)
	}

	blankAnswer := valid
	blankAnswer.Answer = "   "
	if err := blankAnswer.Validate(); err == nil || !fieldNames(err)["answer"] {
		t.Fatalf("expected answer detail, got %v", err)
	}
}

func TestUpdateInterviewRequestValidate(t *testing.T) {
	paused := StatusPaused
	if err := (&UpdateInterviewRequest{Status: &paused}).Validate(); err != nil {
		t.Fatalf("expected paused to be a valid status, got %v", err)
	}

	bogus := "archived"
	if err := (&UpdateInterviewRequest{Status: &bogus}).Validate(); err == nil {
		t.Fatal("expected an error for an unknown status")
	}

	if err := (&UpdateInterviewRequest{}).Validate(); err != nil {
		t.Fatalf("expected empty partial update to validate, got %v", err)
	}
}

func TestSharePostRequestValidate(t *testing.T) {
	req := &SharePostRequest{}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected empty share to validate, got %v", err)
	}
	if req.ShareType != ShareTypeDirect {
		t.Fatalf("expected default share type %q, got %q", ShareTypeDirect, req.ShareType)
	}

	quote := &SharePostRequest{ShareType: ShareTypeQuote}
	if err := quote.Validate(); err == nil || !fieldNames(err)["quoteText"] {
		t.Fatalf("expected quoteText detail, got %v", err)
	}

	bad := &SharePostRequest{ShareType: "broadcast"}
	if err := bad.Validate(); err == nil || !fieldNames(err)["shareType"] {
		t.Fatalf("expected shareType detail, got %v", err)
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := &RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "supersecret"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}

	bad := &RegisterRequest{Username: " ", Email: "not-an-email", Password: "short"}
	err := bad.Validate()
	fields := fieldNames(err)
	if !fields["username"] || !fields["email"] || !fields["password"] {
		t.Fatalf("expected details for all three fields, got %v", err)
	}
}
