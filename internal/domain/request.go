package domain

// QuestionRequest is the body for POST /v1/questions.
type QuestionRequest struct {
	Question string `json:"question"`
}

// QuestionResponse is returned with 202 Accepted when a run has been created.
type QuestionResponse struct {
	RunID   string    `json:"run_id"`
	Status  RunStatus `json:"status"`
	Message string    `json:"message"`
}

// AnswerMetrics is the metrics block of the simplified answer view.
type AnswerMetrics struct {
	TotalMs int64        `json:"total_ms"`
	Tools   []ToolMetric `json:"tools"`
}

// AnswerView is the simplified result view served by GET /v1/runs/:id/answer.
type AnswerView struct {
	RunID       string        `json:"run_id"`
	Status      RunStatus     `json:"status"`
	Question    string        `json:"question"`
	Answer      string        `json:"answer,omitempty"`
	Obligations []Obligation  `json:"obligations"`
	Laws        []Law         `json:"laws"`
	Metrics     AnswerMetrics `json:"metrics"`
}
