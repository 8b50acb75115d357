// Package policy validates incoming questions before a run is created.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine for question intake.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.intake.result"),
		rego.Module("intake.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Decision is the policy verdict for one question.
type Decision struct {
	Allowed bool
	Reason  string
}

// EvaluateQuestion checks the intake policy for a question against the
// configured length bounds. A missing or malformed policy result allows the
// question; rejection must be explicit.
func (e *Engine) EvaluateQuestion(ctx context.Context, question string, minLength, maxLength int) (Decision, error) {
	input := map[string]interface{}{
		"question":   question,
		"min_length": minLength,
		"max_length": maxLength,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to evaluate policy: %w", err)
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return Decision{Allowed: true}, nil
	}

	val, ok := results[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return Decision{Allowed: true}, nil
	}

	decision, _ := val["decision"].(string)
	reason, _ := val["reason"].(string)

	return Decision{Allowed: decision != "reject", Reason: reason}, nil
}

// DefaultPolicy is the default intake policy content.
const DefaultPolicy = `
package intake

import rego.v1

default result := {"decision": "allow", "reason": ""}

result := {"decision": "reject", "reason": "question is too short"} if {
	count(input.question) < input.min_length
}

result := {"decision": "reject", "reason": "question is too long"} if {
	count(input.question) > input.max_length
}
`
