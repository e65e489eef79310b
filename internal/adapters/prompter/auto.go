package prompter

import "context"

// Auto resolves interactive upload choices without a user present. In
// service deployments nobody can answer a modal, so the answer is fixed;
// false reproduces the behavior of a dismissed confirmation dialog (save
// locally).
type Auto struct {
	answer bool
}

// NewAuto creates a prompter that always answers the same way
func NewAuto(answer bool) *Auto {
	return &Auto{answer: answer}
}

// ConfirmUpload returns the fixed answer
func (p *Auto) ConfirmUpload(_ context.Context, _ string) (bool, error) {
	return p.answer, nil
}
