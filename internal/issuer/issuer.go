// Package issuer is the downstream target for validated issuance
// requests. It accepts a request, stamps it with a request ID and
// timestamp, and keeps a bounded in-memory ring of recent receipts.
// Actual certificate rendering and delivery happen outside this service.
package issuer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IssueRequest is a fully validated certificate-issuance request.
type IssueRequest struct {
	CertificateID string `json:"certificateId"`
	StudentID     string `json:"studentId"`
	StudentEmail  string `json:"studentEmail"`
	ActivePlan    bool   `json:"activePlan"`
}

// Receipt acknowledges acceptance of an issuance request.
type Receipt struct {
	RequestID     string    `json:"requestId"`
	CertificateID string    `json:"certificateId"`
	StudentID     string    `json:"studentId"`
	StudentEmail  string    `json:"studentEmail"`
	ActivePlan    bool      `json:"activePlan"`
	AcceptedAt    time.Time `json:"acceptedAt"`
}

// Service accepts validated requests and retains the most recent receipts.
type Service struct {
	capacity int

	mu     sync.RWMutex
	recent []*Receipt
}

// NewService creates a Service that retains up to capacity receipts.
func NewService(capacity int) *Service {
	if capacity <= 0 {
		capacity = 100
	}
	return &Service{capacity: capacity}
}

// Issue accepts a validated request and returns its receipt.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		RequestID:     uuid.NewString(),
		CertificateID: req.CertificateID,
		StudentID:     req.StudentID,
		StudentEmail:  req.StudentEmail,
		ActivePlan:    req.ActivePlan,
		AcceptedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.recent = append(s.recent, receipt)
	if len(s.recent) > s.capacity {
		s.recent = s.recent[len(s.recent)-s.capacity:]
	}
	s.mu.Unlock()

	return receipt, nil
}

// Recent returns the retained receipts, newest last.
func (s *Service) Recent() []*Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Receipt, len(s.recent))
	copy(out, s.recent)
	return out
}

// Count returns the number of retained receipts.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recent)
}
