package issuer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueReturnsReceipt(t *testing.T) {
	s := NewService(10)

	before := time.Now().UTC()
	receipt, err := s.Issue(context.Background(), IssueRequest{
		CertificateID: "cert-1",
		StudentID:     "student-1",
		StudentEmail:  "a@b.com",
		ActivePlan:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "cert-1", receipt.CertificateID)
	assert.Equal(t, "student-1", receipt.StudentID)
	assert.Equal(t, "a@b.com", receipt.StudentEmail)
	assert.True(t, receipt.ActivePlan)

	_, err = uuid.Parse(receipt.RequestID)
	assert.NoError(t, err, "request ID must be a UUID")

	assert.False(t, receipt.AcceptedAt.Before(before))
}

func TestIssueCancelledContext(t *testing.T) {
	s := NewService(10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Issue(ctx, IssueRequest{CertificateID: "cert-1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Count())
}

func TestRecentIsBounded(t *testing.T) {
	s := NewService(3)

	for i := 0; i < 5; i++ {
		_, err := s.Issue(context.Background(), IssueRequest{
			CertificateID: string(rune('a' + i)),
			StudentID:     "student-1",
			StudentEmail:  "a@b.com",
		})
		require.NoError(t, err)
	}

	recent := s.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "c", recent[0].CertificateID)
	assert.Equal(t, "e", recent[2].CertificateID)
}

func TestRecentReturnsCopy(t *testing.T) {
	s := NewService(10)
	_, err := s.Issue(context.Background(), IssueRequest{CertificateID: "cert-1"})
	require.NoError(t, err)

	recent := s.Recent()
	recent[0] = nil

	require.Len(t, s.Recent(), 1)
	assert.NotNil(t, s.Recent()[0])
}

func TestIssueConcurrent(t *testing.T) {
	s := NewService(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, err := s.Issue(context.Background(), IssueRequest{CertificateID: "cert"})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, s.Count())
}
