package api

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/certificate-service/internal/issuer"
	"github.com/ignite/certificate-service/internal/pkg/logger"
)

// IssueCertificateRequest is the request envelope for certificate issuance.
// ActivePlan is a pointer so that an absent or null field is
// distinguishable from an explicit false.
type IssueCertificateRequest struct {
	CertificateID string `json:"certificateId"`
	StudentID     string `json:"studentId"`
	StudentEmail  string `json:"studentEmail"`
	ActivePlan    *bool  `json:"activePlan"`
}

// HandleIssueCertificate validates an issuance request and, when it is
// well-formed, hands it to the issuer.
//
// Required fields are checked in a fixed order (certificateId, studentId,
// studentEmail, activePlan); the first missing one short-circuits with a
// 400 missing_param error. A string field is missing when the key is
// absent, null, or the empty string; values are never trimmed, so a
// whitespace-only string counts as present. activePlan must be present
// but false is a valid value.
//
// The email is then checked through the injected FormatValidator, called
// exactly once with the verbatim studentEmail. A false verdict yields
// 400 invalid_param(studentEmail); a validator failure yields 500
// server_failure (logged, never exposed to the client); a true verdict
// means the request is accepted and the receipt returned.
//
//	POST /api/certificates
func (h *Handlers) HandleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	var req IssueCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.CertificateID == "" {
		respondError(w, NewMissingParamError("certificateId"))
		return
	}
	if req.StudentID == "" {
		respondError(w, NewMissingParamError("studentId"))
		return
	}
	if req.StudentEmail == "" {
		respondError(w, NewMissingParamError("studentEmail"))
		return
	}
	if req.ActivePlan == nil {
		respondError(w, NewMissingParamError("activePlan"))
		return
	}

	valid, err := h.validator.CheckFormat(req.StudentEmail)
	if err != nil {
		logger.Error("email format check failed",
			"student_id", req.StudentID,
			"student_email", req.StudentEmail,
			"error", err)
		respondError(w, NewServerError())
		return
	}
	if !valid {
		respondError(w, NewInvalidParamError("studentEmail"))
		return
	}

	receipt, err := h.issuer.Issue(r.Context(), issuer.IssueRequest{
		CertificateID: req.CertificateID,
		StudentID:     req.StudentID,
		StudentEmail:  req.StudentEmail,
		ActivePlan:    *req.ActivePlan,
	})
	if err != nil {
		logger.Error("issuer rejected request",
			"student_id", req.StudentID,
			"error", err)
		respondError(w, NewServerError())
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// HandleRecentReceipts returns the most recently accepted issuance
// requests, newest last.
//
//	GET /api/certificates/recent
func (h *Handlers) HandleRecentReceipts(w http.ResponseWriter, r *http.Request) {
	receipts := h.issuer.Recent()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(receipts),
		"receipts": receipts,
	})
}
