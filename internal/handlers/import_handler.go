package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/reconcile"
	"finboard/internal/services"
)

// ImportHandler drives reconciliation runs against the record store.
type ImportHandler struct {
	importService services.ImportServicer
	feedSize      int
}

// NewImportHandler creates a new ImportHandler. feedSize controls how many
// candidates the synthetic feed produces when the caller supplies none.
func NewImportHandler(importService services.ImportServicer, feedSize int) *ImportHandler {
	return &ImportHandler{importService: importService, feedSize: feedSize}
}

// ImportCandidateRequest is one externally sourced transaction candidate.
type ImportCandidateRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Kind        string  `json:"kind" binding:"required,transaction_kind"`
	Category    string  `json:"category" binding:"max=100"`
	Date        string  `json:"date" binding:"required,date_only"`
}

// ImportRunRequest carries an optional explicit candidate batch. With no
// candidates the handler pulls a batch from the synthetic bank feed.
type ImportRunRequest struct {
	Candidates []ImportCandidateRequest `json:"candidates" binding:"omitempty,dive"`
}

// RunImport handles a reconciliation run.
// @Summary     Run import
// @Description Merge a batch of candidates into the user's transactions, skipping likely duplicates. A batch with no candidates is filled from the synthetic bank feed.
// @Tags        import
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ImportRunRequest false "Candidate batch"
// @Success     200 {object} services.ImportResult "Run outcome"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Record store unavailable"
// @Router      /import/run [post]
func (h *ImportHandler) RunImport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ImportRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
	}

	var candidates []reconcile.Candidate
	if len(req.Candidates) > 0 {
		candidates = make([]reconcile.Candidate, 0, len(req.Candidates))
		for _, cand := range req.Candidates {
			date, err := parseDate(cand.Date)
			if err != nil {
				respondWithError(c, err)
				return
			}
			candidates = append(candidates, reconcile.Candidate{
				Description: cand.Description,
				Amount:      cand.Amount,
				Kind:        models.TransactionKind(cand.Kind),
				Category:    cand.Category,
				Date:        date,
			})
		}
	} else {
		candidates, err = h.importService.GenerateCandidates(userID, time.Now(), h.feedSize)
		if err != nil {
			respondWithError(c, err)
			return
		}
	}

	result, err := h.importService.Run(userID, candidates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
