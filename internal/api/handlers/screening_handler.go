package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Saujankhnl/remotely-internship/internal/services"
)

type ScreeningHandler struct {
	svc services.ScreeningService
}

func NewScreeningHandler(svc services.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{svc: svc}
}

// RunScreening screens every pending application for the posting without
// touching statuses.
func (h *ScreeningHandler) RunScreening(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postingID, ok := paramUint(c, "posting_id")
	if !ok {
		return
	}

	results, err := h.svc.ScreenPendingForPosting(c.Request.Context(), postingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screened": len(results),
		"results":  results,
	})
}

// ApplyScreening screens pending applications and applies suggested
// statuses for postings that opted into auto-screening.
func (h *ScreeningHandler) ApplyScreening(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postingID, ok := paramUint(c, "posting_id")
	if !ok {
		return
	}

	updated, err := h.svc.ApplyAutoScreening(c.Request.Context(), postingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated":      len(updated),
		"applications": updated,
	})
}

func (h *ScreeningHandler) GetResult(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	applicationID, ok := paramUint(c, "application_id")
	if !ok {
		return
	}

	res, err := h.svc.GetResult(c.Request.Context(), applicationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ScreeningHandler) StatusHistory(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	applicationID, ok := paramUint(c, "application_id")
	if !ok {
		return
	}

	changes, err := h.svc.StatusHistory(c.Request.Context(), applicationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}
