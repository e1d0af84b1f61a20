package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Saujankhnl/remotely-internship/internal/services"
)

type RankingHandler struct {
	svc services.RankingService
}

func NewRankingHandler(svc services.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// RankedApplicants returns the posting's applicants ordered by display
// score, top candidate first.
func (h *RankingHandler) RankedApplicants(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	postingID, ok := paramUint(c, "posting_id")
	if !ok {
		return
	}

	ranked, err := h.svc.RankApplicants(c.Request.Context(), postingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(ranked),
		"applicants": ranked,
	})
}
