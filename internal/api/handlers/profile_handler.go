package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

type ProfileHandler struct {
	profiles pgrepo.ProfileRepository
	badges   pgrepo.BadgeRepository
}

func NewProfileHandler(profiles pgrepo.ProfileRepository, badges pgrepo.BadgeRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, badges: badges}
}

// Me returns the authenticated applicant's profile together with the
// verified badge skills the screening engine will see.
func (h *ProfileHandler) Me(c *gin.Context) {
	const op = "ProfileHandler.Me"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(c, utils.E(utils.CodeNotFound, op, "profile not found", err))
			return
		}
		writeError(c, utils.E(utils.CodeInternal, op, "failed to load profile", err))
		return
	}

	badgeSkills, err := h.badges.SkillsByUserID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to load badge skills", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      p,
		"badge_skills": badgeSkills,
	})
}
