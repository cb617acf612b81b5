package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobguard/internal/analysis"
	"jobguard/internal/shared/server/respond"
)

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	sess := sessionFromContext(c)
	in := analysis.Input{JobDescription: req.JobDescription}
	if resume := h.Records.GetActiveResume(sess.User.Email); resume != nil {
		in.ResumeText = &resume.ResumeText
		in.ResumeFileName = &resume.FileName
	}

	saved, err := h.Analysis.Analyze(c.Request.Context(), sess, in)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrDescriptionRequired):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job description is required", nil)
		case errors.Is(err, analysis.ErrNotLoggedIn):
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required", nil)
		case errors.Is(err, analysis.ErrRemoteCall):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "Analysis failed, please try again", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save analysis", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, saved)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	sess := sessionFromContext(c)
	respond.OK(c, h.Records.GetAll(sess.User.Email))
}

func (h *Handler) latestAnalysis(c *gin.Context) {
	sess := sessionFromContext(c)
	latest := h.Records.GetLatest(sess.User.Email)
	if latest == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no analyses yet", nil)
		return
	}
	respond.OK(c, latest)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id must be numeric", nil)
		return
	}
	sess := sessionFromContext(c)
	record := h.Records.GetByID(id, sess.User.Email)
	if record == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	}
	respond.OK(c, record)
}

func (h *Handler) deleteAnalysis(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id must be numeric", nil)
		return
	}
	if !h.Records.Delete(id) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete analysis", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) clearAnalyses(c *gin.Context) {
	sess := sessionFromContext(c)
	if !h.Records.ClearAll(sess.User.Email) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear history", nil)
		return
	}
	respond.OK(c, gin.H{"cleared": true})
}

func (h *Handler) stats(c *gin.Context) {
	sess := sessionFromContext(c)
	respond.OK(c, h.Records.GetStats(sess.User.Email))
}

func (h *Handler) rankings(c *gin.Context) {
	sess := sessionFromContext(c)
	ranked, err := h.Analysis.Rankings(c.Request.Context(), sess)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "upstream_error", "Ranking failed, please try again", nil)
		return
	}
	respond.OK(c, ranked)
}
