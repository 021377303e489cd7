package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/skillswap/interviewer-match/internal/errors"
	"github.com/skillswap/interviewer-match/model"
)

// UpsertInterviewersHandler handles adding/updating interviewers in the pool.
// The body may be a single interviewer object or an array of them.
func (api *API) UpsertInterviewersHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Failed to read request body: "+err.Error())
		return
	}

	var interviewers []model.Interviewer

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &interviewers); err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
			return
		}
	} else {
		var single model.Interviewer
		if err := json.Unmarshal(trimmed, &single); err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
				"Invalid request body. Expecting an interviewer object or an array of interviewers")
			return
		}
		interviewers = []model.Interviewer{single}
	}

	if result := ValidateInterviewers(interviewers); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.pool.UpsertInterviewers(interviewers); err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		SendInternalError(c, "upsert interviewers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d interviewer(s) added/updated", len(interviewers)),
		"count":   len(interviewers),
	})
}

// InterviewerListRequest defines the structure for interviewer listing requests
type InterviewerListRequest struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// ListInterviewersHandler lists interviewers in the pool with pagination
func (api *API) ListInterviewersHandler(c *gin.Context) {
	var req InterviewerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid query parameters: "+err.Error())
		return
	}

	// Set defaults
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // Maximum page size
	}

	all := api.pool.ListInterviewers()
	totalCount := len(all)

	startIndex := (req.Page - 1) * req.PageSize
	endIndex := startIndex + req.PageSize
	if startIndex > totalCount {
		startIndex = totalCount
	}
	if endIndex > totalCount {
		endIndex = totalCount
	}

	c.JSON(http.StatusOK, gin.H{
		"interviewers": all[startIndex:endIndex],
		"total":        totalCount,
		"page":         req.Page,
		"page_size":    req.PageSize,
		"pages":        (totalCount + req.PageSize - 1) / req.PageSize,
	})
}

// GetInterviewerHandler retrieves a specific interviewer by application ID
func (api *API) GetInterviewerHandler(c *gin.Context) {
	applicationID := c.Param("applicationId")

	if result := ValidateApplicationID(applicationID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	iv, err := api.pool.GetInterviewer(applicationID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInterviewerNotFound) {
			SendInterviewerNotFoundError(c, applicationID)
			return
		}
		SendInternalError(c, "get interviewer", err)
		return
	}

	c.JSON(http.StatusOK, iv)
}

// DeleteInterviewerHandler removes a specific interviewer from the pool
func (api *API) DeleteInterviewerHandler(c *gin.Context) {
	applicationID := c.Param("applicationId")

	if result := ValidateApplicationID(applicationID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.pool.DeleteInterviewer(applicationID); err != nil {
		if errors.Is(err, internalErrors.ErrInterviewerNotFound) {
			SendInterviewerNotFoundError(c, applicationID)
			return
		}
		SendInternalError(c, "delete interviewer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interviewer '" + applicationID + "' deleted"})
}

// DeleteAllInterviewersHandler removes every interviewer from the pool
func (api *API) DeleteAllInterviewersHandler(c *gin.Context) {
	if err := api.pool.DeleteAllInterviewers(); err != nil {
		SendInternalError(c, "delete interviewers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All interviewers deleted"})
}
