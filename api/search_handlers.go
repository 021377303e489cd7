package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/model"
	"github.com/skillswap/interviewer-match/services"
)

// SearchRequest defines the query parameters of a search request. Both
// criteria are optional; omitting both browses the whole approved pool.
type SearchRequest struct {
	Position string `form:"position"`
	Company  string `form:"company"`
}

// SearchHandler ranks the interviewer pool against the query parameters.
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid query parameters: "+err.Error())
		return
	}

	req.Position = strings.TrimSpace(req.Position)
	req.Company = strings.TrimSpace(req.Company)

	if result := ValidateSearchQuery(req.Position, req.Company); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	query := services.Query{Position: req.Position, Company: req.Company}

	results, err := api.searcher.Search(query)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Search failed: "+err.Error())
		return
	}

	event := model.SearchEvent{
		Position:     req.Position,
		Company:      req.Company,
		SearchType:   determineSearchType(query),
		ResponseTime: time.Since(startTime),
		ResultCount:  results.Total,
	}

	// Track the event asynchronously to avoid slowing down the response
	go func() {
		if err := api.analytics.TrackSearchEvent(event); err != nil {
			api.logger.Warn("failed to track search event", zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, results)
}

func determineSearchType(query services.Query) string {
	switch {
	case query.IsEmpty():
		return model.SearchTypeBrowse
	case query.Position != "" && query.Company != "":
		return model.SearchTypeCombined
	case query.Position != "":
		return model.SearchTypePosition
	default:
		return model.SearchTypeCompany
	}
}
