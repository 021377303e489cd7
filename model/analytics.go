package model

import "time"

// Search type labels recorded on SearchEvent.
const (
	SearchTypeBrowse   = "browse"   // no criteria given
	SearchTypePosition = "position" // position criterion only
	SearchTypeCompany  = "company"  // company criterion only
	SearchTypeCombined = "combined" // both criteria given
)

// SearchEvent represents a single interviewer search for analytics tracking.
type SearchEvent struct {
	Position     string        `json:"position"`
	Company      string        `json:"company"`
	SearchType   string        `json:"search_type"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularQuery represents aggregated data for a frequently searched term.
type PopularQuery struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// SearchTypeStats counts searches by the criteria they used.
type SearchTypeStats struct {
	Browse   int `json:"browse"`
	Position int `json:"position"`
	Company  int `json:"company"`
	Combined int `json:"combined"`
}

// AnalyticsDashboard is the complete analytics view returned by the API.
type AnalyticsDashboard struct {
	TotalSearches    int             `json:"total_searches"`
	Searches24h      int             `json:"searches_24h"`
	AvgResponseTime  int64           `json:"avg_response_time"` // in milliseconds
	PoolSize         int             `json:"pool_size"`
	PopularPositions []PopularQuery  `json:"popular_positions"`
	PopularCompanies []PopularQuery  `json:"popular_companies"`
	ZeroResultCount  int             `json:"zero_result_count"`
	SearchTypes      SearchTypeStats `json:"search_types"`
}
