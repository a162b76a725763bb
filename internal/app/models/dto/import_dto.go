package dto

import "fmt"

// ImportRowError pins a row failure to the row's identifying field
type ImportRowError struct {
	Row   string `json:"row"`
	Error string `json:"error"`
}

// ImportSummary accumulates per-row outcomes of a bulk import. A mix
// of successes and failures is the normal outcome, not an error state.
type ImportSummary struct {
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors"`
}

// AddFailure records a failed row keyed by its identifying value
func (s *ImportSummary) AddFailure(row string, err error) {
	if row == "" {
		row = "Unknown"
	}
	s.Failed++
	s.Errors = append(s.Errors, ImportRowError{Row: row, Error: err.Error()})
}

// ImportResponse is the bulk-import endpoint body
type ImportResponse struct {
	Message string        `json:"message"`
	Details ImportSummary `json:"details"`
}

// NewImportResponse builds the response with the standard summary line
func NewImportResponse(what string, details ImportSummary) ImportResponse {
	return ImportResponse{
		Message: fmt.Sprintf("%s completed: %d successful, %d failed",
			what, details.Successful, details.Failed),
		Details: details,
	}
}
