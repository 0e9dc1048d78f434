package models

import "time"

type FilterOp string

const (
	OpGT         FilterOp = "gt"
	OpGTE        FilterOp = "gte"
	OpLT         FilterOp = "lt"
	OpLTE        FilterOp = "lte"
	OpEQ         FilterOp = "eq"
	OpNEQ        FilterOp = "neq"
	OpBetween    FilterOp = "between"
	OpNotBetween FilterOp = "not_between"
	OpIn         FilterOp = "in"
	OpNotIn      FilterOp = "not_in"
)

// Filter is one condition of the generic filter DSL. Value is a scalar for
// the comparison operators, a 2-element numeric list for between/not_between
// and a non-empty list for in/not_in. Arity is checked by the translator,
// not here.
type Filter struct {
	Field string   `json:"field"`
	Op    FilterOp `json:"op"`
	Value any      `json:"value"`
}

type OrderBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// ScanRequest is the /scan body. The frontend historically sent the sort
// spec under both orderBy and order_by, so both are accepted; camelCase wins
// when both are present.
type ScanRequest struct {
	Markets      []string `json:"markets"`
	Columns      []string `json:"columns"`
	Filters      []Filter `json:"filters"`
	OrderBy      *OrderBy `json:"orderBy"`
	OrderBySnake *OrderBy `json:"order_by"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
}

// Sort returns the effective sort spec, or nil for executor default order.
func (r *ScanRequest) Sort() *OrderBy {
	if r.OrderBy != nil {
		return r.OrderBy
	}
	return r.OrderBySnake
}

// ApplyDefaults fills the fields the client may omit. A zero limit means
// "not sent" (JSON cannot tell the two apart) and takes the default.
func (r *ScanRequest) ApplyDefaults() {
	if len(r.Markets) == 0 {
		r.Markets = []string{"america"}
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	if s := r.Sort(); s != nil && s.Direction == "" {
		s.Direction = DirectionDesc
	}
}

// Validate checks request shape after defaults. Filter value arity is the
// translator's job and is deliberately not checked here.
func (r *ScanRequest) Validate() error {
	if len(r.Columns) == 0 {
		return NewValidationError("columns must not be empty")
	}
	if r.Limit < 1 || r.Limit > MaxLimit {
		return NewValidationError("limit must be between 1 and %d", MaxLimit)
	}
	if r.Offset < 0 {
		return NewValidationError("offset must not be negative")
	}
	if s := r.Sort(); s != nil {
		if s.Field == "" {
			return NewValidationError("orderBy.field must not be empty")
		}
		if s.Direction != DirectionAsc && s.Direction != DirectionDesc {
			return NewValidationError("orderBy.direction must be %q or %q", DirectionAsc, DirectionDesc)
		}
	}
	return nil
}

type ScanResponse struct {
	TotalCount int              `json:"totalCount"`
	Results    []map[string]any `json:"results"`
	Timestamp  string           `json:"timestamp"`
	DurationMs int64            `json:"durationMs"`
}

func NewScanResponse(results []map[string]any, totalCount int, duration time.Duration) *ScanResponse {
	if results == nil {
		results = []map[string]any{}
	}
	return &ScanResponse{
		TotalCount: totalCount,
		Results:    results,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		DurationMs: duration.Milliseconds(),
	}
}
