package service

import (
	"screener_service/internal/models"
)

// Wire types of the scanner /scan endpoint. A single condition compares one
// field against a scalar or a list; sets and ranges both ride the
// in_range/not_in_range operations.
type Condition struct {
	Left      string `json:"left"`
	Operation string `json:"operation"`
	Right     any    `json:"right"`
}

type Operand struct {
	Expression Condition `json:"expression"`
}

// Filter2 combines several conditions under one logical operator.
type Filter2 struct {
	Operator string    `json:"operator"`
	Operands []Operand `json:"operands"`
}

type SortSpec struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type ScanPayload struct {
	Markets []string    `json:"markets,omitempty"`
	Columns []string    `json:"columns"`
	Filter  []Condition `json:"filter,omitempty"`
	Filter2 *Filter2    `json:"filter2,omitempty"`
	Sort    *SortSpec   `json:"sort,omitempty"`
	Range   [2]int      `json:"range"`
}

type conditionBuilder func(field string, value any) (Condition, error)

// One builder per operator; an op missing here is unrecognized.
var opBuilders = map[models.FilterOp]conditionBuilder{
	models.OpGT:         comparison("greater", models.OpGT),
	models.OpGTE:        comparison("egreater", models.OpGTE),
	models.OpLT:         comparison("less", models.OpLT),
	models.OpLTE:        comparison("eless", models.OpLTE),
	models.OpEQ:         comparison("equal", models.OpEQ),
	models.OpNEQ:        comparison("nequal", models.OpNEQ),
	models.OpBetween:    rangeBounds("in_range", models.OpBetween),
	models.OpNotBetween: rangeBounds("not_in_range", models.OpNotBetween),
	models.OpIn:         membership("in_range", models.OpIn),
	models.OpNotIn:      membership("not_in_range", models.OpNotIn),
}

func comparison(operation string, op models.FilterOp) conditionBuilder {
	return func(field string, value any) (Condition, error) {
		if _, isList := value.([]any); isList || value == nil {
			return Condition{}, models.NewFilterError("operator %q requires a single scalar value", op)
		}
		return Condition{Left: field, Operation: operation, Right: value}, nil
	}
}

func rangeBounds(operation string, op models.FilterOp) conditionBuilder {
	return func(field string, value any) (Condition, error) {
		list, ok := value.([]any)
		if !ok || len(list) != 2 {
			return Condition{}, models.NewFilterError("operator %q requires a list of exactly 2 values", op)
		}
		for _, v := range list {
			if !isNumber(v) {
				return Condition{}, models.NewFilterError("operator %q requires numeric bounds", op)
			}
		}
		return Condition{Left: field, Operation: operation, Right: list}, nil
	}
}

func membership(operation string, op models.FilterOp) conditionBuilder {
	return func(field string, value any) (Condition, error) {
		list, ok := value.([]any)
		if !ok || len(list) == 0 {
			return Condition{}, models.NewFilterError("operator %q requires a non-empty list of values", op)
		}
		return Condition{Left: field, Operation: operation, Right: list}, nil
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	}
	return false
}

func buildCondition(f models.Filter) (Condition, error) {
	build, ok := opBuilders[f.Op]
	if !ok {
		return Condition{}, models.NewFilterError("unknown filter operator: %q", f.Op)
	}
	return build(f.Field, f.Value)
}

// BuildScanPayload translates a validated ScanRequest into the scanner wire
// payload. Column order is preserved, duplicates dropped, and name is always
// selected first so every row carries its ticker identifier.
func BuildScanPayload(req *models.ScanRequest) (*ScanPayload, error) {
	columns := make([]string, 0, len(req.Columns)+1)
	seen := make(map[string]struct{}, len(req.Columns)+1)

	hasName := false
	for _, c := range req.Columns {
		if c == "name" {
			hasName = true
			break
		}
	}
	if !hasName {
		columns = append(columns, "name")
		seen["name"] = struct{}{}
	}
	for _, c := range req.Columns {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		columns = append(columns, c)
	}

	payload := &ScanPayload{
		Columns: columns,
		Range:   [2]int{req.Offset, req.Offset + req.Limit},
	}
	if len(req.Markets) > 1 {
		payload.Markets = req.Markets
	}

	switch len(req.Filters) {
	case 0:
	case 1:
		cond, err := buildCondition(req.Filters[0])
		if err != nil {
			return nil, err
		}
		payload.Filter = []Condition{cond}
	default:
		operands := make([]Operand, 0, len(req.Filters))
		for _, f := range req.Filters {
			cond, err := buildCondition(f)
			if err != nil {
				return nil, err
			}
			operands = append(operands, Operand{Expression: cond})
		}
		payload.Filter2 = &Filter2{Operator: "and", Operands: operands}
	}

	if s := req.Sort(); s != nil {
		payload.Sort = &SortSpec{SortBy: s.Field, SortOrder: s.Direction}
	}

	return payload, nil
}
