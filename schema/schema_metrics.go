package schema

// CriterionDefinition describes one classification criterion for display purposes.
type CriterionDefinition struct {
	Reason     ReasonKind `json:"reason"`
	Purpose    string     `json:"purpose"`
	Formula    string     `json:"formula"`
	Threshold  float64    `json:"threshold"`
	Comparison string     `json:"comparison"`
}

// CriteriaRenderModel contains all processed data needed for displaying classification criteria.
type CriteriaRenderModel struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Criteria    []CriterionDefinition `json:"criteria"`
	Notes       map[string]string     `json:"notes"`
}
