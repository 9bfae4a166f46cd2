package domain

// ActivityCode is a department-scoped classification of work.
// (Code, Department) pairs are unique; "MISC" denotes miscellaneous time.
type ActivityCode struct {
	ActivityCodeID string `json:"activityCodeID"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Description    string `json:"description,omitempty"`
	AuditFields
}
