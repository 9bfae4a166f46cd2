package models

// ActivityCode is the row shape of the activity_codes table.
type ActivityCode struct {
	ActivityCodeID string `db:"activity_code_id"`
	Code           string `db:"code"`
	Name           string `db:"name"`
	Department     string `db:"department"`
	Description    string `db:"description"`
	AuditFields
}
