package logging

// Standardized field names for structured logging. Keeping these as
// constants keeps log output consistent and greppable across packages.
const (
	FieldFile      = "file_path"
	FieldAccount   = "account_id"
	FieldRow       = "row"
	FieldDelimiter = "delimiter"
	FieldHeader    = "header_line"
	FieldCount     = "count"
	FieldReason    = "reason"
	FieldCategory  = "category"
	FieldPayee     = "payee"
	FieldScore     = "score"
)
