package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldVendor     = "vendor"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldLine       = "line"
	FieldLineNumber = "line_number"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldDelimiter  = "delimiter"
	FieldTemplate   = "date_template"
	FieldExtractor  = "extractor"
)
