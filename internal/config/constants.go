package config

// ConfigFileNames are looked up in this order in every directory.
var ConfigFileNames = []string{"typesniff.yaml", "typesniff.yml"}

// DefaultBaselineFile is used when the config names no baseline.
const DefaultBaselineFile = ".typesniff-baseline.db"

// SiteFileExtensions are the recognized site list extensions.
var SiteFileExtensions = []string{".yaml", ".yml"}

// Severity of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityOff     Severity = "off"
)

// Diagnostic codes, as rendered by subject.Classification.Code.
const (
	MissingDocTypeCode    = "missing_doc_type"
	MissingNativeTypeCode = "missing_native_type"
	RedundantDocTypeCode  = "redundant_doc_type"
	NarrowerDocTypeCode   = "narrower_doc_type"
	MismatchedTypeCode    = "mismatched_type"
	ValueTypeMismatchCode = "value_type_mismatch"
)

// DefaultSeverities apply to codes the config does not mention.
// A narrower doc type documents something useful and is not reported.
var DefaultSeverities = map[string]Severity{
	MissingDocTypeCode:    SeverityWarning,
	MissingNativeTypeCode: SeverityWarning,
	RedundantDocTypeCode:  SeverityWarning,
	NarrowerDocTypeCode:   SeverityOff,
	MismatchedTypeCode:    SeverityError,
	ValueTypeMismatchCode: SeverityError,
}
