package diag

// Location anchors a diagnostic to the option or input that caused
// it. Driver diagnostics are about configuration, not source text, so
// there is no span here — just an optional flag name and an optional
// input path, either of which may be empty.
type Location struct {
	Option string
	Path   string
}

// Note is supplementary context attached to a Diagnostic.
type Note struct {
	At  Location
	Msg string
}

// Diagnostic is a single reported issue.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	At       Location
	Notes    []Note
}
