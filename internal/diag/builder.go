package diag

// New constructs a Diagnostic without emitting it anywhere.
func New(sev Severity, code Code, at Location, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, At: at, Message: msg}
}

// NewError is a shortcut for New(SevError, ...).
func NewError(code Code, at Location, msg string) Diagnostic {
	return New(SevError, code, at, msg)
}

// WithNote returns a copy of d with note appended.
func (d Diagnostic) WithNote(at Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{At: at, Msg: msg})
	return d
}
