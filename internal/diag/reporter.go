package diag

// Reporter is the minimal contract the core's components use to
// surface diagnostics. The core never writes to stderr directly;
// everything funnels through a Reporter.
type Reporter interface {
	Report(code Code, sev Severity, at Location, msg string, notes []Note)
}

// ReportBuilder accumulates diagnostic details before emitting once to
// a Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to r.
func NewReportBuilder(r Reporter, sev Severity, code Code, at Location, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: Diagnostic{Severity: sev, Code: code, Message: msg, At: at}}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, at Location, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, at, msg)
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, at Location, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, at, msg)
}

// ReportFatal is a shortcut for SevFatal diagnostics.
func ReportFatal(r Reporter, code Code, at Location, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevFatal, code, at, msg)
}

// WithNote appends a note to the diagnostic under construction.
func (b *ReportBuilder) WithNote(at Location, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{At: at, Msg: msg})
	return b
}

// Emit sends the diagnostic to the underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag.Code, b.diag.Severity, b.diag.At, b.diag.Message, b.diag.Notes)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter adapts a Reporter onto a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, at Location, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, At: at, Notes: notes})
}

// NopReporter discards every diagnostic reported to it.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, Location, string, []Note) {}
