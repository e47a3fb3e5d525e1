package diag

import "testing"

func TestNewBag_NegativeCapClampsToZero(t *testing.T) {
	b := NewBag(-5)
	if b.Cap() != 0 {
		t.Fatalf("Cap() = %d, want 0", b.Cap())
	}
	if b.Add(Diagnostic{Severity: SevError, Code: CfgConflictingFlags}) {
		t.Fatal("Add() should fail against a zero cap")
	}
}

func TestNewBag_OverflowingCapClampsToUint16Max(t *testing.T) {
	b := NewBag(1 << 20)
	if b.Cap() != 65535 {
		t.Fatalf("Cap() = %d, want 65535", b.Cap())
	}
}

func TestBag_AddRespectsCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevError, Code: CfgConflictingFlags}) {
		t.Fatal("first Add() should succeed")
	}
	if !b.Add(Diagnostic{Severity: SevWarning, Code: EnvMissingSDK}) {
		t.Fatal("second Add() should succeed")
	}
	if b.Add(Diagnostic{Severity: SevError, Code: CfgInvalidModuleName}) {
		t.Fatal("third Add() should be dropped past the cap")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBag_HasErrorsAndHasWarnings(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning, Code: EnvMissingSDK})
	if b.HasErrors() {
		t.Fatal("HasErrors() true with only a warning present")
	}
	if !b.HasWarnings() {
		t.Fatal("HasWarnings() false with a warning present")
	}
	b.Add(Diagnostic{Severity: SevError, Code: CfgInvalidModuleName})
	if !b.HasErrors() {
		t.Fatal("HasErrors() false after adding an error")
	}
}

func TestBag_Sort_OrdersByOptionThenSeverity(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning, Code: EnvMissingSDK, At: Location{Option: "z"}})
	b.Add(Diagnostic{Severity: SevError, Code: CfgInvalidModuleName, At: Location{Option: "a"}})
	b.Add(Diagnostic{Severity: SevWarning, Code: EnvSDKPathNotFound, At: Location{Option: "a"}})
	b.Sort()
	items := b.Items()
	if items[0].At.Option != "a" || items[1].At.Option != "a" {
		t.Fatalf("Sort() did not group by option: %+v", items)
	}
	if items[0].Severity < items[1].Severity {
		t.Fatalf("Sort() did not order descending severity within an option: %+v", items[:2])
	}
}

func TestBag_MergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: CfgConflictingFlags})
	b := NewBag(1)
	b.Add(Diagnostic{Code: EnvMissingSDK})
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len() after Merge = %d, want 2", a.Len())
	}
}

func TestDedupReporter_SuppressesIdenticalDiagnostics(t *testing.T) {
	bag := NewBag(10)
	dedup := NewDedupReporter(BagReporter{Bag: bag})
	for i := 0; i < 3; i++ {
		dedup.Report(CfgInvalidModuleName, SevError, Location{Option: "module-name"}, "invalid module name: 1bad", nil)
	}
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after deduping 3 identical reports", bag.Len())
	}
}

func TestDedupReporter_DistinctMessagesPassThrough(t *testing.T) {
	bag := NewBag(10)
	dedup := NewDedupReporter(BagReporter{Bag: bag})
	dedup.Report(CfgInvalidModuleName, SevError, Location{Option: "module-name"}, "invalid module name: a", nil)
	dedup.Report(CfgInvalidModuleName, SevError, Location{Option: "module-name"}, "invalid module name: b", nil)
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 for distinct messages", bag.Len())
	}
}

func TestReportBuilder_EmitsExactlyOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, CfgConflictingFlags, Location{Option: "x"}, "boom")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (Emit should be idempotent)", bag.Len())
	}
}

func TestSeverity_String(t *testing.T) {
	cases := map[Severity]string{
		SevInfo: "info", SevWarning: "warning", SevError: "error", SevFatal: "fatal",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", sev, got, want)
		}
	}
}

func TestCode_ID(t *testing.T) {
	cases := map[Code]string{
		CfgConflictingFlags: "CFG1002",
		InputInvalid:        "INPUT2000",
		EnvMissingSDK:       "ENV3000",
		FatalUnsupportedTarget: "FATAL4000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%v.ID() = %q, want %q", code, got, want)
		}
	}
}
