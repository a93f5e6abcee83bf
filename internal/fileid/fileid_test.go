package fileid

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDocID(t *testing.T) {
	id1 := DocID("/foo/bar.txt")
	id2 := DocID("/foo/bar.txt")
	if id1 != id2 {
		t.Errorf("same path should give same ID: %q vs %q", id1, id2)
	}
	if !strings.HasPrefix(id1, prefix) || len(id1) != len(prefix)+64 {
		t.Errorf("unexpected ID %q", id1)
	}
	if DocID("/foo/baz.txt") == id1 {
		t.Error("different paths should give different IDs")
	}
}

func TestDocID_normalized(t *testing.T) {
	id1 := DocID("/foo/bar")
	if id1 != DocID("/foo/bar/") {
		t.Error("paths differing only by trailing slash should match")
	}
	if id1 != DocID("/foo/./bar") {
		t.Error("paths with . should normalize")
	}
}

func TestReportName(t *testing.T) {
	a := ReportName("/contracts/acme/lease.pdf")
	if !strings.HasPrefix(a, "lease-") || !strings.HasSuffix(a, ".json") {
		t.Errorf("ReportName = %q", a)
	}
	if len(a) != len("lease-")+shortHash+len(".json") {
		t.Errorf("ReportName length = %d (%q)", len(a), a)
	}
	if a != ReportName("/contracts/acme/./lease.pdf") {
		t.Error("report name should be stable across equivalent paths")
	}
	if a == ReportName("/contracts/globex/lease.pdf") {
		t.Error("same base name in different directories should not collide")
	}
	if filepath.Base(a) != a {
		t.Errorf("report name should be a bare file name: %q", a)
	}
}

func TestReportName_noStem(t *testing.T) {
	if got := ReportName("/docs/.env"); !strings.HasPrefix(got, "document-") {
		t.Errorf("ReportName for dotfile = %q", got)
	}
}
