package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSourceAccumulates(t *testing.T) {
	t.Parallel()

	m := New(true)
	m.RecordSource("a.hosts", SourceCounts{Lines: 4, Relevant: 3, Domains: 3, Kept: 2, Denied: 1}, time.Millisecond)
	m.RecordSource("a.hosts", SourceCounts{Lines: 1, Relevant: 1, Domains: 1, Kept: 1}, time.Millisecond)

	if got := testutil.ToFloat64(m.LinesRead.WithLabelValues("a.hosts")); got != 5 {
		t.Errorf("lines read = %v; want 5", got)
	}
	if got := testutil.ToFloat64(m.KeptDomains.WithLabelValues("a.hosts")); got != 3 {
		t.Errorf("kept = %v; want 3", got)
	}
	if got := testutil.ToFloat64(m.DeniedDomains.WithLabelValues("a.hosts")); got != 1 {
		t.Errorf("denied = %v; want 1", got)
	}
}

func TestDisabledMetricsAreNoOps(t *testing.T) {
	t.Parallel()

	m := New(false)
	m.RecordSource("a.hosts", SourceCounts{Lines: 4}, time.Millisecond)
	m.RecordOutput("dnsmasq", 10, 10, 300)
	if got := testutil.CollectAndCount(m.LinesRead); got != 0 {
		t.Errorf("disabled metrics collected %d series", got)
	}

	path := filepath.Join(t.TempDir(), "run.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("disabled metrics wrote a textfile (stat err %v)", err)
	}

	var none *Metrics
	if none.IsEnabled() {
		t.Fatal("nil Metrics reported enabled")
	}
	none.RecordRun(1, 1, time.Second, time.Now())
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	m := New(true)
	m.RecordSource("a.hosts", SourceCounts{Lines: 4, Relevant: 3, Domains: 3, Kept: 2, Denied: 1}, time.Millisecond)
	m.RecordOutput("unbound", 2, 2, 120)
	m.RecordRun(1, 6, 50*time.Millisecond, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "hostfileconverter.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(b)
	for _, want := range []string{
		`hostfileconverter_lines_read_total{source="a.hosts"} 4`,
		`hostfileconverter_output_records{format="unbound"} 2`,
		`hostfileconverter_unique_domains 2`,
		`hostfileconverter_denylist_entries 6`,
		`hostfileconverter_last_run_timestamp_seconds 1.7e+09`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q\n%s", want, text)
		}
	}
}
