package blocklist

import (
	"errors"
	"testing"
)

func TestFormatRender(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		format Format
		domain string
		want   string
	}{
		{FormatHosts, "bad.example.com", "127.0.0.1 bad.example.com"},
		{FormatDnsmasq, "bad.example.com", "address=/bad.example.com/127.0.0.1"},
		{FormatUnbound, "bad.example.com", "local-zone: \"bad.example.com\" redirect\nlocal-data: \"bad.example.com A 127.0.0.1\""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.format.String(), func(t *testing.T) {
			t.Parallel()
			if got := tc.format.Render(tc.domain); got != tc.want {
				t.Errorf("%s.Render(%q) = %q; want %q", tc.format, tc.domain, got, tc.want)
			}
		})
	}
}

func TestFormatAppendReusesBuffer(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 0, 64)
	buf = FormatHosts.Append(buf, "a.example.com")
	buf = append(buf, '\n')
	buf = FormatHosts.Append(buf, "b.example.com")
	want := "127.0.0.1 a.example.com\n127.0.0.1 b.example.com"
	if string(buf) != want {
		t.Fatalf("Append chain = %q; want %q", buf, want)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, name := range FormatNames() {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}

	for _, bad := range []string{"", "bogus", "DNSMASQ", " hosts"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v; want ErrUnknownFormat", bad, err)
		}
	}
}

func TestDefaultFormatIsZeroValue(t *testing.T) {
	t.Parallel()
	var f Format
	if f != DefaultFormat || f.String() != "dnsmasq" {
		t.Fatalf("zero Format = %s; want dnsmasq", f)
	}
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func BenchmarkFormatAppendUnbound(b *testing.B) {
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = FormatUnbound.Append(buf[:0], "ads.example.com")
	}
}
