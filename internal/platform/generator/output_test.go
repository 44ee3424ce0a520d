package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitOutputSeparatesLogLines(t *testing.T) {
	in := strings.Join([]string{
		"[2024-01-01] INFO: Starting puzzle generator script",
		`INFO payload preview {"success":true}`,
		`   {"solution":["CAT"],`,
		`{"hints":[]}`,
		"done",
	}, "\n")

	var logs []string
	raw, err := splitOutput(strings.NewReader(in), func(line string) { logs = append(logs, line) })
	if err != nil {
		t.Fatalf("splitOutput: %v", err)
	}
	want := `   {"solution":["CAT"],{"hints":[]}`
	if string(raw) != want {
		t.Fatalf("buffer: got %q want %q", raw, want)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 log lines, got %d: %v", len(logs), logs)
	}
	if logs[1] != `INFO payload preview {"success":true}` {
		t.Fatalf("unexpected log line: %q", logs[1])
	}
}

func TestParseOutcome(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrEmptyOutput},
		{name: "whitespace", raw: "   ", wantErr: ErrEmptyOutput},
		{name: "not json", raw: "{oops", wantErr: ErrMalformedOutput},
		{name: "wrong shape", raw: `{"solution":"CAT","hints":[],"success":true}`, wantErr: ErrMalformedOutput},
		{name: "concatenated objects", raw: `{"solution":["A"]}{"hints":["b"]}`, wantErr: ErrMalformedOutput},
		{name: "success without arrays", raw: `{"success":true}`, wantErr: ErrMalformedOutput},
		{name: "declared failure", raw: `{"solution":null,"hints":null,"success":false}`, wantErr: ErrDeclaredFailure},
		{name: "missing success", raw: `{"solution":["A"],"hints":["b"]}`, wantErr: ErrDeclaredFailure},
		{name: "ok", raw: `{"solution":["CAT","DOG"],"hints":["h1","h2"],"success":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := parseOutcome([]byte(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got err %v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Solution) != 2 || out.Solution[1] != "DOG" || len(out.Hints) != 2 {
				t.Fatalf("unexpected outcome: %+v", out)
			}
		})
	}
}
