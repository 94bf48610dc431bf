package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/timetable"
)

func TestPageOptionsQuery(t *testing.T) {
	tests := map[string]struct {
		opts    PageOptions
		want    app.Query
		wantErr bool
	}{
		"defaults": {
			opts: PageOptions{Page: 1, PerPage: 10},
			want: app.Query{Page: 1, PerPage: 10},
		},
		"search": {
			opts: PageOptions{Search: "siti", Page: 2, PerPage: 25},
			want: app.Query{Search: "siti", Page: 2, PerPage: 25},
		},
		"page zero": {
			opts:    PageOptions{Page: 0, PerPage: 10},
			wantErr: true,
		},
		"odd page size": {
			opts:    PageOptions{Page: 1, PerPage: 7},
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.Query()
			if tc.wantErr {
				if !errors.Is(err, app.ErrInvalidQuery) {
					t.Fatalf("expected ErrInvalidQuery, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTimetableOptionsFilter(t *testing.T) {
	o := TimetableOptions{Teacher: "T1"}
	f, err := o.Filter()
	if err != nil || f != (timetable.Filter{Mode: timetable.ModeTeacher, SelectedID: "T1"}) {
		t.Fatalf("teacher filter: %+v, %v", f, err)
	}

	o = TimetableOptions{Classroom: "R2"}
	if f, _ = o.Filter(); f.Mode != timetable.ModeClassroom || f.SelectedID != "R2" {
		t.Fatalf("classroom filter: %+v", f)
	}

	o = TimetableOptions{}
	if f, _ = o.Filter(); f != (timetable.Filter{}) {
		t.Fatalf("expected mode none, got %+v", f)
	}

	o = TimetableOptions{Teacher: "T1", Classroom: "R2"}
	if _, err := o.Filter(); !errors.Is(err, app.ErrInvalidQuery) {
		t.Fatalf("expected exclusive flags to fail, got %v", err)
	}
}

func TestTimetableOptionsSingleCell(t *testing.T) {
	if ok, err := (&TimetableOptions{Day: "mon", Period: "1"}).SingleCell(); !ok || err != nil {
		t.Fatalf("expected single cell, got %v %v", ok, err)
	}
	if ok, err := (&TimetableOptions{}).SingleCell(); ok || err != nil {
		t.Fatalf("expected grid, got %v %v", ok, err)
	}
	if _, err := (&TimetableOptions{Day: "mon"}).SingleCell(); err == nil {
		t.Fatalf("expected --day without --period to fail")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three\nfour\n\nfive six", 9)
	want := "one two\nthree\nfour\n\nfive six"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	for _, line := range strings.Split(Wrap80(strings.Repeat("word ", 40)), "\n") {
		if len(line) > 80 {
			t.Fatalf("line longer than 80: %q", line)
		}
	}
}

func TestOutputHandleError(t *testing.T) {
	boom := errors.New("boom")

	text := &OutputOptions{}
	if err := text.HandleError(boom); !errors.Is(err, boom) {
		t.Fatalf("text mode should pass the error through, got %v", err)
	}

	var buf bytes.Buffer
	js := &OutputOptions{JSON: true, Out: &buf}
	if err := js.HandleError(boom); err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"error":"boom"}` {
		t.Fatalf("unexpected document %q", got)
	}
	if err := js.HandleError(nil); err != nil || buf.Len() != len(`{"error":"boom"}`)+1 {
		t.Fatalf("nil error should write nothing")
	}
}

func TestMCPOptionsEndpoint(t *testing.T) {
	o := MCPOptions{Host: "0.0.0.0", Port: 9000, Path: "x", TLSCert: "c", TLSKey: "k"}
	e := o.Endpoint()
	if err := e.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if e.Path != "/x" || e.CertFile != "c" || e.KeyFile != "k" {
		t.Fatalf("unexpected endpoint %+v", e)
	}
}
