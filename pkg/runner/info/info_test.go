package info

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

func init() {
	color.NoColor = true
}

var cfg = store.StaticConfig{Location: "./jadwal-pembelajaran.json", Addr: "127.0.0.1:8080", Cache: "/tmp/jadwal-cache"}

func TestInfoLoaded(t *testing.T) {
	var buf bytes.Buffer
	n := Info{
		Config:  cfg,
		Service: &app.Service{Catalog: store.Static(&store.Store{Teachers: []record.Teacher{{ID: "T1"}}})},
		Out:     &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, want := range []string{"./jadwal-pembelajaran.json", "Teachers", "127.0.0.1:8080", "/tmp/jadwal-cache"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in\n%s", want, buf.String())
		}
	}
}

func TestInfoNotLoadedJSON(t *testing.T) {
	var buf bytes.Buffer
	n := Info{
		Config:  cfg,
		Service: &app.Service{Catalog: store.Static(nil)},
		JSON:    true,
		Out:     &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Loaded || got.Error != fmt.Sprint(store.ErrNotLoaded) {
		t.Fatalf("unexpected report %+v", got)
	}
}
