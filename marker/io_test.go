package marker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/milk9111/spritemarker/atlas"
	"github.com/milk9111/spritemarker/geom"
)

func testSheet(n int) *atlas.Sheet {
	sheet := &atlas.Sheet{Meta: atlas.Meta{Image: "sheet.png", Size: geom.Size{W: 256, H: 256}}}
	for i := 0; i < n; i++ {
		sheet.Frames = append(sheet.Frames, atlas.Frame{
			Name:       filepath.Join("tiles", string(rune('a'+i))+".png"),
			Frame:      geom.NewRect(float32(i%4)*64, float32(i/4)*64, 64, 32),
			SourceSize: geom.Size{W: 64, H: 32},
		})
	}
	return sheet
}

func TestSidecarPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/tmp/sheets/tiles.json", "/tmp/sheets/tiles-marked.json"},
		{"tiles.json", "tiles-marked.json"},
		{"dir/tiles", "dir/tiles-marked"},
		{"dir/tiles.v2.json", "dir/tiles.v2-marked.json"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := SidecarPath(filepath.FromSlash(c.in))
			if got != filepath.FromSlash(c.want) {
				t.Fatalf("SidecarPath(%q) = %q, want %q", c.in, got, c.want)
			}
			if again := SidecarPath(filepath.FromSlash(c.in)); again != got {
				t.Fatalf("SidecarPath is not stable: %q vs %q", got, again)
			}
		})
	}
}

func TestDeriveInitialTags(t *testing.T) {
	sheet := testSheet(5)
	c := DeriveInitialTags(sheet)
	if len(c) != 5 {
		t.Fatalf("expected 5 records, got %d", len(c))
	}
	for i, sd := range c {
		if sd.Index != i {
			t.Fatalf("record %d has index %d", i, sd.Index)
		}
		if !sd.Tag.Equal(Ground()) {
			t.Fatalf("record %d tag = %v, want empty ground", i, sd.Tag)
		}
		if sd.OnScreenRect != sheet.UV(i) {
			t.Fatalf("record %d onScreenRect = %+v, want %+v", i, sd.OnScreenRect, sheet.UV(i))
		}
		if sd.SourceRect != sheet.Frames[i].Frame || sd.Name != sheet.Frames[i].Name {
			t.Fatalf("record %d does not mirror its frame: %s", i, spew.Sdump(sd))
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sheet := testSheet(4)
	c := DeriveInitialTags(sheet)
	c[0].Tag = Object()
	c[1].Tag = Platform(Left, Right)
	c[2].Tag = Ground(MM, ILT)
	c[3].OnScreenRect = geom.NewRect(0.123456, 0.654321, 0.1, 0.3)

	path := filepath.Join(t.TempDir(), "nested", SidecarPath("tiles.json"))
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, loaded := LoadOrDerive(path, sheet)
	if !loaded {
		t.Fatalf("expected saved sidecar to be used")
	}
	if !got.Equal(c) {
		t.Fatalf("round trip mismatch\nwant: %s\ngot: %s", spew.Sdump(c), spew.Sdump(got))
	}
}

func TestSaveIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles-marked.json")
	if err := Save(DeriveInitialTags(testSheet(1)), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"onScreenRect\": {"
	if string(data[:len(want)]) != want {
		t.Fatalf("unexpected layout:\n%s", data)
	}
}

func TestLoadOrDeriveFallback(t *testing.T) {
	sheet := testSheet(3)
	want := DeriveInitialTags(sheet)
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope-marked.json")},
		{"malformed", write("bad.json", `[{"onScreenRect":`)},
		{"legacy_shape", write("legacy.json", `[{"frame":{"x":0,"y":0,"w":1,"h":1},"rotated":false,"markers":"Object","name":"a","id":0}]`)},
		{"wrong_count", write("short.json", `[]`)},
		{"null", write("null.json", `null`)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, loaded := LoadOrDerive(c.path, sheet)
			if loaded {
				t.Fatalf("expected fallback for %s", c.path)
			}
			if !got.Equal(want) {
				t.Fatalf("fallback mismatch: %s", spew.Sdump(got))
			}
		})
	}
}

func TestLoadOrDeriveIncompleteRecords(t *testing.T) {
	sheet := testSheet(1)
	want := DeriveInitialTags(sheet)
	dir := t.TempDir()

	const rect = `{"x":0,"y":0,"w":64,"h":32}`
	cases := []struct {
		name string
		body string
	}{
		{"empty_record", `[{}]`},
		{"missing_tag", `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"name":"a.png","index":0}]`},
		{"null_tag", `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"tag":null,"name":"a.png","index":0}]`},
		{"missing_name", `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"tag":"Object","index":0}]`},
		{"missing_index", `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"tag":"Object","name":"a.png"}]`},
		{"missing_source_rect", `[{"onScreenRect":` + rect + `,"tag":"Object","name":"a.png","index":0}]`},
		{"partial_rect", `[{"onScreenRect":{"x":0,"y":0},"sourceRect":` + rect + `,"tag":"Object","name":"a.png","index":0}]`},
		{"object_with_payload", `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"tag":{"Object":{"vertical":["Top"]}},"name":"a.png","index":0}]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".json")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("Load accepted %s", c.body)
			}
			got, loaded := LoadOrDerive(path, sheet)
			if loaded {
				t.Fatalf("expected fallback for %s", c.body)
			}
			if !got.Equal(want) {
				t.Fatalf("fallback mismatch: %s", spew.Sdump(got))
			}
		})
	}

	t.Run("complete_record", func(t *testing.T) {
		path := filepath.Join(dir, "complete.json")
		body := `[{"onScreenRect":` + rect + `,"sourceRect":` + rect + `,"tag":"Object","name":"a.png","index":0}]`
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		got, loaded := LoadOrDerive(path, sheet)
		if !loaded || len(got) != 1 || !got[0].Tag.Equal(Object()) || got[0].Name != "a.png" {
			t.Fatalf("complete record should load, got %s", spew.Sdump(got))
		}
	})
}

func TestDecodeIndexMismatch(t *testing.T) {
	c := DeriveInitialTags(testSheet(2))
	c[1].Index = 7
	path := filepath.Join(t.TempDir(), "x.json")
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrIndexMismatch) {
		t.Fatalf("expected ErrIndexMismatch, got %v", err)
	}
}

func TestCloneAndCounts(t *testing.T) {
	c := DeriveInitialTags(testSheet(3))
	cl := c.Clone()
	cl[0].Tag = Object()
	if c[0].Tag.Kind != KindGround {
		t.Fatalf("clone must not alias the original")
	}
	counts := cl.Counts()
	if counts[KindObject] != 1 || counts[KindGround] != 2 {
		t.Fatalf("unexpected counts %v", counts)
	}
}
