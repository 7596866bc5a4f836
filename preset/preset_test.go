package preset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gogpu/effects"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "sub", "presets.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSet(t *testing.T) effects.Set {
	t.Helper()
	var s effects.Set
	writes := []struct {
		k     effects.Kind
		field string
		v     any
	}{
		{effects.DropShadow, "distance", 12},
		{effects.DropShadow, "color", "navy"},
		{effects.InnerGlow, "source", "center"},
		{effects.ColorOverlay, "opacity", 40},
	}
	for _, w := range writes {
		if _, err := s.SetNamed(w.k, w.field, w.v); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	want := sampleSet(t)

	if err := st.Save(ctx, "soft", &want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := st.Load(ctx, " soft ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Equal(&want) {
		t.Errorf("Load() = %v, want %v", got.String(), want.String())
	}

	// Saving again replaces the preset.
	var other effects.Set
	other.SetNamed(effects.OuterGlow, "size", 3)
	if err := st.Save(ctx, "soft", &other); err != nil {
		t.Fatal(err)
	}
	got, _ = st.Load(ctx, "soft")
	if !got.Equal(&other) {
		t.Errorf("Load() after overwrite = %v, want %v", got.String(), other.String())
	}
}

func TestListDelete(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	set := sampleSet(t)

	for _, name := range []string{"b", "c", "a"} {
		if err := st.Save(ctx, name, &set); err != nil {
			t.Fatal(err)
		}
	}
	names, err := st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("List() = %v, want [a b c]", names)
	}

	if err := st.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := st.Delete(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := st.Load(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestEmptyName(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	var set effects.Set

	if err := st.Save(ctx, "  ", &set); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Save() error = %v, want ErrEmptyName", err)
	}
	if _, err := st.Load(ctx, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Load() error = %v, want ErrEmptyName", err)
	}
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "presets.db")
	set := sampleSet(t)

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, "kept", &set); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	got, err := st.Load(ctx, "kept")
	if err != nil || !got.Equal(&set) {
		t.Errorf("Load() after reopen = %v, %v", got.String(), err)
	}
}
