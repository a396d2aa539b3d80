package density

import (
	"path/filepath"
	"testing"
)

func TestAllBuckets(t *testing.T) {
	want := map[string]int{
		"mdpi":    24,
		"hdpi":    36,
		"xhdpi":   48,
		"xxhdpi":  72,
		"xxxhdpi": 96,
	}
	if len(All) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(All), len(want))
	}
	prev := 0
	for _, d := range All {
		edge, ok := want[d.Name]
		if !ok {
			t.Errorf("unexpected bucket %q", d.Name)
			continue
		}
		if d.Edge != edge {
			t.Errorf("%s edge = %d, want %d", d.Name, d.Edge, edge)
		}
		if d.Edge <= prev {
			t.Errorf("%s edge %d not ascending (prev %d)", d.Name, d.Edge, prev)
		}
		prev = d.Edge
	}
}

func TestIconPath(t *testing.T) {
	d := Density{"xhdpi", 48}
	got := d.IconPath("app/src/main/res", "ic_notification_leaf")
	want := filepath.Join("app/src/main/res", "drawable-xhdpi", "ic_notification_leaf.png")
	if got != want {
		t.Errorf("IconPath = %q, want %q", got, want)
	}
}

func TestBackupPath(t *testing.T) {
	d := Density{"mdpi", 24}
	got := d.BackupPath("backups", "ic_notification_cigarette")
	want := filepath.Join("backups", "ic_notification_cigarette_mdpi.png.backup")
	if got != want {
		t.Errorf("BackupPath = %q, want %q", got, want)
	}
}
