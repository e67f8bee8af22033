package lmfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoaderReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lm.txt")
	if err := os.WriteFile(path, []byte("ㄍㄨㄥㄙ 公司 -6.30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewLoader(path, ModeReadingFirst)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	if !loader.Snapshot().HasUnigrams("ㄍㄨㄥㄙ") {
		t.Fatal("expected initial snapshot to contain 公司")
	}

	if loader.ReloadIfChanged() {
		t.Fatal("expected no reload before the file changes")
	}

	if err := os.WriteFile(path, []byte("ㄍㄠㄎㄜㄐㄧˋ 高科技 -9.84\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if !loader.ReloadIfChanged() {
		t.Fatal("expected reload after the file changed")
	}
	if loader.Snapshot().HasUnigrams("ㄍㄨㄥㄙ") {
		t.Fatal("expected the stale entry to be gone after reload")
	}
	if !loader.Snapshot().HasUnigrams("ㄍㄠㄎㄜㄐㄧˋ") {
		t.Fatal("expected the new entry to be present after reload")
	}
}

func TestLoaderReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lm.txt")
	if err := os.WriteFile(path, []byte("ㄍㄨㄥㄙ 公司 -6.30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewLoader(path, ModeReadingFirst)
	if err != nil {
		t.Fatal(err)
	}
	defer loader.Close()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if loader.ReloadIfChanged() {
		t.Fatal("expected ReloadIfChanged to report failure, not success")
	}
	if !loader.Snapshot().HasUnigrams("ㄍㄨㄥㄙ") {
		t.Fatal("expected the previous snapshot to survive a failed reload")
	}
}
