package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	galleryerrors "tripora/internal/gallery/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDiskStoreSavePNG(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 1024)...)
	name, err := store.Save(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasSuffix(name, ".png") {
		t.Errorf("filename = %q, want .png suffix", name)
	}
	if name != filepath.Base(name) {
		t.Errorf("filename %q must not contain path separators", name)
	}

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("stored %d bytes, want %d", len(data), len(payload))
	}
}

func TestDiskStoreSaveSmallJPEG(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	// Shorter than the 512 byte sniff window
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	name, err := store.Save(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("filename = %q, want .jpg suffix", name)
	}
}

func TestDiskStoreRejectsNonImage(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	_, err = store.Save(strings.NewReader("#!/bin/sh\necho not an image\n"))
	if !errors.Is(err, galleryerrors.ErrUnsupportedType) {
		t.Fatalf("Save() error = %v, want ErrUnsupportedType", err)
	}

	entries, err := os.ReadDir(store.dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files behind", len(entries))
	}
}

func TestDiskStoreRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	name, err := store.Save(bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := store.Remove(name); err != nil {
		t.Errorf("Remove() of missing file error = %v, want nil", err)
	}
	if err := store.Remove("../outside.png"); err != nil {
		t.Errorf("Remove() with path traversal error = %v, want nil no-op", err)
	}
}
