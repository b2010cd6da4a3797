package whack

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

// The large golden pair is kept as base64 fixtures produced by the reference
// implementation; the encoder must reproduce the compressed block bit for
// bit and the decoder must invert it.
func TestCompatibility_ReferenceGoldenPair(t *testing.T) {
	plainPath := filepath.Join("testdata", "large.plain.b64")
	compressedPath := filepath.Join("testdata", "large.whack.b64")

	if _, err := os.Stat(plainPath); err != nil {
		t.Skipf("compat fixtures not found: %v", err)
	}

	plain := readBase64Fixture(t, plainPath)
	compressed := readBase64Fixture(t, compressedPath)

	cmp, err := Compress(plain, nil)
	if err != nil {
		t.Fatalf("Compress(%q): %v", plainPath, err)
	}
	if !bytes.Equal(cmp, compressed) {
		t.Fatalf("compressed block diverges from reference: got=%d want=%d", len(cmp), len(compressed))
	}

	out, err := Decompress(compressed, DefaultDecompressOptions(len(plain)))
	if err != nil {
		t.Fatalf("Decompress(%q): %v", compressedPath, err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("decoded mismatch: got=%d want=%d", len(out), len(plain))
	}
}

func readBase64Fixture(t *testing.T, path string) []byte {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", path, err)
	}

	data, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(raw)))
	if err != nil {
		t.Fatalf("decode fixture %q: %v", path, err)
	}

	return data
}
