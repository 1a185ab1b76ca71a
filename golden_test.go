package yaml

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			dec := json.NewDecoder(bytes.NewReader(src))
			dec.UseNumber()
			var doc any
			require.NoError(t, dec.Decode(&doc))

			actual, err := Dump(FromGoValue(doc), Inline(4))
			require.NoError(t, err)

			goldenFile := strings.Replace(file, ".json", ".golden", 1)
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, []byte(actual), 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err)
			require.Equal(t, string(expected), actual)
		})
	}
}
