// Package testdata embeds a small set of realistic sample METAR and
// TAF reports used as fixtures across the decoder test suite, in the
// same embed.FS-plus-bufio.Scanner shape as the upstream decoder's
// fixture package. The fixture set here is small enough to keep as
// plain text rather than gzip it.
package testdata

import (
	"bufio"
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed metar.txt taf.txt
var data embed.FS

func newScanner(t *testing.T, path string) *bufio.Scanner {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	scanner := bufio.NewScanner(f)
	return scanner
}

// METAR returns a scanner over one sample METAR/SPECI report per line.
func METAR(t *testing.T) *bufio.Scanner {
	return newScanner(t, "metar.txt")
}

// TAF returns a scanner over one sample TAF report per line.
func TAF(t *testing.T) *bufio.Scanner {
	return newScanner(t, "taf.txt")
}
