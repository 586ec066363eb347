package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	data := "Book Name,Author,Rating\n" +
		"\"Alpha, el inicio\",Ana,4.5\n" +
		"Beta,Beto,3.9\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	tbl, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Book Name", "Author", "Rating"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	// comas entrecomilladas no parten la celda
	assert.Equal(t, "Alpha, el inicio", tbl.Rows[0][0])
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV("/no/existe.csv")
	assert.Error(t, err)
}
