package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table es un record set tabular crudo tal como viene del CSV.
// Las columnas no tienen nombres contractuales: el loader las
// resuelve por substring (ver loader.go).
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadCSV carga un CSV completo en memoria. Los catálogos de Audible
// son chicos (miles de filas), así que no hace falta streaming.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = -1 // acepta filas con comas entrecomilladas

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera de %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Columns: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila malformada: se ignora, igual que filas nulas
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// cell devuelve la celda (fila, columna) con trim, o "" si la fila es corta.
func (t *Table) cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
