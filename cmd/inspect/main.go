package main

/*
INSPECCIÓN + LIMPIEZA de los catálogos de Audible

Objetivo:
- Diagnosticar los dos CSV crudos (nulos, ratings no parseables,
  duplicados por (título, autor), distribución de ratings), y
- Correr el pipeline real de limpieza (merge + coerción + dedup) para
  reportar cuántas filas sobreviven.

Salida: consola + artifacts/clean_report.txt
*/

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/nivethika-g1/SoundSense/internal/catalog"
	"github.com/nivethika-g1/SoundSense/internal/config"
)

const reportPath = "artifacts/clean_report.txt"

func main() {
	log.SetPrefix("[inspect] ")
	log.SetFlags(0)

	cfg := config.Load()

	if err := os.MkdirAll("artifacts", 0o755); err != nil {
		log.Fatalf("no se pudo crear artifacts/: %v", err)
	}

	basic, err := catalog.ReadCSV(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("error leyendo catálogo básico: %v", err)
	}
	advanced, err := catalog.ReadCSV(cfg.AdvancedPath)
	if err != nil {
		log.Fatalf("error leyendo catálogo avanzado: %v", err)
	}

	log.Printf("catálogo básico   : %d filas, columnas: %s", len(basic.Rows), strings.Join(basic.Columns, " | "))
	log.Printf("catálogo avanzado : %d filas, columnas: %s", len(advanced.Rows), strings.Join(advanced.Columns, " | "))

	// ==================== LIMPIEZA REAL ====================
	books, reviewsOK, err := catalog.Load(basic, advanced)
	if err != nil {
		log.Fatalf("falló la limpieza: %v", err)
	}

	// distribución de ratings por estrellas enteras
	stars := map[int]int{}
	var sum float64
	emptyDesc := 0
	withReviews := 0
	for _, b := range books {
		s := int(b.Rating + 0.5)
		if s < 1 {
			s = 1
		}
		if s > 5 {
			s = 5
		}
		stars[s]++
		sum += b.Rating
		if b.Description == "" {
			emptyDesc++
		}
		if b.Reviews != nil {
			withReviews++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "== INSPECCIÓN catálogos Audible ==\n\n")
	fmt.Fprintf(&b, "Filas básico           : %d\n", len(basic.Rows))
	fmt.Fprintf(&b, "Filas avanzado         : %d\n", len(advanced.Rows))
	fmt.Fprintf(&b, "Libros post-limpieza   : %d\n", len(books))
	if len(books) > 0 {
		fmt.Fprintf(&b, "Rating promedio        : %.2f\n", sum/float64(len(books)))
	}
	fmt.Fprintf(&b, "Descripciones vacías   : %d\n", emptyDesc)
	fmt.Fprintf(&b, "Columna de reviews     : %v\n", reviewsOK)
	if reviewsOK {
		fmt.Fprintf(&b, "Libros con reviews     : %d\n", withReviews)
	}

	fmt.Fprintf(&b, "\n-- Distribución por estrellas enteras (1–5) --\n")
	keys := make([]int, 0, len(stars))
	for k := range stars {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %d★ : %d\n", k, stars[k])
	}

	fmt.Fprintf(&b, "\nNota: las filas descartadas (sin rating parseable o duplicadas)\n")
	fmt.Fprintf(&b, "se loguean durante el Load; ver salida de consola.\n")

	if err := os.WriteFile(reportPath, []byte(b.String()), 0o644); err != nil {
		log.Fatalf("no se pudo escribir el reporte: %v", err)
	}

	log.Printf("Listo. Reporte en %s", reportPath)
}
