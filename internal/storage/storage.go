package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/plasmalab/internal/units"
)

// Store saves beta sweep runs under a data directory, one directory per
// run with metadata.json and sweep.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Region       string    `json:"region"`
	Timestamp    time.Time `json:"timestamp"`
	TemperatureK float64   `json:"temperature_k"`
	DensityM3    float64   `json:"density_m3"`
	FieldFromG   float64   `json:"field_from_g"`
	FieldToG     float64   `json:"field_to_g"`
	Points       int       `json:"points"`
	BetaMin      float64   `json:"beta_min"`
	BetaMax      float64   `json:"beta_max"`
}

// Save writes a sweep run and returns its id.
func (s *Store) Save(region string, T, n units.Quantity, fields units.Series, betas []float64) (string, error) {
	if fields.Len() != len(betas) {
		return "", fmt.Errorf("storage: %d fields but %d betas", fields.Len(), len(betas))
	}
	if fields.Len() == 0 {
		return "", fmt.Errorf("storage: empty sweep")
	}

	tk, err := T.In("K")
	if err != nil {
		return "", err
	}
	nm, err := n.In("m^-3")
	if err != nil {
		return "", err
	}
	gauss, err := fields.In("G")
	if err != nil {
		return "", err
	}

	runID := fmt.Sprintf("%s_%d", strings.ReplaceAll(region, " ", "_"), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	betaMin, betaMax := betas[0], betas[0]
	for _, b := range betas {
		if b < betaMin {
			betaMin = b
		}
		if b > betaMax {
			betaMax = b
		}
	}

	meta := RunMetadata{
		ID:           runID,
		Region:       region,
		Timestamp:    time.Now(),
		TemperatureK: tk,
		DensityM3:    nm,
		FieldFromG:   gauss[0],
		FieldToG:     gauss[len(gauss)-1],
		Points:       len(gauss),
		BetaMin:      betaMin,
		BetaMax:      betaMax,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "sweep.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"field_gauss", "beta"}); err != nil {
		return "", err
	}
	for i := range gauss {
		row := []string{
			strconv.FormatFloat(gauss[i], 'e', 6, 64),
			strconv.FormatFloat(betas[i], 'e', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("storage: run not found: %s", runID)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads a run's sweep back as field strengths in gauss plus
// beta values, in saved order.
func (s *Store) LoadSeries(runID string) (fields, betas []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "sweep.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("storage: run not found: %s", runID)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		g, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, err
		}
		b, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, g)
		betas = append(betas, b)
	}
	return fields, betas, nil
}

type exportPayload struct {
	Meta   RunMetadata `json:"meta"`
	FieldG []float64   `json:"field_gauss"`
	Beta   []float64   `json:"beta"`
}

// ExportJSONStdout writes a run as a single JSON document to stdout.
func ExportJSONStdout(meta *RunMetadata, fields, betas []float64) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportPayload{Meta: *meta, FieldG: fields, Beta: betas})
}
