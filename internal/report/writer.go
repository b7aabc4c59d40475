package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skip2/go-qrcode"
	"gopkg.in/yaml.v3"

	"github.com/mathdevth/bananabrix/internal/engine"
	"github.com/mathdevth/bananabrix/internal/system"
)

// Batch is the persisted form of a directory run.
type Batch struct {
	Version string           `json:"version,omitempty" yaml:"version,omitempty"`
	Model   string           `json:"model" yaml:"model"`
	Host    *system.Host     `json:"host,omitempty" yaml:"host,omitempty"`
	Summary engine.Summary   `json:"summary" yaml:"summary"`
	Results []*engine.Result `json:"results" yaml:"results"`
}

// Encode writes v as yaml or json.
func Encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// FormatFromPath picks yaml or json from a file extension, defaulting to yaml.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// WriteFile encodes v into path, creating parent directories.
func WriteFile(path, format string, v any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, format, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadBatch loads a batch report written by WriteFile in yaml or json.
func ReadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if FormatFromPath(path) == "json" {
		err = json.Unmarshal(data, &b)
	} else {
		err = yaml.Unmarshal(data, &b)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// QRSize is the edge length of generated QR images in pixels.
const QRSize = 256

// WriteQR stores the result's summary line as a QR code PNG.
func WriteQR(path string, r *engine.Result) error {
	return qrcode.WriteFile(SummaryLine(r), qrcode.Medium, QRSize, path)
}

// EncodeQR returns the summary line as QR code PNG bytes.
func EncodeQR(r *engine.Result) ([]byte, error) {
	return qrcode.Encode(SummaryLine(r), qrcode.Medium, QRSize)
}
