// Package report exports the status store after a run, either as a file
// in YAML, TOML or JSON or as a table for the terminal.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format is a report file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Report is the document written to disk
type Report struct {
	Scripts map[string]types.BuildRecord `json:"scripts" yaml:"scripts" toml:"scripts"`
}

// New wraps a status snapshot
func New(snapshot map[string]types.BuildRecord) Report {
	if snapshot == nil {
		snapshot = map[string]types.BuildRecord{}
	}
	return Report{Scripts: snapshot}
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"cannot tell report format from %q, use .yaml, .toml or .json", path).
			WithDetail("path", path)
	}
}

// Encode writes r to w in the given format
func (r Report) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown report format: %s", format)
	}
}

// Decode reads a report in the given format
func Decode(rd io.Reader, format Format) (Report, error) {
	var r Report
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(rd).Decode(&r)
	case FormatTOML:
		err = toml.NewDecoder(rd).Decode(&r)
	case FormatJSON:
		err = json.NewDecoder(rd).Decode(&r)
	default:
		return r, errors.Newf(errors.ErrInvalidInput, "unknown report format: %s", format)
	}
	if err != nil {
		return r, err
	}

	if r.Scripts == nil {
		r.Scripts = map[string]types.BuildRecord{}
	}
	for name, rec := range r.Scripts {
		if rec.ExtraParameters == nil {
			rec.ExtraParameters = map[string]string{}
			r.Scripts[name] = rec
		}
	}
	return r, nil
}

// WriteFile encodes r into path, choosing the format from its extension
func (r Report) WriteFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode %s report", format)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to write report %s", path)
	}
	return nil
}

// ReadFile loads a report written by WriteFile
func ReadFile(path string) (Report, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Report{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f, format)
}

// Table renders one row per script, sorted by name
func (r Report) Table() (string, error) {
	data := pterm.TableData{{"Script", "Version", "Source", "Parameters"}}
	for _, name := range r.Names() {
		rec := r.Scripts[name]
		params := make([]string, 0, len(rec.ExtraParameters))
		for _, k := range types.Params(rec.ExtraParameters).Keys() {
			params = append(params, fmt.Sprintf("%s=%s", k, rec.ExtraParameters[k]))
		}
		data = append(data, []string{
			name,
			orDash(rec.Version),
			orDash(rec.SourceDirectory),
			orDash(strings.Join(params, " ")),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
}

// Names returns the script names in the report in lexicographic order
func (r Report) Names() []string {
	names := make([]string, 0, len(r.Scripts))
	for name := range r.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
