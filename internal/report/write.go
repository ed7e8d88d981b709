package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// Write renders summaries to w. JSON and YAML always produce a list.
func Write(w io.Writer, format Format, summaries []Summary) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatText:
		for i, s := range summaries {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeText(w, s); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

func writeText(out io.Writer, s Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	name := s.Path
	if name == "" {
		name = "(tileset)"
	}
	fmt.Fprintf(w, "%s: %d tiles, %d orientations, %d edges, %d warnings\n",
		name, len(s.Tiles), s.Orientations, len(s.Edges), len(s.Warnings))

	if len(s.Tiles) > 0 {
		fmt.Fprintln(w, "  NAME\tSYMMETRY\tWEIGHT\tORIENTATIONS")
		for _, t := range s.Tiles {
			last := t.Offset + t.Cardinality - 1
			fmt.Fprintf(w, "  %s\t%s\t%g\t%d..%d\n", t.Name, t.Symmetry, t.Weight, t.Offset, last)
		}
	}
	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	return w.Flush()
}
