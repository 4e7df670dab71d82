package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

var formats = map[Style]*template.Template{
	// md5sum et al
	styleSFV: template.Must(template.New("sfv").Parse("{{.Sum}}  {{.File}}")),
	// BSD digest
	styleBSD: template.Must(template.New("bsd").Parse("{{.Name}} ({{.File}}) = {{.Sum}}")),
}

func parseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "sfv":
		return styleSFV, nil
	case "bsd":
		return styleBSD, nil
	case "json":
		return styleJSON, nil
	}
	return 0, fmt.Errorf("unknown style: %s", s)
}

func newOutput(c *Checksum) *Output {
	return &Output{
		Name: algorithms[c.hash].name,
		File: c.file,
		Sum:  hex.EncodeToString(c.sum),
	}
}

// renderOutputs renders computed digests in the selected style. The JSON
// style serializes all outputs as a single record array so the result reads
// back as a checksum file.
func renderOutputs(outputs []*Output, style Style) ([]string, error) {
	if style == styleJSON {
		var data []byte
		var err error
		if opts.pretty {
			data, err = json.MarshalIndent(outputs, "", "  ")
		} else {
			data, err = json.Marshal(outputs)
		}
		if err != nil {
			return nil, err
		}
		return []string{string(data)}, nil
	}
	lines := make([]string, len(outputs))
	for i, output := range outputs {
		var sb strings.Builder
		if err := formats[style].Execute(&sb, output); err != nil {
			return nil, err
		}
		lines[i] = sb.String()
	}
	return lines, nil
}
