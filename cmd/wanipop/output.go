package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat is a pflag.Value restricted to the supported formats.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

const (
	outputFormatJSON outputFormat = "json"
	outputFormatYAML outputFormat = "yaml"
)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(value string) error {
	switch outputFormat(value) {
	case outputFormatJSON, outputFormatYAML:
		*f = outputFormat(value)
		return nil
	default:
		return fmt.Errorf("must be one of %s or %s", outputFormatJSON, outputFormatYAML)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

func (f outputFormat) write(w io.Writer, value any) error {
	switch f {
	case outputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Close > %w", err)
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("json.Encode > %w", err)
		}
	}
	return nil
}
