package environment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatDotenv Format = "dotenv"
	FormatJS     Format = "js"
)

// JSVariable is the global the js format assigns the record to.
const JSVariable = "window.__env"

var ErrUnsupportedFormat = errors.New("unsupported format")

func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatDotenv, FormatJS}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "dotenv", "env":
		return FormatDotenv, nil
	case "js", "javascript":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatJS:
		return "text/javascript; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func Encode(w io.Writer, cfg Config, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case FormatDotenv:
		data, err := marshalDotenv(cfg.vars())
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, data+"\n")
		return err
	case FormatJS:
		data, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s = %s;\n", JSVariable, data)
		return err
	}
	return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
}

// Decode reads a record written by Encode. The js format is write only.
// Unknown keys are rejected for json and yaml.
func Decode(r io.Reader, f Format) (Config, error) {
	var cfg Config
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	case FormatDotenv:
		vars, err := godotenv.Parse(r)
		if err != nil {
			return Config{}, err
		}
		return Load(Config{}, LoadOptions{Environment: vars})
	}
	return Config{}, fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
}

// marshalDotenv is godotenv.Marshal with every value quoted. godotenv writes
// integers bare, which loses leading zeros and signs.
func marshalDotenv(vars map[string]string) (string, error) {
	data, err := godotenv.Marshal(vars)
	if err != nil {
		return "", err
	}
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		if ok && !strings.HasPrefix(value, `"`) {
			// integer values carry no characters that need escaping
			lines[i] = key + `="` + vars[key] + `"`
		}
	}
	return strings.Join(lines, "\n"), nil
}
