package export

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// ContentType is the MIME type written for each format.
var ContentType = map[Format]string{
	JSON:    "application/json",
	YAML:    "application/yaml",
	MsgPack: "application/msgpack",
}

// ParseFormat accepts a format name, case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromAccept picks the first supported format of an HTTP Accept
// header, defaulting to JSON.
func FormatFromAccept(header string) Format {
	for _, part := range strings.Split(header, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case "application/json":
			return JSON
		case "application/yaml", "application/x-yaml", "text/yaml":
			return YAML
		case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
			return MsgPack
		}
	}
	return JSON
}

// Encode writes v to w in the given format. JSON is indented.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
