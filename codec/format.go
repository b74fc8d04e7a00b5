package codec

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/text/cases"
)

// Format identifies a document encoding.
type Format string

const (
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = "unknown"
)

// ParseFormat maps a format name in any letter case ("json", "YAML", "yml")
// to a Format. It returns FormatUnknown for anything else.
func ParseFormat(name string) Format {
	switch cases.Fold().String(name) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormatFromPath detects the format from a file extension.
func DetectFormatFromPath(path string) Format {
	switch cases.Fold().String(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent guesses the format from the first non-blank byte.
// JSON documents start with '{' or '['; anything else is treated as YAML.
func DetectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r\ufeff")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// FormatBytes formats a byte count using binary units (KiB, MiB, ...).
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
