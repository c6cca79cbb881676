package codec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/arbor/internal/fsutil"
	"github.com/aretw0/arbor/pkg/domain"
)

// Format identifies a document representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the representation for a file path by extension.
// Anything that is not .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// MarshalFormat encodes root in the given format.
func MarshalFormat(root domain.Node, f Format) ([]byte, error) {
	if f == FormatYAML {
		return MarshalYAML(root)
	}
	return Marshal(root)
}

// UnmarshalFormat decodes data in the given format.
func UnmarshalFormat(data []byte, f Format) (domain.Node, error) {
	if f == FormatYAML {
		return UnmarshalYAML(data)
	}
	return Unmarshal(data)
}

// LoadFile reads and decodes the document at path.
// File-system failures match ErrIO; decode failures match ErrMalformedDocument.
func LoadFile(path string) (domain.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Node{}, &IOError{Op: "read", Path: path, Err: err}
	}

	root, err := UnmarshalFormat(data, FormatFor(path))
	if err != nil {
		var me *MalformedError
		if errors.As(err, &me) {
			me.File = path
		}
		return domain.Node{}, err
	}
	return root, nil
}

// SaveFile encodes root and writes it to path.
// The write goes to a temporary file in the same directory which is then
// renamed over path, so readers never observe a partial document.
func SaveFile(root domain.Node, path string) error {
	data, err := MarshalFormat(root, FormatFor(path))
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
