package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file types Load accepts.
var Extensions = []string{".csv", ".json"}

// Load reads a dataset, picking the parser by extension.
func Load(path string, opts Options) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return Data{}, err
		}
		defer f.Close()
		return ParseCSV(f, opts)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return Data{}, err
		}
		defer f.Close()
		return ParseJSON(f, opts)
	}
	return Data{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
}
