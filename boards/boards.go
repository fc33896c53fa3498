// Package boards bundles starting patterns into the binary.
package boards

import (
	"embed"
	"io/fs"
	"path"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

//go:embed *.json
var bundled embed.FS

// Names lists the bundled patterns, without the .json extension
func Names() ([]string, error) {
	matches, err := fs.Glob(bundled, "*.json")
	if err != nil {
		return nil, errors.Wrap(err, "[Names] failed to list bundled boards")
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[:len(m)-len(path.Ext(m))])
	}
	return names, nil
}

// Load decodes the bundled pattern with the given name
func Load(name string) (*model.Board, error) {
	f, err := bundled.Open(name + ".json")
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] no bundled board named %q", name)
	}
	defer f.Close()

	b, err := model.ReadBoard(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] bundled board %q is malformed", name)
	}
	return b, nil
}
