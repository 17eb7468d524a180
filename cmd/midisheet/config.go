package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/divVerent/midisheet/internal/file"
	"github.com/divVerent/midisheet/internal/processor"
)

// dirFS returns a file system rooted at the directory of name, and the name within it.
func dirFS(name string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(name)), filepath.Base(name)
}

func loadConfig() (*processor.Config, error) {
	name, required := configFile, true
	if name == "" {
		name, required = DefaultConfigFile, false
	}
	fsys, base := dirFS(name)
	return file.LoadConfig(fsys, base, required, overrides)
}
