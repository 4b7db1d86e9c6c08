package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/meshtopo/pkg/ifs"
	"gopkg.in/yaml.v3"
)

// exitOnError prints err in the CLI's error format and exits
func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		os.Exit(1)
	}
}

func loadMesh(path string) (*ifs.IndexedFaceSet, error) {
	set, err := ifs.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded mesh",
		"path", path,
		"vertices", set.NumberOfVertices(),
		"faces", set.NumberOfFaces())
	return set, nil
}

// writeStructured encodes v as YAML or JSON. It reports false for the text
// format, which every command prints itself.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	}
	return false, nil
}

// writeMesh saves the rewritten set to output, or prints it to w in the
// format of the input file when output is empty.
func writeMesh(w io.Writer, set *ifs.IndexedFaceSet, input, output string) error {
	if output != "" {
		if err := ifs.Save(output, set); err != nil {
			return err
		}
		logger.Info("wrote mesh", "path", output)
		return nil
	}
	return ifs.Encode(w, set, ifs.FormatForPath(input))
}
