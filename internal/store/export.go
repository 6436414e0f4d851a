package store

import (
	"encoding/json"
	"io"

	"github.com/nkato/regulab/internal/loop"
)

type runExport struct {
	Meta    RunMetadata   `json:"meta"`
	Samples []loop.Sample `json:"samples"`
}

// WriteJSON emits a full run (metadata plus samples) as indented JSON.
func WriteJSON(w io.Writer, meta RunMetadata, samples []loop.Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: meta, Samples: samples})
}
