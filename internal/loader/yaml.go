package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	otmerrors "github.com/jacoelho/otm/errors"
)

// decodeYAML decodes every YAML document of a stream. Unknown keys are
// rejected.
func decodeYAML(name string, data []byte) ([]*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var docs []*Document
	for {
		doc := &Document{}
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, otmerrors.DiagnosticList{{
				Code:    string(otmerrors.ErrParse),
				Message: err.Error(),
				File:    name,
			}}
		}
		doc.File = name
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, otmerrors.DiagnosticList{{
			Code:    string(otmerrors.ErrInvalidDocument),
			Message: "document declares no library",
			File:    name,
		}}
	}
	return docs, nil
}
