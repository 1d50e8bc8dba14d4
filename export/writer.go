package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Marshal encodes methods as YAML
func Marshal(methods []*Method) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(methods); err != nil {
		return nil, fmt.Errorf("failed to encode scopes: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Write encodes methods and uploads them to URL
func Write(ctx context.Context, fs afs.Service, URL string, methods []*Method) error {
	if fs == nil {
		fs = afs.New()
	}
	data, err := Marshal(methods)
	if err != nil {
		return err
	}
	if err = fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload scopes to %v: %w", URL, err)
	}
	return nil
}
