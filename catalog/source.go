package catalog

import (
	"context"
	"fmt"
	"os"
)

// Source supplies a payload to load a catalog from.
type Source interface {
	Load(ctx context.Context) (*Payload, error)
}

// FileSource loads a payload from a file on disk. When Key is set the file
// is treated as an encrypted blob and decrypted first.
type FileSource struct {
	Path string
	Key  string
}

var _ Source = FileSource{}

// Load reads, optionally decrypts and parses the payload file.
func (s FileSource) Load(ctx context.Context) (*Payload, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}
	if s.Key != "" {
		data, err = DecryptPayload(string(data), s.Key)
		if err != nil {
			return nil, err
		}
	}
	return ParsePayload(data)
}

// StaticSource serves an already-parsed payload. Useful in tests and for
// callers that fetch payloads themselves.
type StaticSource struct {
	Payload *Payload
}

var _ Source = StaticSource{}

func (s StaticSource) Load(ctx context.Context) (*Payload, error) {
	if s.Payload == nil {
		return nil, ErrUnrecognizedPayload
	}
	return s.Payload, nil
}
