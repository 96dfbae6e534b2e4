package testutil

import (
	"context"
	"testing"

	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

// NewMemBucket returns an in-memory bucket pre-seeded with the given
// objects. The bucket is closed when the test ends.
func NewMemBucket(t *testing.T, objects map[string]string) *blob.Bucket {
	t.Helper()

	b := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		b.Close()
	})

	for key, content := range objects {
		if err := b.WriteAll(context.Background(), key, []byte(content), nil); err != nil {
			t.Fatalf("seed bucket object %s: %v", key, err)
		}
	}
	return b
}

// FailingReader yields its content and then fails with err instead of
// signalling end of input.
type FailingReader struct {
	content []byte
	err     error
}

func NewFailingReader(content string, err error) *FailingReader {
	return &FailingReader{
		content: []byte(content),
		err:     err,
	}
}

func (f *FailingReader) Read(p []byte) (int, error) {
	if len(f.content) == 0 {
		return 0, f.err
	}
	n := copy(p, f.content)
	f.content = f.content[n:]
	return n, nil
}

func (f *FailingReader) Close() error {
	return nil
}
