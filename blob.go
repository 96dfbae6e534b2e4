package mapok

import (
	"context"

	"github.com/rotisserie/eris"
	"gocloud.dev/blob"

	"github.com/csimplestring/mapok-go/errno"
)

// ReadBucket opens the blob stored under key and returns an iterator over
// its lines. The caller owns the iterator and should close it when done.
func ReadBucket(ctx context.Context, b *blob.Bucket, key string) (Iter[string], error) {
	r, err := b.NewReader(ctx, key, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "open bucket reader for %s", key)
	}

	return FromReadCloser(r), nil
}

// WriteBucket drains the line iterator into the blob stored under key, one
// line per element, closing the iterator on every path. With overwrite false
// an existing key fails with errno.ErrFileAlreadyExists; the existence check
// is not atomic across concurrent writers.
func WriteBucket(ctx context.Context, b *blob.Bucket, key string, lines Iter[string], overwrite bool) (err error) {
	if lines == nil {
		return errno.NilIterator()
	}
	// a write error takes precedence over the close error
	defer func() {
		if cerr := lines.Close(); err == nil {
			err = cerr
		}
	}()

	if !overwrite {
		exists, err := b.Exists(ctx, key)
		if err != nil {
			return eris.Wrapf(err, "check existence of %s", key)
		}
		if exists {
			return errno.FileAlreadyExists(key)
		}
	}

	w, err := b.NewWriter(ctx, key, nil)
	if err != nil {
		return eris.Wrapf(err, "open bucket writer for %s", key)
	}

	if _, err := w.ReadFrom(AsReadCloser(lines, true)); err != nil {
		w.Close()
		return eris.Wrapf(err, "write lines to %s", key)
	}
	if err := w.Close(); err != nil {
		return eris.Wrapf(err, "close bucket writer for %s", key)
	}

	return nil
}
