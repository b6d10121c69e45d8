package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/YOKO3227/Webtoon/internal/store"
	"github.com/stretchr/testify/require"
)

type memObject struct {
	key         string
	contentType string
	data        []byte
	readErr     error
}

func (o *memObject) Key() string         { return o.key }
func (o *memObject) ContentType() string { return o.contentType }

func (o *memObject) ReadAll(context.Context) ([]byte, error) {
	if o.readErr != nil {
		return nil, o.readErr
	}
	return o.data, nil
}

// memBucket is an in-memory store.Bucket recording the keys asked for.
type memBucket struct {
	mu      sync.Mutex
	objects map[string]*memObject
	getErrs map[string]error
	gets    []string
}

func newMemBucket() *memBucket {
	return &memBucket{
		objects: map[string]*memObject{},
		getErrs: map[string]error{},
	}
}

func (b *memBucket) put(key, contentType string, data []byte) *memBucket {
	b.objects[key] = &memObject{key: key, contentType: contentType, data: data}
	return b
}

func (b *memBucket) Get(_ context.Context, key string) (store.Object, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gets = append(b.gets, key)
	if err, ok := b.getErrs[key]; ok {
		return nil, err
	}
	obj, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrObjectNotFound, key)
	}
	return obj, nil
}

func (b *memBucket) requested() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.gets...)
}

// pngBytes encodes a blank w x h PNG.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func ptr[T any](v T) *T {
	return &v
}
