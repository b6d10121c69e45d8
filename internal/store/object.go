package store

import "context"

// object is the [Object] implementation shared by all backends. read is
// called at most once per ReadAll invocation and owns the materialization.
type object struct {
	key         string
	contentType string
	read        func(ctx context.Context) ([]byte, error)
}

func (o *object) Key() string {
	return o.key
}

func (o *object) ContentType() string {
	return o.contentType
}

func (o *object) ReadAll(ctx context.Context) ([]byte, error) {
	return o.read(ctx)
}

// loadedObject wraps bytes that were already fetched with the handle.
func loadedObject(key, contentType string, data []byte) *object {
	return &object{
		key:         key,
		contentType: contentType,
		read: func(context.Context) ([]byte, error) {
			return data, nil
		},
	}
}
