package storage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlob_MissingDocument(t *testing.T) {
	blob := NewFileBlob(t.TempDir())

	_, err := blob.Read(context.Background(), "products.json")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestFileBlob_WriteCreatesDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	blob := NewFileBlob(dir)
	ctx := context.Background()

	require.NoError(t, blob.Write(ctx, "pantry_history.json", []byte(`[]`)))
	require.NoError(t, blob.Write(ctx, "pantry_history.json", []byte(`[{"item":"Milk"}]`)))

	data, err := blob.Read(ctx, "pantry_history.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"item":"Milk"}]`, string(data))
}

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func TestAwsS3_ReadWrite(t *testing.T) {
	blob := NewAwsS3WithClient(&fakeS3{objects: map[string][]byte{}}, "pantry-bucket")
	ctx := context.Background()

	_, err := blob.Read(ctx, "products.json")
	assert.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, blob.Write(ctx, "products.json", []byte(`{}`)))
	data, err := blob.Read(ctx, "products.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
