package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/config"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put    *s3.PutObjectInput
	delete *s3.DeleteObjectInput
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.delete = in
	return &s3.DeleteObjectOutput{}, f.err
}

func newTestStorage(client s3API) *s3Storage {
	s := NewS3(slog.New(slog.NewTextHandler(io.Discard, nil)), config.Storage{
		Bucket: "huerto-hogar-documentos",
		Region: "us-east-1",
	})
	s.client = client
	s.now = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"boleta.pdf", "boleta.pdf"},
		{"mi boleta (1).pdf", "mi_boleta__1_.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\docs\año.xlsx`, "a_o.xlsx"},
		{"", "file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), tt.in)
	}
}

func TestS3Storage_KeyAndURL(t *testing.T) {
	s := newTestStorage(nil)

	key := s.Key("factura marzo.pdf")
	assert.True(t, strings.HasPrefix(key, "documents/2025/03/"), key)
	assert.True(t, strings.HasSuffix(key, "-factura_marzo.pdf"), key)
	assert.NotEqual(t, key, s.Key("factura marzo.pdf"))

	assert.Equal(t, "https://huerto-hogar-documentos.s3.us-east-1.amazonaws.com/"+key, s.URL(key))
}

func TestS3Storage_Simulated(t *testing.T) {
	s := newTestStorage(nil)
	require.True(t, s.Simulated())

	assert.NoError(t, s.Put(context.Background(), "documents/k", "text/plain", strings.NewReader("hola"), 4))
	assert.NoError(t, s.Delete(context.Background(), "documents/k"))
}

func TestS3Storage_Put(t *testing.T) {
	client := &fakeS3{}
	s := newTestStorage(client)

	err := s.Put(context.Background(), "documents/k", "application/pdf", strings.NewReader("%PDF"), 4)
	require.NoError(t, err)

	require.NotNil(t, client.put)
	assert.Equal(t, "huerto-hogar-documentos", aws.ToString(client.put.Bucket))
	assert.Equal(t, "documents/k", aws.ToString(client.put.Key))
	assert.Equal(t, "application/pdf", aws.ToString(client.put.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(client.put.ContentLength))
}

func TestS3Storage_Errors(t *testing.T) {
	s := newTestStorage(&fakeS3{err: errors.New("access denied")})

	err := s.Put(context.Background(), "documents/k", "text/plain", strings.NewReader("x"), 1)
	assert.Equal(t, entities.KindDependency, entities.KindOf(err))

	err = s.Delete(context.Background(), "documents/k")
	assert.Equal(t, entities.KindDependency, entities.KindOf(err))
}
