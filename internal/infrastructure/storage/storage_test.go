package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeKey_ConservaExtensionSegura(t *testing.T) {
	now := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	k := resumeKey("Mi CV.PDF", now)
	assert.True(t, strings.HasPrefix(k, "resumes/2026/05/07/"), k)
	assert.True(t, strings.HasSuffix(k, ".pdf"), k)

	assert.Equal(t, "", safeExt("cv"))
	assert.Equal(t, "", safeExt("cv.p$f"))
	assert.Equal(t, ".docx", safeExt("cv.DOCX"))
}

func TestLocalStorage_SaveURLDelete(t *testing.T) {
	ctx := context.Background()
	st, err := NewLocalStorage(t.TempDir(), "/media/")
	require.NoError(t, err)

	key, err := st.Save(ctx, "cv.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(st.Root(), filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	url, err := st.URL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "/media/"+key, url)

	require.NoError(t, st.Delete(ctx, key))
	require.NoError(t, st.Delete(ctx, key), "borrar dos veces no es error")
}

func TestLocalStorage_RechazaClavesFueraDeRaiz(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)
	assert.Error(t, st.Delete(context.Background(), "../../etc/passwd"))
	_, err = st.URL(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted string
	putErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = *in.Key
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return &v4.PresignedHTTPRequest{URL: "https://s3.example/" + *in.Bucket + "/" + *in.Key + "?X-Amz-Signature=x"}, nil
}

func TestS3Storage_Save(t *testing.T) {
	fake := &fakeS3{}
	st := newS3Storage("resumes-bucket", fake, fake)

	key, err := st.Save(context.Background(), "cv.pdf", []byte("pdf-bytes"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, key, *fake.put.Key)
	assert.Equal(t, "resumes-bucket", *fake.put.Bucket)
	assert.Equal(t, "application/pdf", *fake.put.ContentType)
	assert.Equal(t, int64(9), *fake.put.ContentLength)
	assert.Equal(t, "pdf-bytes", string(fake.body))

	url, err := st.URL(context.Background(), key)
	require.NoError(t, err)
	assert.Contains(t, url, "resumes-bucket/"+key)

	require.NoError(t, st.Delete(context.Background(), key))
	assert.Equal(t, key, fake.deleted)
}

func TestS3Storage_SaveError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("timeout")}
	st := newS3Storage("b", fake, fake)
	_, err := st.Save(context.Background(), "cv.pdf", []byte("x"), "")
	assert.Error(t, err)
}
