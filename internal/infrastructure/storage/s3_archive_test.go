package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Archive_Upload(t *testing.T) {
	t.Run("stores the document", func(t *testing.T) {
		fake := &fakeS3{}
		a := NewS3Archive(fake, "pdfs")

		loc, err := a.Upload(context.Background(), "orcamentos/orcamento_ORC-1_2024-05-10.pdf", []byte("%PDF-1.3"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc != "s3://pdfs/orcamentos/orcamento_ORC-1_2024-05-10.pdf" {
			t.Fatalf("unexpected location %q", loc)
		}
		if aws.ToString(fake.input.Bucket) != "pdfs" || aws.ToString(fake.input.ContentType) != "application/pdf" || string(fake.body) != "%PDF-1.3" {
			t.Fatalf("unexpected input: %+v body=%q", fake.input, fake.body)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		a := NewS3Archive(&fakeS3{err: errors.New("access denied")}, "pdfs")
		if _, err := a.Upload(context.Background(), "k", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
