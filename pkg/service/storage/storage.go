package storage

import (
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
)

const defaultPrefix = "uploads"

// GCS uploads files to a Google Cloud Storage bucket and returns their public URL
type GCS struct {
	client  *storage.Client
	bucket  string
	prefix  string
	baseURL string
}

var _ interfaces.FileStorage = &GCS{}

type Option func(*GCS)

// WithPrefix sets the object name prefix. Defaults to "uploads".
func WithPrefix(prefix string) Option {
	return func(g *GCS) {
		g.prefix = strings.Trim(prefix, "/")
	}
}

// WithBaseURL serves objects from a CDN or custom domain instead of storage.googleapis.com
func WithBaseURL(base string) Option {
	return func(g *GCS) {
		g.baseURL = strings.TrimRight(base, "/")
	}
}

func New(ctx context.Context, bucket string, opts ...Option) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	g := &GCS{
		client:  client,
		bucket:  bucket,
		prefix:  defaultPrefix,
		baseURL: "https://storage.googleapis.com/" + bucket,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Upload streams r to a fresh object name derived from name
func (g *GCS) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	object := objectName(g.prefix, uuid.NewString(), name)

	w := g.client.Bucket(g.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write object", goerr.V("bucket", g.bucket), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize object", goerr.V("bucket", g.bucket), goerr.V("object", object))
	}

	return publicURL(g.baseURL, object), nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}

// objectName builds prefix/id/base, keeping only the base name of the upload
func objectName(prefix, id, name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return path.Join(prefix, id, base)
}

func publicURL(baseURL, object string) string {
	parts := strings.Split(object, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return baseURL + "/" + strings.Join(parts, "/")
}
