package supabase_storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/bacauscout/scout/go/clients"
)

// StorageClient talks to the Supabase Storage REST API with a service key
type StorageClient struct {
	*clients.BaseClient
}

func NewStorageClient(projectURL, serviceKey string) *StorageClient {
	client := &StorageClient{
		BaseClient: clients.NewBaseClient(strings.TrimRight(projectURL, "/")),
	}

	client.SetHeader(APIKeyHeader, serviceKey)
	client.SetHeader(AuthorizationHeader, "Bearer "+serviceKey)

	return client
}

// Upload stores body under bucket/key. An existing object is never
// overwritten.
func (c *StorageClient) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	_, err := c.Post(ctx, objectPath(ObjectEndpoint, bucket, key), body, map[string]string{
		"Content-Type": contentType,
		UpsertHeader:   "false",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL returns the public download link of bucket/key
func (c *StorageClient) PublicURL(bucket, key string) string {
	return c.BaseURL() + objectPath(PublicObjectEndpoint, bucket, key)
}

// ObjectKey recovers the object key from a link built by PublicURL
func (c *StorageClient) ObjectKey(bucket, publicURL string) (string, bool) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}
	prefix := PublicObjectEndpoint + "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, prefix)
	return key, key != ""
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove deletes the given keys from bucket
func (c *StorageClient) Remove(ctx context.Context, bucket string, keys ...string) error {
	body, err := json.Marshal(removeRequest{Prefixes: keys})
	if err != nil {
		return fmt.Errorf("failed to encode remove request: %w", err)
	}

	_, err = c.Delete(ctx, ObjectEndpoint+"/"+url.PathEscape(bucket), bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to remove objects from %s: %w", bucket, err)
	}
	return nil
}

func objectPath(endpoint, bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return endpoint + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
