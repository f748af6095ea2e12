package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	uploadEndpoint = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart&fields=id,name"
	uploadTimeout  = 60 * time.Second
)

// Client uploads exported reports to Google Drive
type Client struct {
	clientID     string
	clientSecret string
	tokenPath    string
	logger       *zap.Logger
}

// NewClient creates a new Drive upload client
func NewClient(clientID, clientSecret, tokenPath string, logger *zap.Logger) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenPath:    tokenPath,
		logger:       logger,
	}
}

// uploadResponse is the subset of the Drive file resource we read back
type uploadResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Upload uploads the file at localPath to Drive under the given name and
// returns the created file ID. The user is sent through the device code flow
// on first use; subsequent uploads reuse the stored token.
func (c *Client) Upload(ctx context.Context, localPath, name string) (string, error) {
	cfg := oauth2Config(c.clientID, c.clientSecret)

	ts, err := tokenSource(ctx, cfg, c.tokenPath)
	if err != nil {
		return "", fmt.Errorf("drive authentication failed: %w", err)
	}

	content, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	body, contentType, err := multipartBody(name, content)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadEndpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = uploadTimeout

	c.logger.Info("Uploading report to Drive",
		zap.String("file", localPath),
		zap.String("name", name))

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("Drive API returned status %d: %s", resp.StatusCode, detail)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	c.logger.Info("Report uploaded",
		zap.String("id", uploaded.ID),
		zap.String("name", uploaded.Name))

	return uploaded.ID, nil
}

// multipartBody builds the multipart/related payload the Drive v3 multipart
// upload expects: a JSON metadata part followed by the file content.
func multipartBody(name string, content []byte) (io.Reader, string, error) {
	metadata, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal file metadata: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := mw.CreatePart(metaHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create metadata part: %w", err)
	}
	if _, err := metaPart.Write(metadata); err != nil {
		return nil, "", fmt.Errorf("failed to write metadata part: %w", err)
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Type", contentTypeFor(name))
	filePart, err := mw.CreatePart(fileHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create content part: %w", err)
	}
	if _, err := filePart.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write content part: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	contentType := "multipart/related; boundary=" + mw.Boundary()
	return &buf, contentType, nil
}

func contentTypeFor(name string) string {
	switch filepath.Ext(name) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
