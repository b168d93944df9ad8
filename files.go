// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/go-json-experiment/json"
)

// File is an uploaded file's metadata.
type File struct {
	ID        string   `json:"id"`
	Filename  string   `json:"filename"`
	Purpose   string   `json:"purpose"`
	Bytes     int64    `json:"bytes"`
	CreatedAt UnixTime `json:"created_at"`
	MIMEType  string   `json:"mime_type,omitempty"`
}

// FileUploadOptions carries optional parameters for UploadFile.
type FileUploadOptions struct {
	Purpose  string
	MIMEType string
}

// FileListResponse is one page of uploaded files.
type FileListResponse struct {
	Files []File `json:"files"`
	Total int64  `json:"total"`
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// UploadFile uploads content as a multipart form to the files endpoint.
// The content type defaults to application/octet-stream.
func (c *Client) UploadFile(ctx context.Context, filename string, content []byte, opts *FileUploadOptions) (*File, error) {
	mimeType := "application/octet-stream"
	if opts != nil && opts.MIMEType != "" {
		mimeType = opts.MIMEType
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("write file content: %w", err)
	}

	if opts != nil {
		if opts.Purpose != "" {
			if err := w.WriteField("purpose", opts.Purpose); err != nil {
				return nil, fmt.Errorf("write purpose field: %w", err)
			}
		}
		if opts.MIMEType != "" {
			if err := w.WriteField("mime_type", opts.MIMEType); err != nil {
				return nil, fmt.Errorf("write mime_type field: %w", err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	data, err := c.tr.raw(ctx, http.MethodPost, "/files", w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &file, nil
}

// ListFiles retrieves one page of uploaded files.
func (c *Client) ListFiles(ctx context.Context, limit, offset int) (*FileListResponse, error) {
	var resp FileListResponse
	path := fmt.Sprintf("/files?limit=%d&offset=%d", limit, offset)
	if err := c.tr.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFile retrieves metadata for one file.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	var file File
	if err := c.tr.do(ctx, http.MethodGet, "/files/"+fileID, nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile deletes a file by ID.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.tr.do(ctx, http.MethodDelete, "/files/"+fileID, nil, nil)
}

// DownloadFile returns the raw content of a file.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	return c.tr.raw(ctx, http.MethodGet, "/files/"+fileID+"/content", "", nil)
}
