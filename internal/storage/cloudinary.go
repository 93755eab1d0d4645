package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CloudinaryStorage uploads photos to Cloudinary and returns the durable
// public URL. Uses raw signed HTTP calls, no SDK.
type CloudinaryStorage struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
	now        func() time.Time
}

// NewCloudinaryStorage creates a CloudinaryStorage for the given account.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) *CloudinaryStorage {
	return &CloudinaryStorage{
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

var _ Storage = (*CloudinaryStorage)(nil)

// publicID strips the file extension from key and prepends the folder,
// matching how Cloudinary addresses assets.
func (s *CloudinaryStorage) publicID(key string) string {
	id := key
	if i := strings.LastIndexByte(id, '.'); i > 0 {
		id = id[:i]
	}
	if s.folder != "" {
		id = s.folder + "/" + id
	}
	return id
}

// sign produces the SHA-1 request signature Cloudinary expects over the
// sorted parameter string plus the API secret.
func (s *CloudinaryStorage) sign(params string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(params+s.apiSecret)))
}

func (s *CloudinaryStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return "", fmt.Errorf("storage: cloudinary credentials missing")
	}

	publicID := s.publicID(key)
	timestamp := fmt.Sprintf("%d", s.now().Unix())
	signature := s.sign(fmt.Sprintf("public_id=%s&timestamp=%s", publicID, timestamp))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", key)
	if err != nil {
		return "", fmt.Errorf("storage: build form: %w", err)
	}
	if _, err := io.Copy(fw, data); err != nil {
		return "", fmt.Errorf("storage: read photo: %w", err)
	}
	_ = mw.WriteField("api_key", s.apiKey)
	_ = mw.WriteField("public_id", publicID)
	_ = mw.WriteField("timestamp", timestamp)
	_ = mw.WriteField("signature", signature)
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("storage: build form: %w", err)
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("storage: read response: %w", err)
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("storage: parse response: %w", err)
	}
	if res.StatusCode != http.StatusOK || parsed.Error.Message != "" {
		return "", fmt.Errorf("storage: upload failed (status %d): %s", res.StatusCode, parsed.Error.Message)
	}

	u := parsed.SecureURL
	if u == "" {
		u = parsed.URL
	}
	if u == "" {
		return "", fmt.Errorf("storage: upload returned no url")
	}
	return u, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, key string) error {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return fmt.Errorf("storage: cloudinary credentials missing")
	}

	publicID := s.publicID(key)
	timestamp := fmt.Sprintf("%d", s.now().Unix())
	signature := s.sign(fmt.Sprintf("public_id=%s&timestamp=%s", publicID, timestamp))

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("api_key", s.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/destroy"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: destroy: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("storage: destroy failed (status %d)", res.StatusCode)
	}
	return nil
}
