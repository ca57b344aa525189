package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"skillora/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadSignature carries everything a client needs for a signed direct
// upload to the media host.
type UploadSignature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	CloudName string `json:"cloudName"`
	ApiKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
	PublicID  string `json:"publicId"`
}

// VideoDetails is the authoritative metadata fetched from the media host.
type VideoDetails struct {
	URL       string `json:"url"`
	Duration  int    `json:"duration"`
	Thumbnail string `json:"thumbnail"`
}

type videoResource struct {
	SecureURL    string  `json:"secure_url"`
	Duration     float64 `json:"duration"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignApiRequest computes the Cloudinary API signature: parameters sorted by
// key, joined as key=value with '&', with the API secret appended, SHA-1
// hex encoded.
func SignApiRequest(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + apiSecret))
	return hex.EncodeToString(sum[:])
}

// GenerateUploadSignature issues signed parameters for a direct client upload
// into the configured folder. Each call gets a fresh public ID.
func GenerateUploadSignature() UploadSignature {
	cfg := config.AppConfig
	timestamp := time.Now().Unix()
	publicID := uuid.NewString()

	signature := SignApiRequest(map[string]string{
		"folder":    cfg.CloudinaryFolder,
		"public_id": publicID,
		"timestamp": strconv.FormatInt(timestamp, 10),
	}, cfg.CloudinaryApiSecret)

	return UploadSignature{
		Timestamp: timestamp,
		Signature: signature,
		CloudName: cfg.CloudinaryCloudName,
		ApiKey:    cfg.CloudinaryApiKey,
		Folder:    cfg.CloudinaryFolder,
		PublicID:  publicID,
	}
}

// GetVideoDetails fetches duration and thumbnail for an uploaded asset from
// the media host admin API. Client-supplied metadata is never trusted.
func GetVideoDetails(publicID string) (*VideoDetails, error) {
	cfg := config.AppConfig
	url := fmt.Sprintf("%s/v1_1/%s/resources/video/upload/%s",
		strings.TrimSuffix(cfg.CloudinaryApiUrl, "/"), cfg.CloudinaryCloudName, publicID)

	var resource videoResource
	resp, err := resty.New().SetTimeout(10 * time.Second).R().
		SetBasicAuth(cfg.CloudinaryApiKey, cfg.CloudinaryApiSecret).
		SetResult(&resource).
		ForceContentType("application/json").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("media host returned %d for %s", resp.StatusCode(), publicID)
	}

	return &VideoDetails{
		URL:       resource.SecureURL,
		Duration:  int(math.Round(resource.Duration)),
		Thumbnail: resource.ThumbnailURL,
	}, nil
}

// DeleteVideo destroys a remote asset. Callers treat failures as advisory;
// local state stays authoritative.
func DeleteVideo(publicID string) error {
	cfg := config.AppConfig
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := SignApiRequest(map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}, cfg.CloudinaryApiSecret)

	url := fmt.Sprintf("%s/v1_1/%s/video/destroy",
		strings.TrimSuffix(cfg.CloudinaryApiUrl, "/"), cfg.CloudinaryCloudName)

	resp, err := resty.New().SetTimeout(10 * time.Second).R().
		SetFormData(map[string]string{
			"public_id": publicID,
			"api_key":   cfg.CloudinaryApiKey,
			"timestamp": timestamp,
			"signature": signature,
		}).
		Post(url)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("media host returned %d deleting %s", resp.StatusCode(), publicID)
	}
	return nil
}
