package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"skillora/config"
	"skillora/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCloudinaryConfig(apiURL string) {
	config.AppConfig = &config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryApiKey:    "test-key",
		CloudinaryApiSecret: "test-secret",
		CloudinaryApiUrl:    apiURL,
		CloudinaryFolder:    "skillora_videos",
	}
}

func TestSignApiRequest(t *testing.T) {
	params := map[string]string{
		"timestamp": "1700000000",
		"public_id": "abc123",
		"folder":    "skillora_videos",
	}

	sig := utils.SignApiRequest(params, "secret")

	// SHA-1 hex digest
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), sig)

	// Deterministic for the same inputs
	assert.Equal(t, sig, utils.SignApiRequest(params, "secret"))

	// Secret changes the signature
	assert.NotEqual(t, sig, utils.SignApiRequest(params, "other-secret"))

	// So does any parameter
	params["public_id"] = "abc124"
	assert.NotEqual(t, sig, utils.SignApiRequest(params, "secret"))
}

func TestGenerateUploadSignature(t *testing.T) {
	setCloudinaryConfig("https://api.cloudinary.com")

	sig := utils.GenerateUploadSignature()

	assert.Equal(t, "demo", sig.CloudName)
	assert.Equal(t, "test-key", sig.ApiKey)
	assert.Equal(t, "skillora_videos", sig.Folder)
	assert.NotEmpty(t, sig.PublicID)
	assert.NotZero(t, sig.Timestamp)

	// The signature covers exactly the signed upload parameters
	expected := utils.SignApiRequest(map[string]string{
		"folder":    sig.Folder,
		"public_id": sig.PublicID,
		"timestamp": strconv.FormatInt(sig.Timestamp, 10),
	}, "test-secret")
	assert.Equal(t, expected, sig.Signature)

	// Every call issues a fresh public ID
	assert.NotEqual(t, sig.PublicID, utils.GenerateUploadSignature().PublicID)
}

func TestGetVideoDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/video/upload/lesson-1", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test-key", user)
		assert.Equal(t, "test-secret", pass)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"secure_url":    "https://res.cloudinary.com/demo/video/upload/lesson-1.mp4",
			"duration":      95.6,
			"thumbnail_url": "https://res.cloudinary.com/demo/video/upload/lesson-1.jpg",
		})
	}))
	defer server.Close()

	setCloudinaryConfig(server.URL)

	details, err := utils.GetVideoDetails("lesson-1")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/lesson-1.mp4", details.URL)
	assert.Equal(t, 96, details.Duration) // rounded to whole seconds
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/lesson-1.jpg", details.Thumbnail)
}

func TestGetVideoDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Resource not found"},
		})
	}))
	defer server.Close()

	setCloudinaryConfig(server.URL)

	_, err := utils.GetVideoDetails("missing")
	assert.Error(t, err)
}

func TestDeleteVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo/video/destroy", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "lesson-1", r.FormValue("public_id"))
		assert.Equal(t, "test-key", r.FormValue("api_key"))

		// Signature must cover public_id and timestamp
		expected := utils.SignApiRequest(map[string]string{
			"public_id": r.FormValue("public_id"),
			"timestamp": r.FormValue("timestamp"),
		}, "test-secret")
		assert.Equal(t, expected, r.FormValue("signature"))

		json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	}))
	defer server.Close()

	setCloudinaryConfig(server.URL)

	assert.NoError(t, utils.DeleteVideo("lesson-1"))
}
