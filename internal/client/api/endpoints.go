package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"medadvisor/internal/client/models"
	"medadvisor/internal/common"
)

// userEnvelope is the {user: Identity} wrapper the auth and profile
// endpoints reply with.
type userEnvelope struct {
	User *models.Identity `json:"user"`
}

func decodeIdentity(data []byte) (*models.Identity, error) {
	var env userEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidServerResponse, err)
	}
	if !env.User.Valid() {
		return nil, common.ErrInvalidServerResponse
	}
	return env.User, nil
}

// Login authenticates with the backend. The session cookie set by the server
// lands in the client's jar and rides on every subsequent call.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	payload := map[string]string{"email": email, "password": password}
	data, err := c.requestJSON(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, withDefault(err, "Login failed. Please check your credentials.")
	}
	return decodeIdentity(data)
}

// Register creates an account. A successful registration is also a login:
// the server starts the session immediately.
func (c *HTTPClient) Register(ctx context.Context, email, password, username string) (*models.Identity, error) {
	payload := map[string]string{"email": email, "password": password, "username": username}
	data, err := c.requestJSON(ctx, http.MethodPost, "/auth/register", payload)
	if err != nil {
		return nil, withDefault(err, "Registration failed. Please try again.")
	}
	return decodeIdentity(data)
}

// Logout tells the server to drop the session. Callers treat it as
// best-effort; local state is cleared whether or not this succeeds.
func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.requestJSON(ctx, http.MethodPost, "/auth/logout", nil)
	return err
}

// Profile fetches the current user's profile.
func (c *HTTPClient) Profile(ctx context.Context) (*models.Identity, error) {
	data, err := c.do(ctx, http.MethodGet, "/profile", nil, "")
	if err != nil {
		return nil, withDefault(err, "Failed to fetch profile data")
	}
	return decodeIdentity(data)
}

// UpdateProfile changes the username server-side and returns the updated
// identity.
func (c *HTTPClient) UpdateProfile(ctx context.Context, username string) (*models.Identity, error) {
	payload := map[string]string{"username": username}
	data, err := c.requestJSON(ctx, http.MethodPut, "/profile/update", payload)
	if err != nil {
		return nil, withDefault(err, "Failed to update profile")
	}
	return decodeIdentity(data)
}

// UploadAvatar posts the image as the multipart file field "avatar" and
// returns the URL the server stored it under. Size and mime checks happen
// before this call, in the profile service.
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, image []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := fw.Write(image); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/profile/avatar", &buf, mw.FormDataContentType())
	if err != nil {
		return "", withDefault(err, "Failed to upload avatar")
	}

	var resp struct {
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.Unmarshal(data, &resp); err != nil || resp.AvatarURL == "" {
		return "", common.ErrInvalidServerResponse
	}
	return resp.AvatarURL, nil
}

// Predict submits the symptom list and returns the resulting record.
// A 400 reply means the server rejected the symptom set.
func (c *HTTPClient) Predict(ctx context.Context, symptoms []string) (*models.PredictionRecord, error) {
	payload := map[string][]string{"symptoms": symptoms}
	data, err := c.requestJSON(ctx, http.MethodPost, "/predict", payload)
	if err != nil {
		var se *ServerError
		if errors.As(err, &se) && se.Status == http.StatusBadRequest {
			se.Message = "Please select valid symptoms for prediction"
			return nil, err
		}
		return nil, withDefault(err, "Prediction failed. Please try again.")
	}

	var rec models.PredictionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidServerResponse, err)
	}
	return &rec, nil
}

// PredictionHistory returns all of the user's past predictions, newest
// ordering left to the server.
func (c *HTTPClient) PredictionHistory(ctx context.Context) ([]models.PredictionRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/prediction-history", nil, "")
	if err != nil {
		return nil, withDefault(err, "Failed to fetch prediction history")
	}

	var recs []models.PredictionRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidServerResponse, err)
	}
	return recs, nil
}
