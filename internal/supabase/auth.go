package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const authPath = "/auth/v1"

// AuthClient talks to the Supabase GoTrue endpoint. Passwords and sessions
// live entirely in GoTrue; this client only ferries credentials and tokens.
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpResponse covers both GoTrue shapes: autoconfirm deployments return a
// session with a nested user, confirmation flows return the bare user.
type signUpResponse struct {
	User
	NestedUser *User `json:"user"`
}

// SignUp registers a new account and returns the created user.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (*User, error) {
	var response signUpResponse
	err := a.doRequest(ctx, http.MethodPost, "/signup", "", credentialsRequest{Email: email, Password: password}, &response)
	if err != nil {
		return nil, err
	}

	if response.NestedUser != nil && response.NestedUser.ID != "" {
		return response.NestedUser, nil
	}
	if response.ID == "" {
		return nil, fmt.Errorf("no user returned")
	}
	user := response.User
	return &user, nil
}

type passwordGrantResponse struct {
	Session
	User *User `json:"user"`
}

// SignInWithPassword exchanges credentials for a token pair.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, *User, error) {
	var response passwordGrantResponse
	err := a.doRequest(ctx, http.MethodPost, "/token?grant_type=password", "", credentialsRequest{Email: email, Password: password}, &response)
	if err != nil {
		return nil, nil, err
	}

	if response.AccessToken == "" || response.User == nil {
		return nil, nil, fmt.Errorf("no session returned")
	}
	session := response.Session
	return &session, response.User, nil
}

// GetUser resolves an access token to its user.
func (a *AuthClient) GetUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := a.doRequest(ctx, http.MethodGet, "/user", token, nil, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("no user for token")
	}
	return &user, nil
}

func (a *AuthClient) doRequest(ctx context.Context, method, endpoint, token string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+authPath+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", a.anonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "Bearer "+a.anonKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, gotrueErrorMessage(resp.Body))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// gotrueErrorMessage pulls the human-readable message out of the several
// error envelopes GoTrue uses.
func gotrueErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(body)

	var envelope struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, candidate := range []string{envelope.ErrorDescription, envelope.Msg, envelope.Message, envelope.Error} {
			if candidate != "" {
				return candidate
			}
		}
	}
	return string(raw)
}
