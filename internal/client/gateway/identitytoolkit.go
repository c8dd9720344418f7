package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
)

// DefaultIdentityToolkitURL is the public Firebase Identity Toolkit endpoint.
const DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com"

// toolkitCodes maps Identity Toolkit error messages to provider codes.
var toolkitCodes = map[string]string{
	"EMAIL_NOT_FOUND":             models.CodeUserNotFound,
	"INVALID_PASSWORD":            models.CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   models.CodeInvalidCredential,
	"USER_DISABLED":               models.CodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": models.CodeTooManyRequests,
	"EMAIL_EXISTS":                models.CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":               models.CodeWeakPassword,
	"OPERATION_NOT_ALLOWED":       models.CodeOperationNotAllowed,
	"PASSWORD_LOGIN_DISABLED":     models.CodeOperationNotAllowed,
	"INVALID_EMAIL":               models.CodeInvalidEmail,
	"MISSING_EMAIL":               models.CodeInvalidEmail,
}

// IdentityToolkitGateway is an AuthGateway backed by the Identity Toolkit
// REST API (the API behind Firebase email/password auth).
type IdentityToolkitGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewIdentityToolkitGateway creates a gateway. An empty baseURL selects
// DefaultIdentityToolkitURL and a nil client selects http.DefaultClient.
func NewIdentityToolkitGateway(baseURL, apiKey string, httpClient *http.Client) *IdentityToolkitGateway {
	if baseURL == "" {
		baseURL = DefaultIdentityToolkitURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IdentityToolkitGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type accountResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *IdentityToolkitGateway) SignIn(ctx context.Context, email, secret string) (models.Identity, error) {
	return g.account(ctx, "accounts:signInWithPassword", email, secret)
}

func (g *IdentityToolkitGateway) SignUp(ctx context.Context, email, secret string) (models.Identity, error) {
	return g.account(ctx, "accounts:signUp", email, secret)
}

func (g *IdentityToolkitGateway) SendPasswordReset(ctx context.Context, email string) error {
	return g.post(ctx, "accounts:sendOobCode", oobCodeRequest{RequestType: "PASSWORD_RESET", Email: email}, nil)
}

func (g *IdentityToolkitGateway) account(ctx context.Context, method, email, secret string) (models.Identity, error) {
	var resp accountResponse
	req := passwordRequest{Email: email, Password: secret, ReturnSecureToken: true}
	if err := g.post(ctx, method, req, &resp); err != nil {
		return models.Identity{}, err
	}
	if resp.LocalID == "" {
		return models.Identity{}, providerError(models.CodeInternalError, errors.New("response has no localId"))
	}
	if resp.Email == "" {
		resp.Email = email
	}
	return models.Identity{ID: resp.LocalID, Email: resp.Email}, nil
}

func (g *IdentityToolkitGateway) post(ctx context.Context, method string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return providerError(models.CodeInternalError, err)
	}

	endpoint := fmt.Sprintf("%s/v1/%s?key=%s", g.baseURL, method, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return providerError(models.CodeInternalError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return providerError(models.CodeNetworkRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeToolkitError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return providerError(models.CodeInternalError, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func decodeToolkitError(resp *http.Response) error {
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error.Message == "" {
		if resp.StatusCode >= http.StatusInternalServerError {
			return providerError(models.CodeNetworkRequestFailed, fmt.Errorf("upstream status %s", resp.Status))
		}
		return providerError(models.CodeInternalError, fmt.Errorf("unexpected status %s", resp.Status))
	}

	// Messages look like "WEAK_PASSWORD : Password should be at least 6 characters".
	reason := strings.TrimSpace(strings.SplitN(e.Error.Message, ":", 2)[0])
	if code, ok := toolkitCodes[reason]; ok {
		return providerError(code, errors.New(e.Error.Message))
	}
	return providerError(models.CodeInternalError, errors.New(e.Error.Message))
}
