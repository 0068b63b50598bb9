/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package idpclient implements the HTTP contract between the hosted pages and the identity provider.
package idpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/asgardeo/thunder-gate/internal/system/constants"
	syshttp "github.com/asgardeo/thunder-gate/internal/system/http"
	"github.com/asgardeo/thunder-gate/internal/system/log"
	"github.com/asgardeo/thunder-gate/internal/system/utils"
)

const (
	loggerComponentName = "IdPClient"
	maxResponseBodySize = 1 << 20
)

// IdPClientInterface defines the identity provider operations used by the hosted pages.
type IdPClientInterface interface {
	Login(ctx context.Context, request LoginRequest) (*RedirectResponse, error)
	Consent(ctx context.Context, request ConsentRequest) (*RedirectResponse, error)
	Register(ctx context.Context, request RegistrationRequest) error
	UpdateCredentials(ctx context.Context, token string, request UpdateCredentialsRequest) error
	RequestPasswordReset(ctx context.Context, token string, request PasswordResetRequest) error
	ResetPassword(ctx context.Context, request PasswordResetConfirmRequest) (*RedirectResponse, error)
}

// idpClient is the default implementation of IdPClientInterface.
type idpClient struct {
	baseURL    *url.URL
	httpClient syshttp.HTTPClientInterface
}

// NewIdPClient creates a client for the identity provider served at baseURL.
func NewIdPClient(baseURL string, httpClient syshttp.HTTPClientInterface) (IdPClientInterface, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("identity provider URL must be absolute: %q", baseURL)
	}
	if httpClient == nil {
		httpClient = syshttp.GetHTTPClient()
	}
	return &idpClient{
		baseURL:    parsed,
		httpClient: httpClient,
	}, nil
}

// Login submits the login form.
func (c *idpClient) Login(ctx context.Context, request LoginRequest) (*RedirectResponse, error) {
	return c.sendForRedirect(ctx, http.MethodPost, EndpointLogin, "", request)
}

// Consent submits the consent answer.
func (c *idpClient) Consent(ctx context.Context, request ConsentRequest) (*RedirectResponse, error) {
	return c.sendForRedirect(ctx, http.MethodPost, EndpointConsent, "", request)
}

// Register submits the registration form.
func (c *idpClient) Register(ctx context.Context, request RegistrationRequest) error {
	_, err := c.send(ctx, http.MethodPost, EndpointRegistration, "", request)
	return err
}

// UpdateCredentials submits the credential update form on behalf of the token holder.
func (c *idpClient) UpdateCredentials(ctx context.Context, token string,
	request UpdateCredentialsRequest) error {
	_, err := c.send(ctx, http.MethodPut, EndpointSecureUpdate, token, request)
	return err
}

// RequestPasswordReset starts a password reset. The token is optional.
func (c *idpClient) RequestPasswordReset(ctx context.Context, token string, request PasswordResetRequest) error {
	_, err := c.send(ctx, http.MethodPost, EndpointChangePassword, token, request)
	return err
}

// ResetPassword completes a password reset. The reset token travels in the body and, when set,
// as the bearer token.
func (c *idpClient) ResetPassword(ctx context.Context,
	request PasswordResetConfirmRequest) (*RedirectResponse, error) {
	return c.sendForRedirect(ctx, http.MethodPut, EndpointChangePassword, request.Token, request)
}

func (c *idpClient) sendForRedirect(ctx context.Context, method, endpoint, token string,
	body interface{}) (*RedirectResponse, error) {
	payload, err := c.send(ctx, method, endpoint, token, body)
	if err != nil {
		return nil, err
	}

	var response RedirectResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.RedirectTo == "" {
		return nil, ErrMissingRedirect
	}
	return &response, nil
}

// send issues one JSON request and returns the body of a 2xx response.
func (c *idpClient) send(ctx context.Context, method, endpoint, token string, body interface{}) ([]byte, error) {
	requestID := utils.GenerateUUID()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyRequestID, requestID))

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	target := c.baseURL.JoinPath(endpoint).String()
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set(constants.AuthorizationHeaderName, utils.BuildBearerAuthorization(token))
	}

	logger.Debug("Sending request to identity provider", log.String("method", method),
		log.String("endpoint", endpoint), log.Bool("authorized", token != ""))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to reach identity provider", log.String("endpoint", endpoint), log.Error(err))
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("Failed to close response body", log.Error(cerr))
		}
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Debug("Identity provider rejected request", log.String("endpoint", endpoint),
			log.Int("status", resp.StatusCode))
		return nil, &ResponseError{StatusCode: resp.StatusCode, Body: string(payload)}
	}
	return payload, nil
}
