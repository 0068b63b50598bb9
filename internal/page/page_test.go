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

package page

import (
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-gate/internal/dom/memdom"
	"github.com/asgardeo/thunder-gate/internal/flowcontext"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/tests/mocks/idpclientmock"
)

const (
	loginPageHTML = `
<div id="notification" hidden></div>
<form>
  <input id="login-username" type="text">
  <input id="login-password" type="password">
  <input id="login-remember" type="checkbox">
  <button id="login-submit">Sign in</button>
</form>`

	consentPageHTML = `
<div id="notification" hidden></div>
<form>
  <input class="consent-grant-scope" type="checkbox" value="openid" checked>
  <input class="consent-grant-scope" type="checkbox" value="email">
  <input class="consent-grant-scope" type="hidden" value="offline">
  <button id="consent-allow">Allow</button>
  <button id="consent-deny">Deny</button>
</form>`

	consentNoScopesHTML = `
<div id="notification" hidden></div>
<input class="consent-grant-scope" type="checkbox" value="openid">
<button id="consent-allow">Allow</button>
<button id="consent-deny">Deny</button>`

	policyHTML = `
<input id="password-min-characters" type="hidden" value="8">
<input id="password-max-characters" type="hidden" value="64">
<input id="password-min-unique-characters" type="hidden" value="4">`

	registrationPageHTML = `
<div id="notification" hidden></div>` + policyHTML + `
<form>
  <input id="registration-username" type="text">
  <input id="registration-email" type="email">
  <input id="registration-password" type="password">
  <input id="registration-password-confirmation" type="password">
  <input id="login-challenge" type="hidden" value="">
  <button id="registration-submit">Register</button>
</form>`

	updatePageHTML = `
<div id="notification" hidden></div>` + policyHTML + `
<form>
  <input id="update-username" type="text" value="alice" readonly>
  <input id="update-email" type="email">
  <input id="update-new-password" type="password">
  <input id="update-new-password-confirmation" type="password">
  <input id="update-old-password" type="password">
  <button id="update-submit">Update</button>
</form>`

	resetStep1PageHTML = `
<div id="notification" hidden></div>
<form>
  <input id="email" type="email">
  <button id="submit">Send</button>
</form>`

	resetStep2PageHTML = `
<div id="notification" hidden></div>` + policyHTML + `
<form>
  <input id="username" type="hidden" value="alice">
  <input id="email" type="hidden" value="alice@example.com">
  <input id="new-password" type="password">
  <input id="new-password-confirmation" type="password">
  <button id="submit">Reset</button>
</form>`

	emailConfirmationPageHTML = `
<div id="notification" hidden></div>
<input id="redirect-to" type="hidden" value="https://app.example.com/welcome">`

	errorPageHTML = `
<div id="notification" hidden></div>
<div id="error" hidden>Something went wrong</div>`
)

// deferredRunner keeps tasks pending until the test runs them.
type deferredRunner struct {
	pending []func()
}

func (r *deferredRunner) Go(task func()) {
	r.pending = append(r.pending, task)
}

func (r *deferredRunner) After(_ time.Duration, task func()) {
	r.pending = append(r.pending, task)
}

func (r *deferredRunner) Wait() {
	for len(r.pending) > 0 {
		task := r.pending[0]
		r.pending = r.pending[1:]
		task()
	}
}

type PageTestSuite struct {
	suite.Suite
	doc      *memdom.Document
	window   *memdom.Window
	client   *idpclientmock.IdPClientInterfaceMock
	notifier *submission.BannerNotifier
	runner   *submission.ImmediateRunner
	deps     Dependencies
}

func TestPageSuite(t *testing.T) {
	suite.Run(t, new(PageTestSuite))
}

// load prepares the dependencies of a page rendered from html and opened at rawURL.
func (suite *PageTestSuite) load(html, rawURL string) {
	doc, err := memdom.ParseString(html)
	suite.Require().NoError(err)
	location, err := url.Parse(rawURL)
	suite.Require().NoError(err)

	suite.doc = doc
	suite.window = memdom.NewWindow(location)
	suite.client = idpclientmock.NewIdPClientInterfaceMock(suite.T())
	suite.notifier = submission.NewBannerNotifier(doc, ElementNotification, time.Minute)
	suite.runner = submission.NewImmediateRunner()
	suite.deps = Dependencies{
		Document:      doc,
		Window:        suite.window,
		Flow:          flowcontext.Read(location),
		Client:        suite.client,
		Notifier:      suite.notifier,
		Controller:    submission.NewController("Submit"),
		Runner:        suite.runner,
		RedirectDelay: 5 * time.Second,
	}
}

func (suite *PageTestSuite) fill(values map[string]string) {
	for id, v := range values {
		suite.Require().NoError(suite.doc.Fill(id, v))
	}
}

func (suite *PageTestSuite) assertNotification(kind submission.NotificationKind, message string) {
	last, ok := suite.notifier.Last()
	suite.Require().True(ok, "expected a notification")
	suite.Equal(kind, last.Kind)
	suite.Equal(message, last.Message)

	banner, ok := suite.doc.ElementByID(ElementNotification)
	suite.Require().True(ok)
	suite.False(banner.Hidden())
}

func (suite *PageTestSuite) assertNoNavigation() {
	suite.Empty(suite.window.Navigations())
}

func (suite *PageTestSuite) assertNavigatedTo(target string) {
	last, ok := suite.window.LastNavigation()
	suite.Require().True(ok, "expected a navigation")
	suite.Equal(target, last)
}

func (suite *PageTestSuite) assertControlIdle(id, label string) {
	el, ok := suite.doc.ElementByID(id)
	suite.Require().True(ok)
	suite.False(el.Disabled())
	suite.Equal(label, el.HTML())
}

func (suite *PageTestSuite) TestLogin_SubmitsAndRedirects() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc123")
	suite.client.On("Login", mock.Anything, idpclient.LoginRequest{
		Username:  "alice",
		Password:  "s3cret!",
		Remember:  true,
		Challenge: "abc123",
	}).Return(&idpclient.RedirectResponse{RedirectTo: "https://app.example.com/cb"}, nil).Once()

	handler := NewLoginPage(suite.deps)
	suite.Equal(router.RouteLogin, handler.Route())
	handler.Activate()

	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "s3cret!"})
	suite.Require().NoError(suite.doc.Check(ElementLoginRemember, true))
	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

	suite.assertNavigatedTo("https://app.example.com/cb")
	suite.assertControlIdle(ElementLoginSubmit, "Submit")
	suite.Equal(1, suite.runner.Tasks())
}

func (suite *PageTestSuite) TestLogin_ValidationFailures() {
	testCases := []struct {
		name     string
		rawURL   string
		values   map[string]string
		expected string
	}{
		{
			name:     "EmptyUsername",
			rawURL:   "https://auth.example.com/login?login_challenge=abc",
			values:   map[string]string{ElementLoginPassword: "secret"},
			expected: "Username is missing",
		},
		{
			name:     "EmptyPassword",
			rawURL:   "https://auth.example.com/login?login_challenge=abc",
			values:   map[string]string{ElementLoginUsername: "alice"},
			expected: "Password is missing",
		},
		{
			name:     "MissingChallenge",
			rawURL:   "https://auth.example.com/login",
			values:   map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "secret"},
			expected: "Challenge is missing",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.load(loginPageHTML, tc.rawURL)
			NewLoginPage(suite.deps).Activate()
			suite.fill(tc.values)

			suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

			suite.assertNotification(submission.NotificationError, tc.expected)
			suite.assertNoNavigation()
			suite.client.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
			suite.Equal(0, suite.runner.Tasks())
		})
	}
}

func (suite *PageTestSuite) TestLogin_PrefillsUsernameAndShowsFirstLoginNotice() {
	suite.load(loginPageHTML, "https://auth.example.com/login?username=bob&first_login=true&login_challenge=c")

	NewLoginPage(suite.deps).Activate()

	el, ok := suite.doc.ElementByID(ElementLoginUsername)
	suite.Require().True(ok)
	suite.Equal("bob", el.Value())
	suite.assertNotification(submission.NotificationSuccess, NoticeFirstLogin)
}

func (suite *PageTestSuite) TestLogin_NoNoticeWithoutFirstLogin() {
	suite.load(loginPageHTML, "https://auth.example.com/login?first_login=false")

	NewLoginPage(suite.deps).Activate()

	_, ok := suite.notifier.Last()
	suite.False(ok)
}

func (suite *PageTestSuite) TestLogin_ServerRejection() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc")
	suite.client.On("Login", mock.Anything, mock.Anything).
		Return(nil, &idpclient.ResponseError{StatusCode: 401, Body: "Invalid credentials"}).Once()
	NewLoginPage(suite.deps).Activate()
	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "wrong"})

	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

	suite.assertNotification(submission.NotificationError, "Invalid credentials")
	suite.assertNoNavigation()
	suite.assertControlIdle(ElementLoginSubmit, "Submit")
}

func (suite *PageTestSuite) TestLogin_ServerUnreachable() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc")
	suite.client.On("Login", mock.Anything, mock.Anything).
		Return(nil, &url.Error{Op: "Post", URL: "https://idp/login", Err: errors.New("connection refused")}).Once()
	NewLoginPage(suite.deps).Activate()
	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "secret"})

	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

	suite.assertNotification(submission.NotificationError, ErrorServerUnreachable.ErrorDescription)
	suite.assertControlIdle(ElementLoginSubmit, "Submit")
}

func (suite *PageTestSuite) TestLogin_UnexpectedResponse() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc")
	suite.client.On("Login", mock.Anything, mock.Anything).
		Return(nil, idpclient.ErrMissingRedirect).Once()
	NewLoginPage(suite.deps).Activate()
	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "secret"})

	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

	suite.assertNotification(submission.NotificationError, ErrorUnexpectedResponse.ErrorDescription)
	suite.assertNoNavigation()
}

func (suite *PageTestSuite) TestSubmit_ControlBusyWhileInFlight() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc")
	runner := &deferredRunner{}
	suite.deps.Runner = runner
	suite.client.On("Login", mock.Anything, mock.Anything).
		Return(&idpclient.RedirectResponse{RedirectTo: "/next"}, nil).Once()
	NewLoginPage(suite.deps).Activate()
	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "secret"})

	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))

	control, ok := suite.doc.ElementByID(ElementLoginSubmit)
	suite.Require().True(ok)
	suite.True(control.Disabled())
	suite.Equal(submission.BusyIndicatorHTML, control.HTML())
	suite.ErrorIs(suite.doc.Click(ElementLoginSubmit), memdom.ErrElementDisabled)

	control.SetDisabled(false)
	suite.Require().NoError(suite.doc.Click(ElementLoginSubmit))
	suite.Len(runner.pending, 1)

	runner.Wait()

	suite.assertControlIdle(ElementLoginSubmit, "Submit")
	suite.assertNavigatedTo("/next")
	suite.client.AssertNumberOfCalls(suite.T(), "Login", 1)
}

func (suite *PageTestSuite) TestConsent_AllowSendsSelectedScopes() {
	suite.load(consentPageHTML, "https://auth.example.com/consent?consent_challenge=cc1")
	suite.client.On("Consent", mock.Anything, idpclient.ConsentRequest{
		Accept:     true,
		Challenge:  "cc1",
		GrantScope: []string{"openid", "offline"},
		Remember:   true,
	}).Return(&idpclient.RedirectResponse{RedirectTo: "https://app.example.com/done"}, nil).Once()
	NewConsentPage(suite.deps).Activate()

	suite.Require().NoError(suite.doc.Click(ElementConsentAllow))

	suite.assertNavigatedTo("https://app.example.com/done")
	suite.assertControlIdle(ElementConsentAllow, LabelAllow)
}

func (suite *PageTestSuite) TestConsent_DenyRestoresDenyLabel() {
	suite.load(consentPageHTML, "https://auth.example.com/consent?consent_challenge=cc1")
	suite.client.On("Consent", mock.Anything, mock.MatchedBy(func(req idpclient.ConsentRequest) bool {
		return !req.Accept && req.Challenge == "cc1"
	})).Return(nil, &idpclient.ResponseError{StatusCode: 500}).Once()
	NewConsentPage(suite.deps).Activate()

	suite.Require().NoError(suite.doc.Click(ElementConsentDeny))

	suite.assertNotification(submission.NotificationError, "Internal Server Error")
	suite.assertControlIdle(ElementConsentDeny, LabelDeny)
}

func (suite *PageTestSuite) TestConsent_ValidationFailures() {
	suite.Run("MissingChallenge", func() {
		suite.load(consentPageHTML, "https://auth.example.com/consent")
		NewConsentPage(suite.deps).Activate()

		suite.Require().NoError(suite.doc.Click(ElementConsentAllow))

		suite.assertNotification(submission.NotificationError, "Challenge is missing")
		suite.client.AssertNotCalled(suite.T(), "Consent", mock.Anything, mock.Anything)
	})
	suite.Run("NoScopeSelected", func() {
		suite.load(consentNoScopesHTML, "https://auth.example.com/consent?consent_challenge=cc1")
		NewConsentPage(suite.deps).Activate()

		suite.Require().NoError(suite.doc.Click(ElementConsentAllow))

		suite.assertNotification(submission.NotificationError, "Grant Scopes are missing")
		suite.client.AssertNotCalled(suite.T(), "Consent", mock.Anything, mock.Anything)
	})
}

func (suite *PageTestSuite) TestRegistration_RedirectsToFirstLogin() {
	suite.load(registrationPageHTML, "https://auth.example.com/registration?login_challenge=ch%2F1")
	suite.client.On("Register", mock.Anything, idpclient.RegistrationRequest{
		Username:             "new user",
		Email:                "new@example.com",
		Password:             "Tr0ub4dor&3",
		PasswordConfirmation: "Tr0ub4dor&3",
		Challenge:            "ch/1",
	}).Return(nil).Once()
	NewRegistrationPage(suite.deps).Activate()
	suite.fill(map[string]string{
		ElementRegistrationUsername:             "new user",
		ElementRegistrationEmail:                "new@example.com",
		ElementRegistrationPassword:             "Tr0ub4dor&3",
		ElementRegistrationPasswordConfirmation: "Tr0ub4dor&3",
	})

	suite.Require().NoError(suite.doc.Click(ElementRegistrationSubmit))

	suite.assertNavigatedTo("/login?first_login=true&username=new+user&login_challenge=ch%2F1")
}

func (suite *PageTestSuite) TestRegistration_ChallengeFromPage() {
	suite.load(registrationPageHTML, "https://auth.example.com/registration")
	suite.Require().NoError(suite.doc.Fill(ElementLoginChallenge, "page-challenge"))
	suite.client.On("Register", mock.Anything, mock.MatchedBy(func(req idpclient.RegistrationRequest) bool {
		return req.Challenge == "page-challenge"
	})).Return(nil).Once()
	NewRegistrationPage(suite.deps).Activate()
	suite.fill(map[string]string{
		ElementRegistrationUsername:             "carol",
		ElementRegistrationEmail:                "carol@example.com",
		ElementRegistrationPassword:             "Xq9!wertz",
		ElementRegistrationPasswordConfirmation: "Xq9!wertz",
	})

	suite.Require().NoError(suite.doc.Click(ElementRegistrationSubmit))

	suite.assertNavigatedTo(firstLoginURL("carol", "page-challenge"))
}

func (suite *PageTestSuite) TestRegistration_ValidationFailures() {
	complete := map[string]string{
		ElementRegistrationUsername:             "carol",
		ElementRegistrationEmail:                "carol@example.com",
		ElementRegistrationPassword:             "Xq9!wertz",
		ElementRegistrationPasswordConfirmation: "Xq9!wertz",
	}
	with := func(id, v string) map[string]string {
		values := make(map[string]string, len(complete))
		for k, val := range complete {
			values[k] = val
		}
		values[id] = v
		return values
	}

	testCases := []struct {
		name     string
		values   map[string]string
		expected string
	}{
		{"EmptyUsername", with(ElementRegistrationUsername, ""), "Username is missing"},
		{"EmptyEmail", with(ElementRegistrationEmail, ""), "Email is missing"},
		{"EmptyPassword", with(ElementRegistrationPassword, ""), "Password is missing"},
		{"ConfirmationMismatch", with(ElementRegistrationPasswordConfirmation, "Xq9!werty"),
			"Invalid password confirmation"},
		{"TooShort", map[string]string{
			ElementRegistrationUsername:             "carol",
			ElementRegistrationEmail:                "carol@example.com",
			ElementRegistrationPassword:             "Ab1!",
			ElementRegistrationPasswordConfirmation: "Ab1!",
		}, "Your password should have at least 8 characters"},
		{"SimilarToUsername", map[string]string{
			ElementRegistrationUsername:             "carol",
			ElementRegistrationEmail:                "carol@example.com",
			ElementRegistrationPassword:             "CAROL12345",
			ElementRegistrationPasswordConfirmation: "CAROL12345",
		}, "Your password is too similar to your username"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.load(registrationPageHTML, "https://auth.example.com/registration?login_challenge=c1")
			NewRegistrationPage(suite.deps).Activate()
			suite.fill(tc.values)

			suite.Require().NoError(suite.doc.Click(ElementRegistrationSubmit))

			suite.assertNotification(submission.NotificationError, tc.expected)
			suite.client.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
		})
	}
}

func (suite *PageTestSuite) TestRegistration_MissingChallenge() {
	suite.load(registrationPageHTML, "https://auth.example.com/registration")
	NewRegistrationPage(suite.deps).Activate()
	suite.fill(map[string]string{
		ElementRegistrationUsername:             "carol",
		ElementRegistrationEmail:                "carol@example.com",
		ElementRegistrationPassword:             "Xq9!wertz",
		ElementRegistrationPasswordConfirmation: "Xq9!wertz",
	})

	suite.Require().NoError(suite.doc.Click(ElementRegistrationSubmit))

	suite.assertNotification(submission.NotificationError, "Challenge is missing")
}

func (suite *PageTestSuite) TestUpdate_ValidationOrder() {
	testCases := []struct {
		name     string
		rawURL   string
		values   map[string]string
		expected string
	}{
		{
			name:     "EmptyEmail",
			rawURL:   "https://auth.example.com/secure/update?token=t1",
			values:   map[string]string{},
			expected: "Email is missing",
		},
		{
			name:     "EmptyNewPassword",
			rawURL:   "https://auth.example.com/secure/update?token=t1",
			values:   map[string]string{ElementUpdateEmail: "alice@example.com"},
			expected: "Invalid new password",
		},
		{
			name:   "EmptyOldPassword",
			rawURL: "https://auth.example.com/secure/update?token=t1",
			values: map[string]string{
				ElementUpdateEmail:       "alice@example.com",
				ElementUpdateNewPassword: "Xq9!wertz",
			},
			expected: "Invalid old password",
		},
		{
			name:   "MissingToken",
			rawURL: "https://auth.example.com/secure/update",
			values: map[string]string{
				ElementUpdateEmail:       "alice@example.com",
				ElementUpdateNewPassword: "Xq9!wertz",
				ElementUpdateOldPassword: "old-pass",
			},
			expected: "Token is missing",
		},
		{
			name:   "Unchanged",
			rawURL: "https://auth.example.com/secure/update?token=t1",
			values: map[string]string{
				ElementUpdateEmail:                   "alice@example.com",
				ElementUpdateNewPassword:             "Xq9!wertz",
				ElementUpdateNewPasswordConfirmation: "Xq9!wertz",
				ElementUpdateOldPassword:             "Xq9!wertz",
			},
			expected: "New password cannot be the same as the old",
		},
		{
			name:   "ConfirmationMismatch",
			rawURL: "https://auth.example.com/secure/update?token=t1",
			values: map[string]string{
				ElementUpdateEmail:                   "alice@example.com",
				ElementUpdateNewPassword:             "Xq9!wertz",
				ElementUpdateNewPasswordConfirmation: "other",
				ElementUpdateOldPassword:             "old-pass",
			},
			expected: "Invalid password confirmation",
		},
		{
			name:   "SimilarToUsername",
			rawURL: "https://auth.example.com/secure/update?token=t1",
			values: map[string]string{
				ElementUpdateEmail:                   "alice@example.com",
				ElementUpdateNewPassword:             "xALICEx99",
				ElementUpdateNewPasswordConfirmation: "xALICEx99",
				ElementUpdateOldPassword:             "old-pass",
			},
			expected: "Your password is too similar to your username",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.load(updatePageHTML, tc.rawURL)
			NewUpdatePage(suite.deps).Activate()
			suite.fill(tc.values)

			suite.Require().NoError(suite.doc.Click(ElementUpdateSubmit))

			suite.assertNotification(submission.NotificationError, tc.expected)
			suite.client.AssertNotCalled(suite.T(), "UpdateCredentials", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *PageTestSuite) TestUpdate_Success() {
	values := map[string]string{
		ElementUpdateEmail:                   "alice@example.com",
		ElementUpdateNewPassword:             "Xq9!wertz",
		ElementUpdateNewPasswordConfirmation: "Xq9!wertz",
		ElementUpdateOldPassword:             "old-pass",
	}
	expected := idpclient.UpdateCredentialsRequest{
		Email:                   "alice@example.com",
		NewPassword:             "Xq9!wertz",
		NewPasswordConfirmation: "Xq9!wertz",
		OldPassword:             "old-pass",
	}

	suite.Run("RedirectsWhenRequested", func() {
		suite.load(updatePageHTML, "https://auth.example.com/secure/update?token=t1&redirect_to=https%3A%2F%2Fapp%2Fprofile")
		suite.client.On("UpdateCredentials", mock.Anything, "t1", expected).Return(nil).Once()
		NewUpdatePage(suite.deps).Activate()
		suite.fill(values)

		suite.Require().NoError(suite.doc.Click(ElementUpdateSubmit))

		suite.assertNavigatedTo("https://app/profile")
	})
	suite.Run("NotifiesWithoutRedirect", func() {
		suite.load(updatePageHTML, "https://auth.example.com/secure/update?token=t1")
		suite.client.On("UpdateCredentials", mock.Anything, "t1", expected).Return(nil).Once()
		NewUpdatePage(suite.deps).Activate()
		suite.fill(values)

		suite.Require().NoError(suite.doc.Click(ElementUpdateSubmit))

		suite.assertNotification(submission.NotificationSuccess, NoticeCredentialsUpdated)
		suite.assertNoNavigation()
	})
}

func (suite *PageTestSuite) TestResetStep1() {
	suite.Run("SendsTokenWhenPresent", func() {
		suite.load(resetStep1PageHTML, "https://auth.example.com/change-password/step-1?token=t9&redirect_to=%2Flogin")
		suite.client.On("RequestPasswordReset", mock.Anything, "t9", idpclient.PasswordResetRequest{
			Email:      "alice@example.com",
			RedirectTo: "/login",
		}).Return(nil).Once()
		NewPasswordResetStep1Page(suite.deps).Activate()
		suite.fill(map[string]string{ElementResetEmail: "alice@example.com"})

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationSuccess, NoticeCheckInbox)
		suite.assertNoNavigation()
	})
	suite.Run("AnonymousRequest", func() {
		suite.load(resetStep1PageHTML, "https://auth.example.com/change-password/step-1")
		suite.client.On("RequestPasswordReset", mock.Anything, "", idpclient.PasswordResetRequest{
			Email: "alice@example.com",
		}).Return(nil).Once()
		NewPasswordResetStep1Page(suite.deps).Activate()
		suite.fill(map[string]string{ElementResetEmail: "alice@example.com"})

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationSuccess, NoticeCheckInbox)
	})
	suite.Run("EmptyEmail", func() {
		suite.load(resetStep1PageHTML, "https://auth.example.com/change-password/step-1")
		NewPasswordResetStep1Page(suite.deps).Activate()

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationError, "Email is missing")
		suite.client.AssertNotCalled(suite.T(), "RequestPasswordReset", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (suite *PageTestSuite) TestResetStep2() {
	suite.Run("Success", func() {
		suite.load(resetStep2PageHTML, "https://auth.example.com/change-password/step-2?token=rt1")
		suite.client.On("ResetPassword", mock.Anything, idpclient.PasswordResetConfirmRequest{
			Token:                   "rt1",
			NewPassword:             "Xq9!wertz",
			NewPasswordConfirmation: "Xq9!wertz",
		}).Return(&idpclient.RedirectResponse{RedirectTo: "/login"}, nil).Once()
		NewPasswordResetStep2Page(suite.deps).Activate()
		suite.fill(map[string]string{
			ElementResetNewPassword:             "Xq9!wertz",
			ElementResetNewPasswordConfirmation: "Xq9!wertz",
		})

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNavigatedTo("/login")
	})
	suite.Run("EmptyPassword", func() {
		suite.load(resetStep2PageHTML, "https://auth.example.com/change-password/step-2?token=rt1")
		NewPasswordResetStep2Page(suite.deps).Activate()

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationError, "Invalid new password")
	})
	suite.Run("MissingToken", func() {
		suite.load(resetStep2PageHTML, "https://auth.example.com/change-password/step-2")
		NewPasswordResetStep2Page(suite.deps).Activate()
		suite.fill(map[string]string{
			ElementResetNewPassword:             "Xq9!wertz",
			ElementResetNewPasswordConfirmation: "Xq9!wertz",
		})

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationError, "Token is missing")
		suite.client.AssertNotCalled(suite.T(), "ResetPassword", mock.Anything, mock.Anything)
	})
	suite.Run("SimilarToIdentity", func() {
		suite.load(resetStep2PageHTML, "https://auth.example.com/change-password/step-2?token=rt1")
		NewPasswordResetStep2Page(suite.deps).Activate()
		suite.fill(map[string]string{
			ElementResetNewPassword:             "alice@example.com",
			ElementResetNewPasswordConfirmation: "alice@example.com",
		})

		suite.Require().NoError(suite.doc.Click(ElementResetSubmit))

		suite.assertNotification(submission.NotificationError, "Your password is too similar to your username")
	})
}

func (suite *PageTestSuite) TestEmailConfirmation_RedirectsAfterDelay() {
	suite.load(emailConfirmationPageHTML, "https://auth.example.com/email-confirmation")

	NewEmailConfirmationPage(suite.deps).Activate()

	suite.Equal([]time.Duration{5 * time.Second}, suite.runner.Delays())
	suite.assertNavigatedTo("https://app.example.com/welcome")
}

func (suite *PageTestSuite) TestEmailConfirmation_NoLink() {
	suite.load(`<div id="notification" hidden></div>`, "https://auth.example.com/email-confirmation")

	NewEmailConfirmationPage(suite.deps).Activate()

	suite.Empty(suite.runner.Delays())
	suite.assertNoNavigation()
}

func (suite *PageTestSuite) TestErrorPage_RevealsErrorBlock() {
	suite.load(errorPageHTML, "https://auth.example.com/nowhere")

	handler := NewErrorPage(suite.deps)
	suite.Equal(router.RouteError, handler.Route())
	handler.Activate()

	el, ok := suite.doc.ElementByID(ElementError)
	suite.Require().True(ok)
	suite.False(el.Hidden())
	suite.assertNotification(submission.NotificationError, "Page not found")
}

func (suite *PageTestSuite) TestMissingControlIsTolerated() {
	suite.load(`<div id="notification" hidden></div>`, "https://auth.example.com/login")

	suite.NotPanics(func() { NewLoginPage(suite.deps).Activate() })
}

func (suite *PageTestSuite) TestSubmit_ConcurrentClicksSendOneRequest() {
	suite.load(loginPageHTML, "https://auth.example.com/login?login_challenge=abc")
	runner := submission.NewRunner()
	suite.deps.Runner = runner
	release := make(chan struct{})
	suite.client.On("Login", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&idpclient.RedirectResponse{RedirectTo: "/next"}, nil).Once()
	NewLoginPage(suite.deps).Activate()
	suite.fill(map[string]string{ElementLoginUsername: "alice", ElementLoginPassword: "secret"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.doc.Click(ElementLoginSubmit)
		}()
	}
	wg.Wait()
	close(release)
	runner.Wait()

	suite.client.AssertNumberOfCalls(suite.T(), "Login", 1)
	suite.assertNavigatedTo("/next")
	suite.assertControlIdle(ElementLoginSubmit, "Submit")
}
