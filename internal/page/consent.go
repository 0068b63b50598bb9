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
	"context"

	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const consentLoggerComponentName = "ConsentPage"

// consentAction binds one consent button to the answer it gives.
type consentAction struct {
	elementID string
	accept    bool
	label     string
}

// consentActions is the static table of consent buttons.
var consentActions = []consentAction{
	{elementID: ElementConsentAllow, accept: true, label: LabelAllow},
	{elementID: ElementConsentDeny, accept: false, label: LabelDeny},
}

// consentPage handles the consent answer.
type consentPage struct {
	base
}

// NewConsentPage creates the consent page handler.
func NewConsentPage(deps Dependencies) router.HandlerInterface {
	return &consentPage{base: newBase(deps, router.RouteConsent, consentLoggerComponentName)}
}

// Activate wires both consent buttons.
func (p *consentPage) Activate() {
	for _, action := range consentActions {
		p.onClick(action.elementID, p.answerWith(action))
	}
}

// answerWith returns the click listener of one consent button.
func (p *consentPage) answerWith(action consentAction) func(control dom.Element) {
	return func(control dom.Element) {
		p.answer(control, action)
	}
}

func (p *consentPage) answer(control dom.Element, action consentAction) {
	request := idpclient.ConsentRequest{
		Accept:     action.accept,
		Challenge:  p.deps.Flow.ConsentChallenge(),
		GrantScope: p.grantScopes(),
		Remember:   true,
	}

	if request.Challenge == "" {
		p.reject(&ErrorChallengeMissing)
		return
	}
	if len(request.GrantScope) == 0 {
		p.reject(&ErrorGrantScopesMissing)
		return
	}

	p.logger.Debug("Submitting consent", log.Bool("accept", request.Accept),
		log.Int("scopes", len(request.GrantScope)))
	p.submit(control, action.label, func(ctx context.Context) (outcome, error) {
		resp, err := p.deps.Client.Consent(ctx, request)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redirectTo: resp.RedirectTo}, nil
	})
}

// grantScopes collects the selected scopes. Checkboxes count only when checked; other scope
// controls, such as hidden inputs, always count.
func (p *consentPage) grantScopes() []string {
	var scopes []string
	for _, el := range p.deps.Document.ElementsByClass(ClassConsentGrantScope) {
		if dom.IsCheckable(el) && !el.Checked() {
			continue
		}
		if v := el.Value(); v != "" {
			scopes = append(scopes, v)
		}
	}
	return scopes
}
