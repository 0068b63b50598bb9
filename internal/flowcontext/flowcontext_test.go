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

package flowcontext

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FlowContextTestSuite struct {
	suite.Suite
}

func TestFlowContextSuite(t *testing.T) {
	suite.Run(t, new(FlowContextTestSuite))
}

func (suite *FlowContextTestSuite) mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	suite.Require().NoError(err)
	return u
}

func (suite *FlowContextTestSuite) TestReadAllParameters() {
	ctx := Read(suite.mustParse("https://idp.example.com/login?username=alice&first_login=true" +
		"&login_challenge=lc-1&consent_challenge=cc-1&token=tok&redirect_to=%2Fdashboard&extra=ignored"))

	suite.Equal("alice", ctx.Username())
	suite.True(ctx.FirstLogin())
	suite.Equal("lc-1", ctx.LoginChallenge())
	suite.Equal("cc-1", ctx.ConsentChallenge())
	suite.Equal("tok", ctx.Token())
	suite.Equal("/dashboard", ctx.RedirectTo())
}

func (suite *FlowContextTestSuite) TestReadWithoutParameters() {
	ctx := Read(suite.mustParse("https://idp.example.com/consent"))

	suite.Equal(FlowContext{}, ctx)
	suite.Empty(ctx.ConsentChallenge())
	suite.Empty(ctx.Token())
	suite.False(ctx.FirstLogin())
}

func (suite *FlowContextTestSuite) TestReadNilURL() {
	suite.Equal(FlowContext{}, Read(nil))
}

func (suite *FlowContextTestSuite) TestFirstLoginFlag() {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{"false", false},
		{"", false},
		{"yes", false},
	}

	for _, tc := range testCases {
		ctx := FromQuery(url.Values{ParamFirstLogin: []string{tc.value}})
		suite.Equal(tc.expected, ctx.FirstLogin(), "value %q", tc.value)
	}
}

func (suite *FlowContextTestSuite) TestFirstValueWins() {
	ctx := Read(suite.mustParse("/login?login_challenge=first&login_challenge=second"))
	suite.Equal("first", ctx.LoginChallenge())
}
