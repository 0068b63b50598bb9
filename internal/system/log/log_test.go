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

package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"github.com/asgardeo/thunder-gate/internal/system/constants"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(constants.LogLevelEnvironmentVariable)
}

func (suite *LogTestSuite) TearDownTest() {
	err := os.Setenv(constants.LogLevelEnvironmentVariable, suite.originalLogLevel)
	if err != nil {
		suite.T().Errorf("Failed to restore environment variable: %v", err)
	}

	// Reset logger singleton for next test
	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestInitLoggerWithEnvironmentVariable() {
	testCases := []struct {
		name     string
		logLevel string
		isValid  bool
	}{
		{"DefaultLevel", "", true},
		{"DebugLevel", "debug", true},
		{"InfoLevel", "info", true},
		{"WarnLevel", "WARN", true},
		{"ErrorLevel", "error", true},
		{"InvalidLevel", "unknown", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			logger = nil
			once = sync.Once{}

			if tc.logLevel != "" {
				assert.NoError(t, os.Setenv(constants.LogLevelEnvironmentVariable, tc.logLevel))
			} else {
				assert.NoError(t, os.Unsetenv(constants.LogLevelEnvironmentVariable))
			}

			if tc.isValid {
				assert.NotPanics(t, func() {
					_ = GetLogger()
				})
			} else {
				assert.Panics(t, func() {
					_ = GetLogger()
				})
			}
		})
	}
}

func (suite *LogTestSuite) TestLogMethods() {
	buffer := &bytes.Buffer{}
	l := newLogger(zapcore.DebugLevel, zapcore.AddSync(buffer))

	l.Debug("debug message", String("key", "value"))
	l.Info("info message", Int("count", 3))
	l.Warn("warn message", Bool("flag", true))
	l.Error("error message", Error(errors.New("boom")))

	output := buffer.String()
	suite.Contains(output, "DEBUG")
	suite.Contains(output, "debug message")
	suite.Contains(output, "INFO")
	suite.Contains(output, "WARN")
	suite.Contains(output, "ERROR")
	suite.Contains(output, "boom")
}

func (suite *LogTestSuite) TestLoggerWith() {
	buffer := &bytes.Buffer{}
	l := newLogger(zapcore.InfoLevel, zapcore.AddSync(buffer)).
		With(String(LoggerKeyComponentName, "LoginPage"))

	l.Debug("hidden")
	l.Info("visible")

	output := buffer.String()
	suite.NotContains(output, "hidden")
	suite.Contains(output, "visible")
	suite.Contains(output, "LoginPage")
}

func (suite *LogTestSuite) TestLoggerWritesToStandardError() {
	reader, writer, err := os.Pipe()
	suite.Require().NoError(err)
	originalStderr := os.Stderr
	os.Stderr = writer
	defer func() {
		os.Stderr = originalStderr
	}()
	suite.Require().NoError(os.Setenv(constants.LogLevelEnvironmentVariable, "info"))
	logger = nil
	once = sync.Once{}

	GetLogger().Info("routed to stderr")
	GetLogger().Sync()
	suite.Require().NoError(writer.Close())

	output, err := io.ReadAll(reader)
	suite.Require().NoError(err)
	suite.Contains(string(output), "routed to stderr")
}

func (suite *LogTestSuite) TestMaskString() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "*"},
		{"abc", "***"},
		{"abcd", "a**d"},
		{"challenge-123", "c***********3"},
	}

	for _, tc := range testCases {
		suite.Equal(tc.expected, MaskString(tc.input))
	}
}
