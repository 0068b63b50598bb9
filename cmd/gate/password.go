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

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asgardeo/thunder-gate/internal/passwordpolicy"
)

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password policy tools",
	}
	cmd.AddCommand(newPasswordCheckCmd())
	return cmd
}

func newPasswordCheckCmd() *cobra.Command {
	var (
		minLength      int
		maxLength      int
		minUniqueChars int
		username       string
		email          string
	)

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Validate a password against a policy without contacting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := &passwordpolicy.PasswordPolicy{
				MinLength:      minLength,
				MaxLength:      maxLength,
				MinUniqueChars: minUniqueChars,
			}
			if svcErr := passwordpolicy.Validate(args[0], username, email, policy); svcErr != nil {
				return errors.New(svcErr.ErrorDescription)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password accepted")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&minLength, "min", 8, "Minimum number of characters")
	flags.IntVar(&maxLength, "max", 64, "Maximum number of characters")
	flags.IntVar(&minUniqueChars, "unique", 0, "Minimum number of unique characters")
	flags.StringVar(&username, "username", "", "Username the password must not resemble")
	flags.StringVar(&email, "email", "", "Email the password must not resemble")
	return cmd
}
