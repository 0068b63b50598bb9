//go:build js && wasm

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

// Command gatewasm boots the hosted page controller inside the browser.
package main

import (
	"net/url"
	"syscall/js"

	"github.com/asgardeo/thunder-gate/internal/dom/jsdom"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/managers"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/internal/system/config"
	syshttp "github.com/asgardeo/thunder-gate/internal/system/http"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	if js.Global().Get("document").Get("readyState").String() == "complete" {
		start(logger)
	} else {
		var onLoad js.Func
		onLoad = js.FuncOf(func(js.Value, []js.Value) interface{} {
			onLoad.Release()
			go start(logger)
			return nil
		})
		js.Global().Get("window").Call("addEventListener", "load", onLoad)
	}

	select {}
}

// start wires the controller to the loaded page.
func start(logger *log.Logger) {
	cfg := config.DefaultConfig()
	window := jsdom.NewWindow()
	location := window.Location()

	backend := (&url.URL{Scheme: location.Scheme, Host: location.Host}).String()
	httpClient := syshttp.NewHTTPClientWithTimeout(cfg.Backend.Timeout)
	client, err := idpclient.NewIdPClient(backend, httpClient)
	if err != nil {
		logger.Fatal("Failed to create identity provider client", log.Error(err))
	}

	pm, err := managers.NewPageManager(cfg, jsdom.NewDocument(), window, client, submission.NewRunner())
	if err != nil {
		logger.Fatal("Failed to register page handlers", log.Error(err))
	}
	pm.Start()
}
