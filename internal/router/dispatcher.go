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

// Package router maps the path of the current page to the single page handler that owns it.
package router

import (
	"fmt"
	"strings"

	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const loggerComponentName = "RouteDispatcher"

// HandlerInterface is a page handler activated when the page path matches its route.
type HandlerInterface interface {
	// Route returns the normalized route the handler owns.
	Route() string
	// Activate wires the handler to the page.
	Activate()
}

// Dispatcher activates exactly one handler per page load.
type Dispatcher struct {
	handlers map[string]HandlerInterface
	fallback HandlerInterface
}

// NewDispatcher builds the route table. The fallback is activated for unknown paths and may be nil.
func NewDispatcher(fallback HandlerInterface, handlers ...HandlerInterface) (*Dispatcher, error) {
	table := make(map[string]HandlerInterface, len(handlers))
	for _, handler := range handlers {
		route := handler.Route()
		if _, exists := table[route]; exists {
			return nil, fmt.Errorf("duplicate handler for route %q", route)
		}
		table[route] = handler
	}
	return &Dispatcher{
		handlers: table,
		fallback: fallback,
	}, nil
}

// Normalize strips the leading slash of a page path.
func Normalize(path string) string {
	return strings.TrimPrefix(path, "/")
}

// Dispatch activates the handler owning the given path and returns the activated route.
func (d *Dispatcher) Dispatch(path string) string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	route := Normalize(path)

	if handler, ok := d.handlers[route]; ok {
		logger.Debug("Activating page handler", log.String(log.LoggerKeyRoute, route))
		handler.Activate()
		return route
	}

	logger.Warn("No page handler for path", log.String("path", path))
	if d.fallback != nil {
		d.fallback.Activate()
	}
	return RouteError
}
