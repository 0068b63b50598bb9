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

package submission

import (
	"sync"
	"time"

	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const notifierLoggerComponentName = "BannerNotifier"

// NotificationKind selects the styling of a notification.
type NotificationKind string

const (
	// NotificationSuccess marks a successful outcome.
	NotificationSuccess NotificationKind = "success"
	// NotificationError marks a failed outcome.
	NotificationError NotificationKind = "danger"
)

// Notification is a message shown to the user.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// NotificationSinkInterface receives user-facing notifications.
type NotificationSinkInterface interface {
	Notify(kind NotificationKind, message string)
}

// BannerNotifier shows notifications in a single banner element and hides it after a delay.
// A newer notification replaces the current one and restarts the delay.
type BannerNotifier struct {
	mu           sync.Mutex
	doc          dom.Document
	elementID    string
	dismissAfter time.Duration
	generation   uint64
	history      []Notification
	logger       *log.Logger
}

var _ NotificationSinkInterface = (*BannerNotifier)(nil)

// NewBannerNotifier creates a notifier rendering into the element with the given id.
func NewBannerNotifier(doc dom.Document, elementID string, dismissAfter time.Duration) *BannerNotifier {
	return &BannerNotifier{
		doc:          doc,
		elementID:    elementID,
		dismissAfter: dismissAfter,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, notifierLoggerComponentName)),
	}
}

// Notify displays the message and schedules its dismissal.
func (n *BannerNotifier) Notify(kind NotificationKind, message string) {
	n.mu.Lock()
	n.generation++
	generation := n.generation
	n.history = append(n.history, Notification{Kind: kind, Message: message})
	n.mu.Unlock()

	banner, ok := n.doc.ElementByID(n.elementID)
	if !ok {
		n.logger.Warn("Notification banner not found on page", log.String("elementId", n.elementID),
			log.String("kind", string(kind)))
		return
	}

	banner.SetHTML(message)
	banner.SetHidden(false)
	banner.SetClass("alert alert-" + string(kind))

	time.AfterFunc(n.dismissAfter, func() {
		n.mu.Lock()
		current := n.generation == generation
		n.mu.Unlock()
		if current {
			banner.SetHidden(true)
		}
	})
}

// Last returns the most recent notification, if any.
func (n *BannerNotifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		return Notification{}, false
	}
	return n.history[len(n.history)-1], true
}

// History returns every notification shown so far.
func (n *BannerNotifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.history...)
}

// NotifyError shows an error notification on the sink.
func NotifyError(sink NotificationSinkInterface, message string) {
	sink.Notify(NotificationError, message)
}

// NotifySuccess shows a success notification on the sink.
func NotifySuccess(sink NotificationSinkInterface, message string) {
	sink.Notify(NotificationSuccess, message)
}
