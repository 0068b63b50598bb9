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
)

// RunnerInterface schedules work triggered by page events without blocking the event source.
type RunnerInterface interface {
	// Go runs the task asynchronously.
	Go(task func())
	// After runs the task once after the delay.
	After(delay time.Duration, task func())
	// Wait blocks until every scheduled task has finished.
	Wait()
}

// Runner runs tasks on goroutines and timers.
type Runner struct {
	wg sync.WaitGroup
}

var _ RunnerInterface = (*Runner)(nil)

// NewRunner creates a goroutine backed runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Go runs the task on a new goroutine.
func (r *Runner) Go(task func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		task()
	}()
}

// After runs the task once the delay has elapsed. It cannot be cancelled.
func (r *Runner) After(delay time.Duration, task func()) {
	r.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer r.wg.Done()
		task()
	})
}

// Wait blocks until every scheduled task has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// ImmediateRunner runs every task inline on the caller, recording requested delays.
type ImmediateRunner struct {
	mu     sync.Mutex
	delays []time.Duration
	tasks  int
}

var _ RunnerInterface = (*ImmediateRunner)(nil)

// NewImmediateRunner creates an inline runner.
func NewImmediateRunner() *ImmediateRunner {
	return &ImmediateRunner{}
}

// Go runs the task inline.
func (r *ImmediateRunner) Go(task func()) {
	r.mu.Lock()
	r.tasks++
	r.mu.Unlock()
	task()
}

// After records the delay and runs the task inline.
func (r *ImmediateRunner) After(delay time.Duration, task func()) {
	r.mu.Lock()
	r.delays = append(r.delays, delay)
	r.mu.Unlock()
	task()
}

// Wait returns immediately.
func (r *ImmediateRunner) Wait() {}

// Delays returns the delays requested through After.
func (r *ImmediateRunner) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}

// Tasks returns the number of tasks started through Go.
func (r *ImmediateRunner) Tasks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tasks
}
