// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"
)

func TestFormatFunctions(t *testing.T) {
	// Use a fixed time for testing: Monday, January 2, 2006 15:04:05 UTC.
	testTime := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	t.Run("FormatDate", func(t *testing.T) {
		// DefaultDateFormat is "YYYY-MM-DD" which translates to "2006-01-02"
		expected := "2006-01-02"
		result := FormatDate(testTime)
		if result != expected {
			t.Errorf("FormatDate: expected %q, got %q", expected, result)
		}
	})

	t.Run("FormatDateTime", func(t *testing.T) {
		expected := "Monday, 02 Jan 2006 15:04:05 PM"
		result := FormatDateTime(testTime)
		if result != expected {
			t.Errorf("FormatDateTime: expected %q, got %q", expected, result)
		}
	})

	t.Run("EmptyFormatUsesDateTime", func(t *testing.T) {
		if got, want := Format("", testTime), FormatDateTime(testTime); got != want {
			t.Errorf("Format(\"\"): expected %q, got %q", want, got)
		}
	})
}
