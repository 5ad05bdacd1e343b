// Copyright 2025 walteh LLC
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

package subst

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultLabel identifies the engine's messages to a Recorder.
const DefaultLabel = "VarSubstitution"

// 📢 Recorder receives one advisory message per rule application attempt.
type Recorder interface {
	Record(message, label string)
}

// RecorderFunc adapts a function to a Recorder.
type RecorderFunc func(message, label string)

func (f RecorderFunc) Record(message, label string) {
	f(message, label)
}

// NopRecorder drops every message.
type NopRecorder struct{}

func (NopRecorder) Record(string, string) {}

// 🪵 ZerologRecorder records messages at debug level on the context logger.
func ZerologRecorder(ctx context.Context) Recorder {
	logger := zerolog.Ctx(ctx)
	return RecorderFunc(func(message, label string) {
		logger.Debug().Str("label", label).Msg(message)
	})
}
