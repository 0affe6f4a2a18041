// Copyright 2025 Poiesic Systems
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

package similarity

import "errors"

var (
	// ErrLoaderRequired is returned when a Provider is created without a loader.
	ErrLoaderRequired = errors.New("embedding loader required")

	// ErrProviderRequired is returned when an Engine is created without a provider.
	ErrProviderRequired = errors.New("embedding provider required")

	// ErrProviderFailed indicates the embedding capability could not be acquired.
	ErrProviderFailed = errors.New("embedding provider failed")

	// ErrEmbeddingMismatch indicates the embedder returned an unexpected number of vectors.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")
)
