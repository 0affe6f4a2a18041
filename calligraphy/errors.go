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

package calligraphy

import "errors"

var (
	// ErrUnknownStyle indicates a style key that is not in the catalog.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrFetcherRequired indicates a FontPreviewer was built without a fetcher.
	ErrFetcherRequired = errors.New("stylesheet fetcher is required")

	// ErrEmptyFontName indicates a font name that is blank after trimming.
	ErrEmptyFontName = errors.New("font name cannot be empty")

	// ErrStylesheetStatus indicates the font service answered with a non-2xx status.
	ErrStylesheetStatus = errors.New("unexpected stylesheet response status")
)
