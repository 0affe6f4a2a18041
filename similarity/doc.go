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

// Package similarity scores how alike two texts are.
//
// Every comparison yields two scores between 0 and 100:
//
//   - The lexical score is the Jaccard index of the lowercase word sets of
//     both texts. It needs nothing but the texts.
//   - The semantic score is the cosine similarity of their embeddings. The
//     embedding capability is acquired lazily through a Provider the first
//     time a comparison needs it.
//
// When embeddings are unavailable, because the provider failed to load, an
// embedding call failed, or the caller's context ended first, the semantic
// score falls back to the lexical score. Compare never returns an error.
//
// # Provider lifecycle
//
// A Provider moves from Uninitialized to Loading on first use and then to
// Ready or Failed, where it stays. Concurrent callers that arrive while a
// load is in flight wait for that same load. The load itself is detached
// from the caller that started it, so an impatient caller does not fail the
// load for everyone else.
//
//	provider, _ := similarity.NewProvider(func(ctx context.Context) (ai.Embedder, error) {
//		return openai.NewEmbedder(config)
//	})
//	engine, _ := similarity.NewEngine(provider)
//	defer engine.Release()
//
//	result := engine.Compare(ctx, "The cat sat.", "A cat was sitting.")
//	fmt.Println(result.LexicalScore, result.SemanticScore, result.Explanation)
//
// CompareAll compares many pairs on a worker pool and returns results in
// input order.
package similarity
