// Package config loads textcentre settings from a TOML file, a .env file and
// TEXTCENTRE_* environment variables, in increasing order of precedence.
//
// A minimal configuration file:
//
//	log_level = "info"
//
//	[ai]
//	host = "http://localhost:11434"
//	embedding_model = "all-minilm"
//	proofreader_model = "qwen2.5:3b"
//
//	[similarity]
//	pool_size = 4
//
//	[fonts]
//	base_url = "https://fonts.googleapis.com/css"
//	timeout_seconds = 10
package config
