// Package config loads carlot's startup configuration.
//
// # Sources
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults
//  2. The TOML file (default ~/.config/carlot/config.toml)
//  3. CARLOT_* environment variables, optionally seeded from a .env file
//     through LoadEnvFile
//
// A missing config file is not an error; the defaults are used instead.
//
// # TOML Format
//
//	backend = "appwrite"          # appwrite | mongo | file
//	database_id = "cars"
//	collection_id = "listings"
//	log_path = "~/.local/share/carlot/carlot.log"
//	log_level = "info"
//	log_format = "console"        # console | json
//
//	[appwrite]
//	endpoint = "https://cloud.appwrite.io/v1"
//	project_id = "my-project"
//	api_key = ""
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	connect_timeout_seconds = 10
//
//	[file]
//	path = "~/cars.json"
//
//	[cache]
//	redis_addr = ""               # empty disables the cache
//	ttl_seconds = 300
//
// # Environment
//
//   - CARLOT_BACKEND, CARLOT_DATABASE_ID, CARLOT_COLLECTION_ID
//   - CARLOT_APPWRITE_ENDPOINT, CARLOT_APPWRITE_PROJECT, CARLOT_APPWRITE_API_KEY
//   - CARLOT_MONGO_URI, CARLOT_FILE_PATH
//   - CARLOT_REDIS_ADDR, CARLOT_REDIS_PASSWORD, CARLOT_REDIS_DB
//   - CARLOT_LOG_LEVEL
//
// Secrets such as the Appwrite API key belong in the environment rather than
// the TOML file.
//
// # Validation
//
// Load only parses. Validate checks the fields the selected backend needs:
// the database and collection ids for appwrite and mongo, the project id for
// appwrite, and the path for file.
package config
