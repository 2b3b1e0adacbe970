// Package config manages application configuration for the tournament bot.
//
// Configuration is loaded from environment variables into tagged structs and
// validated explicitly before the bot starts:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	DISCORD_BOT_TOKEN  - Discord bot token (required to run the bot)
//	COMMAND_PREFIX     - chat command prefix (default: !)
//	TOURNEY_DATA_FILE  - path of the persisted sign-up document
//	                     (default: tourney_data.json)
//	LOG_LEVEL          - debug, info, warn or error (default: info)
//
// Offline commands that only touch the data file do not require the token.
package config
