// Package cli defines the tourneybot command tree.
//
// Commands:
//
//	tourneybot run          connect to Discord and serve sign-up commands
//	tourneybot state show   print slot usage and teams from the data file
//	tourneybot state reset  discard all sign-up data
//
// The state commands operate directly on the persisted document and never
// touch the network, so they work while the bot is stopped and without a
// token. Logging goes to stdout as JSON; --verbose switches to debug level.
package cli
