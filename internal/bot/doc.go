// Package bot adapts Discord chat commands onto the tournament engine.
//
// The bot package is thin glue: it parses prefixed messages, gates the
// privileged commands on the invoking member's administrator permission, and
// translates engine results and errors into user-facing replies. Every
// sign-up decision is made by the service layer; nothing in this package
// mutates state directly.
//
// # Command Surface
//
// Each command maps 1:1 onto an engine operation:
//
//	!setslots <n>                 (admin) set tournament capacity
//	!register <name> <player>...  register a team, caller becomes captain
//	!confirm                      confirm the caller's team
//	!slots                        show filled/total and confirmed counts
//	!teams                        (admin) list teams with confirmation status
//	!reset                        (admin) discard all sign-up data
//
// Team names with spaces are double-quoted: !register "Night Owls" alice bob.
//
// # Testing
//
// Handlers talk to Discord through a narrow session interface, so tests run
// against an in-memory fake without a gateway connection.
package bot
