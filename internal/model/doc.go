// Package model defines the tournament sign-up document types.
//
// The model package holds plain data types with no I/O and no locking.
// Tournament is the single persisted document; its JSON tags define the
// on-disk schema:
//
//	{
//	    "slots": 8,
//	    "teams": [
//	        {
//	            "team_name": "Night Owls",
//	            "players": ["alice", "bob"],
//	            "captain_id": "1096012345678",
//	            "registered_at": "2026-03-01T18:04:05Z"
//	        }
//	    ],
//	    "confirmed": ["Night Owls"]
//	}
//
// # Identity
//
// CaptainID is an opaque caller identity (a Discord snowflake carried as a
// string) and is only ever compared with ==.
//
// # Helpers
//
// Query helpers are pure and operate on the in-memory document:
//
//   - HasTeamNamed: case-insensitive name lookup
//   - TeamByCaptain: first team in registration order for a caller
//   - IsConfirmed: exact-name membership in the confirmed set
package model
