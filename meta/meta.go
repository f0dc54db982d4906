// meta/meta.go
package meta

// DEFAULT_BOARD is the ring count of the board used when none is configured.
const DEFAULT_BOARD = 37

// DEFAULT_RULES names the rule set used when none is configured.
const DEFAULT_RULES = "standard"

// MAX_TURNS caps the number of requests a scripted match may submit.
const MAX_TURNS = 500

// HISTORY_CAPACITY is the initial capacity of a match history.
const HISTORY_CAPACITY = 100

// DEFAULT_DB is where saved matches are stored.
const DEFAULT_DB = "data/zertz.db"

// LOG_LEVEL is the zerolog level used when none is configured.
const LOG_LEVEL = "info"
