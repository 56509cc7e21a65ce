// Package energy loads, cleans, and extracts the EIA Monthly Energy Review
// electricity-generation feed.
//
// The feed is a CSV with columns MSN, YYYYMM, Value, Column_Order,
// Description, and Unit, of which Description, YYYYMM, and Value are
// consumed. Values are quadrillion BTU or the literal "Not Available".
//
// # Pipeline
//
// Load fetches and parses the feed, Clean normalizes it, Extract produces a
// contiguous monthly series for one source:
//
//	raw, err := energy.NewLoader().Load(ctx, url)
//	cleaned, err := energy.Clean(raw, nil)
//	series, err := energy.Extract(cleaned, "Solar", from, to)
//
// # Failure Modes
//
// Errors are typed so callers can identify the failing stage: FetchError,
// SchemaError, ParseError, GapError, and InsufficientDataError. Parse
// failures are fatal by design; only rows with an unparseable YYYYMM are
// dropped, matching the upstream feed's own NA filter.
package energy
