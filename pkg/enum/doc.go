// Package enum maps enumerated values to and from their JSON wire tokens.
//
// The Paykit API uses snake_case wire tokens that do not always match the
// Go constant values, so each enum type declares an explicit token table
// at init time instead of relying on struct tags or runtime discovery:
//
//	type Interval string
//
//	const (
//		IntervalMonth Interval = "month"
//		IntervalEveryTwoWeeks Interval = "EveryTwoWeeks"
//	)
//
//	func init() {
//		enum.Register(enum.Values[Interval]{
//			IntervalMonth:         "", // empty token: use the value's own name
//			IntervalEveryTwoWeeks: "every_two_weeks",
//		})
//	}
//
// Types then implement json.Marshaler and json.Unmarshaler in two lines
// using MarshalJSON and UnmarshalJSON.
//
// The bidirectional mapping for a type is built lazily on first use and
// cached for the lifetime of the process. Decoding an unknown token fails
// with a *DecodeError naming the token and the target type; it never
// silently defaults. Declaring the same wire token for two values of one
// type is a configuration defect and panics when the mapping is built.
package enum
