// Package dispatch forwards formatted webhook messages into the host chat
// system.
//
// Messages route to a channel when one is configured and fall back to a
// direct message to the bot owner otherwise. A channel-not-found delivery
// failure is discarded rather than returned; the host reports missing
// channels to the bot owner through its own notification path.
package dispatch
