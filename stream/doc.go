// SPDX-License-Identifier: EPL-2.0

// Package stream plays synthesized chords in real time.
//
// A Streamer owns the synthesis state and sits between two execution
// contexts: the platform audio driver, which pulls one fixed-size
// buffer per period, and any number of controller goroutines, which
// push chord codes with Post. Immediately before filling a buffer the
// Streamer consumes at most one queued code, so chord changes land on
// buffer boundaries and never tear a buffer, and neither side ever
// blocks the other.
//
//	drv, err := stream.NewDriver(44100, 2)
//	s := stream.New(drv, stream.Config{})
//	s.Start()
//	s.Post("Am")
//	...
//	s.Stop()
//
// Two driver backends exist: oto (pure Go, the default) and portaudio
// (cgo, build tag "portaudio") which additionally enumerates host
// devices via Devices. Driver status flags such as underruns are
// logged and otherwise ignored; fatal driver errors stop the stream
// and are reported through Streamer.Err.
package stream
