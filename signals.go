package charset

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalEncodeComplete = capitan.NewSignal("charset.encode.complete", "One-shot encode finished")
	SignalDecodeComplete = capitan.NewSignal("charset.decode.complete", "One-shot decode finished")
	SignalSessionStart   = capitan.NewSignal("charset.session.start", "Chunked conversion session opened")
	SignalSessionClose   = capitan.NewSignal("charset.session.close", "Chunked conversion session closed")
)

// Keys for typed event data.
var (
	KeyCharset   = capitan.NewStringKey("charset")
	KeyDirection = capitan.NewStringKey("direction")
	KeySize      = capitan.NewIntKey("size")
	KeyFragments = capitan.NewIntKey("fragments")
	KeyReplaced  = capitan.NewIntKey("replaced")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// Direction values for session events.
const (
	directionEncode = "encode"
	directionDecode = "decode"
)

// emitEncodeComplete emits an event when a one-shot encode finishes.
func emitEncodeComplete(charset string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCharset.Field(charset),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalEncodeComplete, fields...)
		return
	}
	capitan.Emit(context.Background(), SignalEncodeComplete, fields...)
}

// emitDecodeComplete emits an event when a one-shot decode finishes.
func emitDecodeComplete(charset string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCharset.Field(charset),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalDecodeComplete, fields...)
		return
	}
	capitan.Emit(context.Background(), SignalDecodeComplete, fields...)
}

// emitSessionStart emits an event when a chunked session is opened.
func emitSessionStart(charset, direction string) {
	capitan.Emit(context.Background(), SignalSessionStart,
		KeyCharset.Field(charset),
		KeyDirection.Field(direction),
	)
}

// emitSessionClose emits an event when a chunked session is closed.
func emitSessionClose(charset, direction string, fragments, replaced int) {
	capitan.Emit(context.Background(), SignalSessionClose,
		KeyCharset.Field(charset),
		KeyDirection.Field(direction),
		KeyFragments.Field(fragments),
		KeyReplaced.Field(replaced),
	)
}
