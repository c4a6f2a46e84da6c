package jsoncodec

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("jsoncodec.codec.created", "Codec instantiated")
	SignalEncodeComplete = capitan.NewSignal("jsoncodec.encode.complete", "Encode operation finished")
	SignalDecodeComplete = capitan.NewSignal("jsoncodec.decode.complete", "Decode operation finished")
	SignalLimitExceeded  = capitan.NewSignal("jsoncodec.limit.exceeded", "Length-limited encode did not fit")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyShape       = capitan.NewStringKey("shape")
	KeySize        = capitan.NewIntKey("size")
	KeyLimit       = capitan.NewIntKey("limit")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitCodecCreated emits an event when a codec is built.
func emitCodecCreated(ctx context.Context, typeName, shape string) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyShape.Field(shape),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitLimitExceeded emits an event when a length-limited encode aborts.
// size is the number of bytes accepted before the overflowing write.
func emitLimitExceeded(ctx context.Context, typeName string, limit, size int) {
	capitan.Emit(ctx, SignalLimitExceeded,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyLimit.Field(limit),
		KeySize.Field(size),
	)
}
