// Package arenalog renders slot arenas as structured zap fields.
package arenalog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	arena "github.com/pavanmanishd/slotarena"
)

// Ref logs a ref as its raw slot index.
func Ref[T any](key string, r arena.Ref[T]) zap.Field {
	return zap.Uint32(key, r.Raw())
}

// Metrics logs an ArenaMetrics snapshot as an object.
func Metrics(key string, m arena.ArenaMetrics) zap.Field {
	return zap.Object(key, metricsObject(m))
}

// Slots logs the occupied slots of a as an array of {ref, value} objects.
// Values are encoded with the encoder's reflection fallback.
func Slots[T any](key string, a *arena.SlotArena[T]) zap.Field {
	return zap.Array(key, slotArray[T]{a: a})
}

// Arena logs a as an object holding its metrics and occupied slots.
func Arena[T any](key string, a *arena.SlotArena[T]) zap.Field {
	return zap.Object(key, arenaObject[T]{a: a})
}

type metricsObject arena.ArenaMetrics

func (m metricsObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("len", m.Len)
	enc.AddInt("slots", m.Slots)
	enc.AddInt("capacity", m.Capacity)
	enc.AddInt("free", m.NumFree)
	enc.AddFloat64("utilization", m.Utilization)
	return nil
}

type slotArray[T any] struct {
	a *arena.SlotArena[T]
}

func (s slotArray[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for r, v := range s.a.All() {
		if err := enc.AppendObject(slotObject[T]{ref: r, value: v}); err != nil {
			return err
		}
	}
	return nil
}

type slotObject[T any] struct {
	ref   arena.Ref[T]
	value T
}

func (s slotObject[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("ref", s.ref.Raw())
	return enc.AddReflected("value", s.value)
}

type arenaObject[T any] struct {
	a *arena.SlotArena[T]
}

func (o arenaObject[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("metrics", metricsObject(o.a.Metrics())); err != nil {
		return err
	}
	return enc.AddArray("slots", slotArray[T]{a: o.a})
}
