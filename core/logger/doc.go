// Package logger builds the zap logger used across the service.
//
// Level accepts any zap level name; debug also switches to the development
// preset. Format selects json or colourised console output.
//
// Request handlers derive a child logger with WithRayID so every entry of a
// request carries its ray_id:
//
//	l := logger.WithRayID(base, c)
//	l.Warn("Theme update rejected", zap.Error(err))
package logger
