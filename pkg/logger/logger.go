package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var log = zap.NewNop()

var (
	serviceName = "default"
)

// Init replaces the no-op default with a production zap logger. Call once
// from main; tests run against the no-op.
func Init(name string) error {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	serviceName = name
	log = l
	return nil
}

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.With(
		zap.String("service", serviceName),
	).Info(msg)
}

func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.With(
		zap.String("service", serviceName),
	).Warn(msg)
}

func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.With(
		zap.String("service", serviceName),
	).Error(msg)
}

func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.With(
		zap.String("service", serviceName),
	).Fatal(msg)
}
