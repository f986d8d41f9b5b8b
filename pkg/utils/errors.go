package utils

import (
	"fmt"
)

// ConfigError reports a missing or malformed argument
type ConfigError struct {
	Name   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return e.Reason
	}
	return fmt.Sprintf("argument '%s' %s", e.Name, e.Reason)
}

// NotSupplied builds the error for a required argument without a value
func NotSupplied(name string) *ConfigError {
	return &ConfigError{Name: name, Reason: "was not supplied"}
}

// WrongFormat builds the error for a value failing its validator
func WrongFormat(name string) *ConfigError {
	return &ConfigError{Name: name, Reason: "was in the wrong format"}
}

// InputNotFoundError reports a journal path that does not exist
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("file %s does not exist", e.Path)
}

// IOError reports a failure reading or writing a file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with additional context
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
