//go:build !windows

package logger

const newline = "\n"
