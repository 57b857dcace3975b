//go:build windows

package logger

const newline = "\r\n"
