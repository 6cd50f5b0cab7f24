package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-mode run mode: validate, show, browse, export, serve, fetch
//	-f tailwind declaration file or directory
//	-format force declaration format: js, json, yaml
//	-strict reject unknown top-level keys
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-remote base URL of a remote twconfig server
//	-remote-timeout remote request timeout
//	-watch reload the document when the file changes
//	-debounce quiet period before a reload (e.g., "500ms")
//	-o export destination file
//	-log-level log level
//	-c/-config json file path with settings
//
// A single positional argument is accepted as the declaration path and
// takes precedence over -f.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var mode string
	var documentPath string
	var documentFormat string
	var strict bool
	var requestTimeout time.Duration
	var remoteAddress string
	var remoteTimeout time.Duration
	var watch bool
	var debounce time.Duration
	var outputPath string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("twconfig", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&mode, "mode", "", "Run mode: validate, show, browse, export, serve, fetch")
	fs.StringVar(&documentPath, "f", "", "Tailwind declaration file or directory")
	fs.StringVar(&documentFormat, "format", "", "Declaration format: js, json, yaml")
	fs.BoolVar(&strict, "strict", false, "Reject unknown top-level keys")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "remote", "", "Remote twconfig server base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 10s)")
	fs.BoolVar(&watch, "watch", false, "Reload the document when its file changes")
	fs.DurationVar(&debounce, "debounce", 0, "Quiet period before a reload (e.g., 500ms)")
	fs.StringVar(&outputPath, "o", "", "Export destination file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		documentPath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: %s", ErrTooManyArguments, strings.Join(fs.Args(), " "))
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Document: Document{
			Path:   documentPath,
			Format: documentFormat,
			Strict: strict,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Workers: Workers{
			Watch:    watch,
			Debounce: debounce,
		},
		Output: Output{
			Mode: mode,
			Path: outputPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. The zero value
// renders as an empty string so it does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". The host must be
// empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w %q: expected host:port", ErrInvalidNetAddress, s)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w %q: port must be in 1..65535", ErrInvalidNetAddress, s)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w %q: host must be localhost or an IP address", ErrInvalidNetAddress, s)
	}

	a.Host = host
	a.Port = port
	return nil
}
