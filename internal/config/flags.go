package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses configuration flags from os.Args into the global flag
// set, leaving positional arguments available through flag.Args.
//
// Flags:
//
//	-a proxy server address in format [host]:[port]
//	-adapter address of a running proxy, e.g. http://localhost:8080
//	-c/-config json file path with configs
//	-key-a value-token AES key
//	-key-b value-token IV
//	-listing-label label of the resource listing token
//	-label-format label format of an exam fetched without a label
//	-fallback send the fallback token when derivation fails
//	-upstream upstream API base URL
//	-upstream-timeout upstream request timeout (e.g., "30s")
//	-request-timeout proxy request timeout (e.g., "30s", "1m")
//	-email, -password upstream account
//	-workers bulk fetch concurrency
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var jsonConfigPath string
	var keyA, keyB string
	var listingLabel, labelFormat string
	var useFallback bool
	var upstreamURL string
	var upstreamTimeout time.Duration
	var requestTimeout time.Duration
	var email, password string
	var fetchConcurrency int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "adapter", "", "Proxy base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&keyA, "key-a", "", "Value-token AES key")
	fs.StringVar(&keyB, "key-b", "", "Value-token IV")
	fs.StringVar(&listingLabel, "listing-label", "", "Label of the resource listing token")
	fs.StringVar(&labelFormat, "label-format", "", "Label format of an exam fetched without a label")
	fs.BoolVar(&useFallback, "fallback", false, "Send the fallback token when derivation fails")
	fs.StringVar(&upstreamURL, "upstream", "", "Upstream API base URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&email, "email", "", "Upstream account email")
	fs.StringVar(&password, "password", "", "Upstream account password")
	fs.IntVar(&fetchConcurrency, "workers", 0, "Bulk fetch concurrency")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			KeyA:                keyA,
			KeyB:                keyB,
			ListingLabel:        listingLabel,
			ResourceLabelFormat: labelFormat,
			UseFallbackToken:    useFallback,
		},
		Auth: Auth{
			Email:    email,
			Password: password,
		},
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			RequestTimeout: upstreamTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			FetchConcurrency: fetchConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
