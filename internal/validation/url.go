// Package validation checks user-supplied URLs and contact fields before
// they are sent to a store.
//
// Store URLs may point anywhere, including localhost, since a developer's
// shop often runs locally. Webhook delivery URLs are fetched by the store
// itself, so they are held to a stricter rule: cloud metadata endpoints
// are always refused and loopback or private addresses are refused unless
// WOO_ALLOW_PRIVATE is set (any value strconv.ParseBool accepts as true).
package validation

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// EnvAllowPrivate permits private and loopback webhook delivery URLs.
const EnvAllowPrivate = "WOO_ALLOW_PRIVATE"

var privateNetworks []*net.IPNet

func init() {
	for _, cidr := range []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"100.64.0.0/10",
		"169.254.0.0/16",
		"127.0.0.0/8",
		"0.0.0.0/8",
		"fc00::/7",
		"fe80::/10",
		"::1/128",
		"::/128",
	} {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		privateNetworks = append(privateNetworks, network)
	}
}

func allowPrivate() bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvAllowPrivate)))
	return v
}

// StoreURL checks the base URL of a store: http(s), a host, and no query
// or fragment since request paths are appended to it.
func StoreURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("must not carry a query or fragment")
	}
	return nil
}

// DeliveryURL checks a webhook delivery URL. Hosts are judged as written;
// names are not resolved.
func DeliveryURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return fmt.Errorf("must be an http(s) URL")
	}
	host := strings.ToLower(u.Hostname())
	if isCloudMetadata(host) {
		return fmt.Errorf("cloud metadata endpoints are not allowed")
	}
	if allowPrivate() {
		return nil
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return fmt.Errorf("localhost is not reachable from the store (set %s to allow)", EnvAllowPrivate)
	}
	if ip := net.ParseIP(host); ip != nil && isPrivateIP(ip) {
		return fmt.Errorf("private address %s is not reachable from the store (set %s to allow)", ip, EnvAllowPrivate)
	}
	return nil
}

func isCloudMetadata(host string) bool {
	switch host {
	case "169.254.169.254", "metadata.google.internal", "metadata", "instance-data", "fd00:ec2::254":
		return true
	}
	return strings.HasSuffix(host, ".metadata.google.internal")
}

func isPrivateIP(ip net.IP) bool {
	for _, network := range privateNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
