package domain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// LocalCache describes the build cache kept on the local filesystem.
type LocalCache struct {
	Enabled   bool
	Directory string
	Push      bool
}

// RemoteCache describes a build cache reachable over HTTP.
type RemoteCache struct {
	Enabled               bool
	URL                   string
	Push                  bool
	AllowInsecureProtocol bool
}

// CacheConfiguration is the resolved build cache configuration of a build.
// It is a value object and is never mutated once resolved.
type CacheConfiguration struct {
	Local  LocalCache
	Remote RemoteCache
}

// DefaultCacheConfiguration returns the configuration used by a build that declares no build cache:
// a local cache below the build directory and no remote cache.
func DefaultCacheConfiguration(buildDir string) CacheConfiguration {
	return CacheConfiguration{
		Local: LocalCache{
			Enabled:   true,
			Directory: DefaultLocalCachePath(buildDir),
			Push:      true,
		},
	}
}

// Fingerprint returns a stable digest of the configuration.
// Two configurations with equal content always have the same fingerprint.
func (c CacheConfiguration) Fingerprint() string {
	digest := xxhash.New()

	writeField := func(s string) {
		_, _ = digest.WriteString(s)
		_, _ = digest.Write([]byte{0})
	}

	writeField(strconv.FormatBool(c.Local.Enabled))
	writeField(c.Local.Directory)
	writeField(strconv.FormatBool(c.Local.Push))
	writeField(strconv.FormatBool(c.Remote.Enabled))
	writeField(c.Remote.URL)
	writeField(strconv.FormatBool(c.Remote.Push))
	writeField(strconv.FormatBool(c.Remote.AllowInsecureProtocol))

	return fmt.Sprintf("%016x", digest.Sum64())
}
