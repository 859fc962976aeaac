package testutils

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/solid-rs/itron-rs"
)

const (
	requireFeaturesEnvVar = "ITRON_TEST_REQUIRE_FEATURES"
)

// SkipIfNotSupported skips the test if err indicates that the selected
// kernel lacks a feature.
func SkipIfNotSupported(tb testing.TB, err error) {
	tb.Helper()

	if err == itron.ErrNotSupported {
		tb.Fatal("Unwrapped ErrNotSupported")
	}

	var ufe *itron.UnsupportedFeatureError
	if errors.As(err, &ufe) {
		checkRequired(tb, ufe)
		tb.Skip(ufe.Error())
	}
	if errors.Is(err, itron.ErrNotSupported) {
		tb.Skip(err.Error())
	}
}

func checkRequired(tb testing.TB, ufe *itron.UnsupportedFeatureError) {
	tb.Helper()

	if requiredFeature(ufe.Name) {
		tb.Fatalf("Feature '%s' is required but kernel %s lacks it", ufe.Name, ufe.Kernel)
	}
}

// requiredFeature checks whether a missing feature fails a test instead of
// skipping it.
//
// It reads a comma separated list of feature names from an environment
// variable.
//
// For example:
//
//	ITRON_TEST_REQUIRE_FEATURES="dynamic object creation,message buffers" go test ...
func requiredFeature(name string) bool {
	names := os.Getenv(requireFeaturesEnvVar)
	if names == "" {
		return false
	}

	for _, n := range strings.Split(names, ",") {
		if strings.TrimSpace(n) == name {
			return true
		}
	}
	return false
}
