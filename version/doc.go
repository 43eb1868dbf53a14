// Package version reports which SDK release is linked into the binary.
package version
