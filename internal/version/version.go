// Package version provides centralized version information for the greet
// monorepo projects. This package supports independent versioning for the
// greetd daemon and the greetctl CLI as separate projects within the
// monorepo, allowing them to evolve independently while maintaining
// consistency within each project's components.
// All versions follow semantic versioning (semver) conventions.

package version

// GreetdVersion holds the current greetd daemon version.
// Format: major.minor.patch[-prerelease][+build]
const GreetdVersion = "0.1.0-dev"

// GreetctlVersion holds the current greetctl CLI version.
// This is used by the CLI binary and allows independent evolution
// of the management tool separate from the daemon.
// Format: major.minor.patch[-prerelease][+build]
const GreetctlVersion = "0.1.0-dev"
