// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ModuleVersion is a major.minor.patch version of a module or of the
// database schema an upgrade script brings a module to.
//
// Values are immutable and comparable with ==; ordering is defined by
// [ModuleVersion.Compare].
type ModuleVersion struct {
	major int
	minor int
	patch int
}

// NewModuleVersion constructs a [ModuleVersion] from its numeric parts.
// Negative parts are clamped to zero.
func NewModuleVersion(major, minor, patch int) ModuleVersion {
	return ModuleVersion{
		major: max(major, 0),
		minor: max(minor, 0),
		patch: max(patch, 0),
	}
}

// ParseModuleVersion parses a descriptor version string such as "1.2.3" or
// "v1.2.3". Short forms ("1", "1.2") are completed with zeros, pre-release
// and build suffixes are dropped.
//
// Returns [ErrInvalidModuleVersion] when s is not a semantic version.
func ParseModuleVersion(s string) (ModuleVersion, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "v") {
		raw = "v" + raw
	}
	if !semver.IsValid(raw) {
		return ModuleVersion{}, fmt.Errorf("%w: %q", ErrInvalidModuleVersion, s)
	}

	canonical := semver.Canonical(raw)
	canonical = strings.TrimSuffix(canonical, semver.Prerelease(canonical))

	parts := strings.Split(strings.TrimPrefix(canonical, "v"), ".")
	if len(parts) != 3 {
		return ModuleVersion{}, fmt.Errorf("%w: %q", ErrInvalidModuleVersion, s)
	}

	nums := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ModuleVersion{}, fmt.Errorf("%w: %q: %w", ErrInvalidModuleVersion, s, err)
		}
		nums = append(nums, n)
	}

	return ModuleVersion{major: nums[0], minor: nums[1], patch: nums[2]}, nil
}

// Major returns the major part of the version.
func (v ModuleVersion) Major() int {
	return v.major
}

// Minor returns the minor part of the version.
func (v ModuleVersion) Minor() int {
	return v.minor
}

// Patch returns the patch part of the version.
func (v ModuleVersion) Patch() int {
	return v.patch
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other. Major is compared first, then minor, then patch.
func (v ModuleVersion) Compare(other ModuleVersion) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.minor, other.minor); c != 0 {
		return c
	}
	return cmp.Compare(v.patch, other.patch)
}

// Less reports whether v sorts strictly before other.
func (v ModuleVersion) Less(other ModuleVersion) bool {
	return v.Compare(other) < 0
}

// String formats the version as "major.minor.patch".
func (v ModuleVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// MarshalText encodes the version as "major.minor.patch".
func (v ModuleVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a version accepted by [ParseModuleVersion].
func (v *ModuleVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseModuleVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
