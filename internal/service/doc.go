// Package service runs a requested lifecycle action against an install
// session and reports the resulting module status.
package service
