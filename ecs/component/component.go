// Package component holds the plain data attached to chase entities. Logic
// lives in the system package.
package component
