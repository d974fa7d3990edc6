// Package internal holds shared module metadata.
package internal

// Version is the darija-assistant release version.
const Version = "1.0.0"
