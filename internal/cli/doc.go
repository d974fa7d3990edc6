// Package cli wires the cobra command line and viper configuration for the
// darija-assistant binary.
package cli
