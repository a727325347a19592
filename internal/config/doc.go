// Package config loads client settings from the environment, after an
// optional .env file.
package config
