// Package types defines the entity model, snapshot document, configuration,
// and standard errors for the mate-service record store.
package types
