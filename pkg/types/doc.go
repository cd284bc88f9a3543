// Package types defines the livestock entities, the Store interface, commodity
// price keys, configuration, and standard errors for farmstock.
//
// Animals form a closed set of species (Cow, Goat, Sheep). Each shares the
// base attributes and carries one species-specific yield.
package types
