// Package config assembles the photo gate settings: admission rules
// (killswitch, pending ceiling, minimum dimension, description length,
// reason TTL), storage, listeners, the classifier address and worker
// intervals.
//
// Environment variables are read first, then flags, then the JSON file
// named by either of them; each layer overrides the fields it sets. Zero
// fields get the Default* values before validation.
package config
