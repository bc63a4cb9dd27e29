// Package faults defines the error taxonomy shared by the launcher core.
//
// Components tag failures with one of the exported sentinel markers via Wrap
// so callers can classify them with errors.Is without string matching. The
// CLI uses the classification to decide between "fix your files" guidance
// (parse, invalid key, merge conflict) and plain I/O reporting. Every wrapped
// message carries the component and operation so a launch failure always
// names the offending mod, file, or key.
package faults
